// Package site serves the portfolio pages: the snippet showcase with
// category filtering, per-snippet detail views, the projects section, and
// the persisted theme preference.
package site

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"

	"github.com/Briskwoods/portfolio/internal/cache"
	"github.com/Briskwoods/portfolio/internal/config"
	"github.com/Briskwoods/portfolio/internal/github"
	"github.com/Briskwoods/portfolio/internal/snippet"
	"github.com/Briskwoods/portfolio/internal/store"
)

const githubHost = "https://github.com"

const (
	sessionName = "portfolio"
	themeKey    = "theme"
)

// descriptionPlaceholder is shown on cards for snippets without one.
const descriptionPlaceholder = "No description provided."

// Site holds the HTTP surface of the portfolio.
type Site struct {
	client   github.Client
	store    *store.Store
	cache    *cache.Cache
	loadCfg  func() config.Config
	featured []string
	noCache  bool
	sessions *sessions.CookieStore
	tmpl     *template.Template
	router   chi.Router
}

// New wires the site against the given GitHub client and snippet store.
// loadCfg is called fresh on every snippet load so configuration changes
// take effect without a restart.
func New(client github.Client, st *store.Store, c *cache.Cache, loadCfg func() config.Config, featured []string, noCache bool) *Site {
	secret := loadCfg().SessionSecret
	if secret == "" {
		secret = "portfolio-dev-secret"
	}
	s := &Site{
		client:   client,
		store:    st,
		cache:    c,
		loadCfg:  loadCfg,
		featured: featured,
		noCache:  noCache,
		sessions: sessions.NewCookieStore([]byte(secret)),
		tmpl:     siteTemplates,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Site) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/", s.handleIndex)
	r.Get("/snippets/{filename}", s.handleSnippet)
	r.Post("/theme", s.handleTheme)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assetFiles()))))

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Site) Router() chi.Router { return s.router }

// Start begins listening on addr.
func (s *Site) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Printf("Serving portfolio at %s", addr)
	return srv.ListenAndServe()
}

type cardView struct {
	Filename    string
	Title       string
	Language    string
	Description string
	LineCount   int
	Tags        []string
	Badges      []string
}

type indexView struct {
	SiteName   string
	Theme      string
	Owner      string
	Repo       string
	Categories []string
	Selected   string
	Cards      []cardView
	Projects   []github.Project
	Error      string
	Empty      bool
}

// handleIndex renders the portfolio page. A bare request is a page load and
// refetches the snippet list; requests carrying ?category= re-render the
// already-loaded list with that filter selected.
func (s *Site) handleIndex(w http.ResponseWriter, r *http.Request) {
	cfg := s.loadCfg()

	category := r.URL.Query().Get("category")
	var loadErr string
	if category == "" {
		s.store.Select(store.AllCategories)
		if _, err := s.store.LoadAll(r.Context(), s.client, cfg); err != nil {
			log.Printf("Snippet load failed: %v", err)
			loadErr = loadErrorMessage(err, cfg)
		}
	} else {
		s.store.Select(category)
	}
	selected := s.store.Selected()

	snippets := s.store.Filter(selected)
	cards := make([]cardView, 0, len(snippets))
	for _, sn := range snippets {
		cards = append(cards, newCardView(sn))
	}

	data := indexView{
		SiteName:   cfg.Username,
		Theme:      s.theme(r),
		Owner:      cfg.Username,
		Repo:       cfg.Repo,
		Categories: s.store.Categories(),
		Selected:   selected,
		Cards:      cards,
		Projects:   s.projects(r, cfg),
		Error:      loadErr,
		Empty:      loadErr == "" && len(cards) == 0,
	}
	s.render(w, "index", data)
}

func newCardView(sn snippet.Snippet) cardView {
	desc := sn.Meta.Description
	if desc == "" {
		desc = descriptionPlaceholder
	}
	tags := sn.Meta.Tags
	if len(tags) > 2 {
		tags = tags[:2]
	}
	badges := sn.Meta.Categories
	if len(badges) == 0 {
		badges = []string{sn.Meta.Primary}
	}
	return cardView{
		Filename:    sn.Filename,
		Title:       sn.Meta.Title,
		Language:    sn.Meta.Language,
		Description: desc,
		LineCount:   sn.LineCount,
		Tags:        tags,
		Badges:      badges,
	}
}

// projects fetches the projects section, degrading to nothing on error.
func (s *Site) projects(r *http.Request, cfg config.Config) []github.Project {
	projects, err := github.ListProjects(r.Context(), s.client, s.cache, cfg.Username, s.featured, s.noCache, cfg.DebugMode)
	if err != nil {
		log.Printf("Projects lookup failed: %v", err)
		return nil
	}
	return projects
}

type snippetView struct {
	SiteName      string
	Theme         string
	Title         string
	Description   string
	Language      string
	LanguageClass string
	LineCount     int
	Tags          []string
	Code          template.HTML
	DeepLink      string
	Content       string
}

// handleSnippet renders one snippet in full, highlighted, with a deep link
// back to the file on GitHub.
func (s *Site) handleSnippet(w http.ResponseWriter, r *http.Request) {
	cfg := s.loadCfg()
	filename := chi.URLParam(r, "filename")

	if s.store.Len() == 0 {
		if _, err := s.store.LoadAll(r.Context(), s.client, cfg); err != nil {
			log.Printf("Snippet load failed: %v", err)
			s.renderError(w, http.StatusBadGateway, loadErrorMessage(err, cfg))
			return
		}
	}

	var found *snippet.Snippet
	for _, sn := range s.store.Snippets() {
		if sn.Filename == filename {
			found = &sn
			break
		}
	}
	if found == nil {
		s.renderError(w, http.StatusNotFound, fmt.Sprintf("No snippet named %q is loaded.", filename))
		return
	}

	code, err := highlight(found.Content, found.Filename, found.Meta.Language)
	if err != nil {
		log.Printf("Highlighting %s failed: %v", found.Filename, err)
		code = plainCode(found.Content)
	}

	data := snippetView{
		SiteName:      cfg.Username,
		Theme:         s.theme(r),
		Title:         found.Meta.Title,
		Description:   found.Meta.Description,
		Language:      found.Meta.Language,
		LanguageClass: languageClass(found.Meta.Language),
		LineCount:     found.LineCount,
		Tags:          found.Meta.Tags,
		Code:          code,
		DeepLink: fmt.Sprintf("%s/%s/%s/blob/%s/%s/%s",
			githubHost, cfg.Username, cfg.Repo, cfg.Branch, cfg.Folder, found.Filename),
		Content: found.Content,
	}
	s.render(w, "snippet", data)
}

// handleTheme records the user's theme choice in the session cookie and
// sends them back where they came from.
func (s *Site) handleTheme(w http.ResponseWriter, r *http.Request) {
	session, _ := s.sessions.Get(r, sessionName)

	choice := r.FormValue("theme")
	if choice != "dark" && choice != "light" {
		// No explicit value: toggle from the current one.
		if cur, _ := session.Values[themeKey].(string); cur == "dark" {
			choice = "light"
		} else {
			choice = "dark"
		}
	}
	session.Values[themeKey] = choice
	if err := session.Save(r, w); err != nil {
		log.Printf("Saving theme choice: %v", err)
	}

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// theme returns the stored theme choice, or empty when the visitor follows
// their system preference.
func (s *Site) theme(r *http.Request) string {
	session, err := s.sessions.Get(r, sessionName)
	if err != nil {
		return ""
	}
	choice, _ := session.Values[themeKey].(string)
	return choice
}

func (s *Site) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Rendering %s: %v", name, err)
	}
}

type errorView struct {
	SiteName string
	Theme    string
	Message  string
}

func (s *Site) renderError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, "error", errorView{SiteName: "Portfolio", Message: message}); err != nil {
		log.Printf("Rendering error page: %v", err)
	}
}

// loadErrorMessage maps a load failure to the user-visible panel text, with
// a dedicated variant for a missing repository.
func loadErrorMessage(err error, cfg config.Config) string {
	var dirErr *github.DirectoryError
	switch {
	case errors.As(err, &dirErr) && dirErr.IsNotFound():
		return fmt.Sprintf("Repository %s/%s not found. Check the snippet source settings.", cfg.Username, cfg.Repo)
	case errors.As(err, &dirErr):
		return fmt.Sprintf("Could not load snippets (HTTP %d).", dirErr.Status)
	case errors.Is(err, store.ErrNoSnippets):
		return "No snippets were found in the configured folder."
	default:
		return "Could not load snippets."
	}
}
