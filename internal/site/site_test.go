package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gh "github.com/google/go-github/v68/github"

	"github.com/Briskwoods/portfolio/internal/cache"
	"github.com/Briskwoods/portfolio/internal/config"
	"github.com/Briskwoods/portfolio/internal/store"
)

// mockClient implements github.Client for handler tests.
type mockClient struct {
	getContentsFn func(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	listByUserFn  func(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error)
}

func (m *mockClient) GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error) {
	return m.getContentsFn(ctx, owner, repo, path, opts)
}

func (m *mockClient) ListByUser(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, user, opts)
	}
	return nil, &gh.Response{Response: &http.Response{StatusCode: 200}}, nil
}

func (m *mockClient) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error) {
	return nil, nil, errors.New("not used")
}

func emptyResponse() *gh.Response {
	return &gh.Response{Response: &http.Response{StatusCode: 200}}
}

func fileEntry(name, downloadURL string) *gh.RepositoryContent {
	return &gh.RepositoryContent{
		Name:        gh.Ptr(name),
		Type:        gh.Ptr("file"),
		DownloadURL: gh.Ptr(downloadURL),
		HTMLURL:     gh.Ptr("https://github.com/alice/snips/blob/main/snippets/" + name),
	}
}

func testLoadCfg() config.Config {
	return config.Config{
		Username: "alice", Repo: "snips", Branch: "main", Folder: "snippets",
		SessionSecret: "test-secret",
	}
}

// newTestSite wires a Site whose raw-content fetches hit the given bodies.
func newTestSite(t *testing.T, bodies map[string]string) (*Site, *int) {
	t.Helper()

	raw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(raw.Close)

	listCalls := 0
	client := &mockClient{
		getContentsFn: func(_ context.Context, _, _, _ string, _ *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error) {
			listCalls++
			var entries []*gh.RepositoryContent
			for path := range bodies {
				entries = append(entries, fileEntry(strings.TrimPrefix(path, "/"), raw.URL+path))
			}
			return nil, entries, emptyResponse(), nil
		},
	}

	s := New(client, store.New(), cache.New(), testLoadCfg, nil, true)
	return s, &listCalls
}

func get(t *testing.T, s *Site, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestIndex_RendersCards(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{
		"/sort.py": "# @title: Quick Sort\n# @category: algorithms\n# @tags: fast, classic, extra",
	})

	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Quick Sort", "Python", "algorithms", "fast", "classic"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(body, "extra") {
		t.Error("cards should show at most the first two tags")
	}
	if !strings.Contains(body, `href="/snippets/sort.py"`) {
		t.Error("card should link to the snippet page")
	}
}

func TestIndex_CategoryFilterDoesNotRefetch(t *testing.T) {
	s, listCalls := newTestSite(t, map[string]string{
		"/a.py": "# @title: A\n# @category: algorithms",
		"/b.py": "# @title: B\n# @category: strings",
	})

	get(t, s, "/")
	if *listCalls != 1 {
		t.Fatalf("page load should list once, got %d", *listCalls)
	}

	rec := get(t, s, "/?category=algorithms")
	if *listCalls != 1 {
		t.Errorf("filter request should not refetch, got %d listings", *listCalls)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `href="/snippets/a.py"`) {
		t.Error("matching snippet missing")
	}
	if strings.Contains(body, `href="/snippets/b.py"`) {
		t.Error("non-matching snippet should be filtered out")
	}
}

func TestIndex_EmptyFilterShowsEmptyState(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{
		"/a.py": "# @title: A\n# @category: algorithms",
	})

	get(t, s, "/")
	rec := get(t, s, "/?category=nonexistent")
	if !strings.Contains(rec.Body.String(), "empty-state") {
		t.Error("expected the empty-state message for a category with no snippets")
	}
}

func TestIndex_EscapesMarkup(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{
		"/evil.py": "# @title: <script>alert(1)</script>\n# @description: <img src=x>",
	})

	rec := get(t, s, "/")
	body := rec.Body.String()
	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("title rendered unescaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("expected escaped title text")
	}
}

func TestIndex_RepositoryNotFoundVariant(t *testing.T) {
	client := &mockClient{
		getContentsFn: func(_ context.Context, _, _, _ string, _ *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error) {
			return nil, nil, &gh.Response{Response: &http.Response{StatusCode: 404}}, errors.New("404 Not Found")
		},
	}
	s := New(client, store.New(), cache.New(), testLoadCfg, nil, true)

	rec := get(t, s, "/")
	body := rec.Body.String()
	if !strings.Contains(body, "error-panel") {
		t.Fatal("expected the error panel")
	}
	if !strings.Contains(body, "not found") {
		t.Errorf("expected the repository-not-found variant, got:\n%s", body)
	}
}

func TestIndex_NoSnippetsMessage(t *testing.T) {
	client := &mockClient{
		getContentsFn: func(_ context.Context, _, _, _ string, _ *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error) {
			return nil, []*gh.RepositoryContent{fileEntry("README.md", "")}, emptyResponse(), nil
		},
	}
	s := New(client, store.New(), cache.New(), testLoadCfg, nil, true)

	rec := get(t, s, "/")
	if !strings.Contains(rec.Body.String(), "No snippets were found") {
		t.Error("expected the no-snippets panel message")
	}
}

func TestSnippetPage(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{
		"/rev.js": "// @title: Reverse List\nfunction rev(xs) { return xs.reverse(); }",
	})

	rec := get(t, s, "/snippets/rev.js")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Reverse List") {
		t.Error("missing title")
	}
	if !strings.Contains(body, "https://github.com/alice/snips/blob/main/snippets/rev.js") {
		t.Error("missing deep link")
	}
	if !strings.Contains(body, "language-javascript") {
		t.Error("missing language class")
	}
	if !strings.Contains(body, "copy-button") {
		t.Error("missing copy control")
	}
}

func TestSnippetPage_Unknown(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{
		"/a.py": "# @title: A",
	})

	rec := get(t, s, "/snippets/missing.py")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestThemeToggle(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{"/a.py": "# @title: A"})

	req := httptest.NewRequest("POST", "/theme", strings.NewReader("theme=dark"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	page := get(t, s, "/", cookies...)
	if !strings.Contains(page.Body.String(), `data-theme="dark"`) {
		t.Error("expected the dark theme on subsequent pages")
	}
}

func TestTheme_AbsentFollowsSystem(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{"/a.py": "# @title: A"})

	rec := get(t, s, "/")
	if strings.Contains(rec.Body.String(), "data-theme=") {
		t.Error("no stored choice should mean no data-theme attribute")
	}
}

func TestHealthz(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{"/a.py": "# @title: A"})

	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestStaticAssets(t *testing.T) {
	s, _ := newTestSite(t, map[string]string{"/a.py": "# @title: A"})

	for _, path := range []string{"/static/style.css", "/static/effects.js"} {
		rec := get(t, s, path)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d", path, rec.Code)
		}
	}
}

func TestLanguageClass(t *testing.T) {
	cases := map[string]string{
		"C#":         "language-csharp",
		"C++":        "language-cpp",
		"Python":     "language-python",
		"JavaScript": "language-javascript",
	}
	for label, want := range cases {
		if got := languageClass(label); got != want {
			t.Errorf("languageClass(%q) = %q, want %q", label, got, want)
		}
	}
}
