// Package store owns the in-memory snippet list and the load pipeline that
// rebuilds it from the configured GitHub repository.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Briskwoods/portfolio/internal/config"
	"github.com/Briskwoods/portfolio/internal/github"
	"github.com/Briskwoods/portfolio/internal/snippet"
)

// AllCategories is the filter value that matches every snippet.
const AllCategories = "all"

// ErrNoSnippets indicates the configured folder contained no files with a
// recognized source extension.
var ErrNoSnippets = errors.New("no snippets found in the configured folder")

// Store holds the loaded snippet list and the active category filter. The
// list is replaced wholesale on every load, never merged.
type Store struct {
	mu       sync.RWMutex
	loadMu   sync.Mutex
	snippets []snippet.Snippet
	selected string
	coll     *collate.Collator
}

// New creates an empty Store with the filter set to AllCategories.
func New() *Store {
	return &Store{
		selected: AllCategories,
		coll:     collate.New(language.English),
	}
}

// LoadAll fetches the folder listing, pulls every recognized source file
// concurrently, parses metadata, and replaces the store contents with the
// result sorted by title. A single file's failure is logged and that file
// dropped; it never aborts the load. Overlapping calls serialize on loadMu
// rather than interleave.
func (s *Store) LoadAll(ctx context.Context, client github.Client, cfg config.Config) ([]snippet.Snippet, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	listing, err := github.ListDirectory(ctx, client, cfg.Username, cfg.Repo, cfg.Folder, cfg.Branch)
	if err != nil {
		return nil, fmt.Errorf("loading snippets: %w", err)
	}

	var files []github.RemoteFile
	for _, f := range listing {
		if f.Type == "file" && snippet.IsSourceFile(f.Name) {
			files = append(files, f)
		}
	}
	if len(files) == 0 {
		return nil, ErrNoSnippets
	}

	results := make([]*snippet.Snippet, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			text, err := github.FetchFileText(gctx, f.DownloadURL, cfg.GitHubToken)
			if err != nil {
				log.Printf("Skipping snippet %s: %v", f.Name, err)
				return nil
			}
			results[i] = &snippet.Snippet{
				Filename:  f.Name,
				Content:   text,
				LineCount: strings.Count(text, "\n") + 1,
				Meta:      snippet.Parse(text, f.Name),
				HTMLURL:   f.HTMLURL,
			}
			return nil
		})
	}
	// Per-file errors are swallowed above; Wait is the join point.
	_ = g.Wait()

	loaded := make([]snippet.Snippet, 0, len(results))
	for _, r := range results {
		if r != nil {
			loaded = append(loaded, *r)
		}
	}
	sort.SliceStable(loaded, func(i, j int) bool {
		return s.coll.CompareString(loaded[i].Meta.Title, loaded[j].Meta.Title) < 0
	})

	s.mu.Lock()
	s.snippets = loaded
	s.mu.Unlock()
	return loaded, nil
}

// Snippets returns the current contents.
func (s *Store) Snippets() []snippet.Snippet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snippets
}

// Len reports the number of loaded snippets.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snippets)
}

// Select records the active category filter.
func (s *Store) Select(category string) {
	s.mu.Lock()
	s.selected = category
	s.mu.Unlock()
}

// Selected returns the active category filter.
func (s *Store) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Filter returns the snippets matching the category. AllCategories matches
// everything; otherwise a snippet matches when its category list contains
// the value, or when the list is empty and its primary category equals it.
func (s *Store) Filter(category string) []snippet.Snippet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == AllCategories || category == "" {
		return s.snippets
	}
	var matched []snippet.Snippet
	for _, sn := range s.snippets {
		if Matches(sn, category) {
			matched = append(matched, sn)
		}
	}
	return matched
}

// Matches reports whether one snippet belongs to the category.
func Matches(sn snippet.Snippet, category string) bool {
	if category == AllCategories || category == "" {
		return true
	}
	if len(sn.Meta.Categories) == 0 {
		return sn.Meta.Primary == category
	}
	for _, c := range sn.Meta.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Categories returns the distinct filter values in first-seen order,
// starting with AllCategories.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{AllCategories: true}
	out := []string{AllCategories}
	for _, sn := range s.snippets {
		cats := sn.Meta.Categories
		if len(cats) == 0 {
			cats = []string{sn.Meta.Primary}
		}
		for _, c := range cats {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
