package snippet

// Metadata holds the attributes extracted from a snippet's leading comments
// and filename.
type Metadata struct {
	Title       string
	Description string
	Primary     string
	Categories  []string
	Language    string
	Tags        []string
}

// Snippet is one parsed, displayable unit derived from a single source file
// fetched from the snippet repository. Immutable once built; the whole list
// is rebuilt on every load.
type Snippet struct {
	Filename  string
	Content   string
	LineCount int
	Meta      Metadata
	HTMLURL   string
}

// IndexEntry is the JSON export shape for one snippet.
type IndexEntry struct {
	Filename    string   `json:"filename"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Categories  []string `json:"categories,omitempty"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags,omitempty"`
	LineCount   int      `json:"line_count"`
	HTMLURL     string   `json:"html_url,omitempty"`
}

// Index converts snippets to their export records.
func Index(snippets []Snippet) []IndexEntry {
	entries := make([]IndexEntry, 0, len(snippets))
	for _, s := range snippets {
		entries = append(entries, IndexEntry{
			Filename:    s.Filename,
			Title:       s.Meta.Title,
			Description: s.Meta.Description,
			Category:    s.Meta.Primary,
			Categories:  s.Meta.Categories,
			Language:    s.Meta.Language,
			Tags:        s.Meta.Tags,
			LineCount:   s.LineCount,
			HTMLURL:     s.HTMLURL,
		})
	}
	return entries
}
