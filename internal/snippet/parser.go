// Package snippet defines the snippet data model and the metadata parser
// that extracts titles, descriptions, categories, and tags from comment
// markers in the first lines of a source file.
package snippet

import "strings"

// headerWindow is how many leading lines are scanned for tag markers.
const headerWindow = 20

// DefaultCategory groups snippets that declare no category of their own.
const DefaultCategory = "General"

const (
	markerTitle       = "@title:"
	markerDescription = "@description:"
	markerCategory    = "@category:"
	markerTags        = "@tags:"
)

// Parse extracts Metadata from a file's content and name. It is pure and
// deterministic: identical inputs always produce identical output.
//
// Markers are matched by substring containment anywhere on a line, so a
// marker mid-line still counts, and a repeated marker inside the scanned
// window overwrites the earlier value. Existing snippet files depend on
// both quirks, so they are kept as-is.
func Parse(content, filename string) Metadata {
	meta := Metadata{
		Title:    TrimExtension(filename),
		Primary:  DefaultCategory,
		Language: LanguageFor(filename),
	}

	lines := strings.Split(content, "\n")
	if len(lines) > headerWindow {
		lines = lines[:headerWindow]
	}
	for _, line := range lines {
		if v, ok := tagValue(line, markerTitle); ok {
			meta.Title = v
		}
		if v, ok := tagValue(line, markerDescription); ok {
			meta.Description = v
		}
		if v, ok := tagValue(line, markerCategory); ok {
			meta.Categories = splitTrimmed(v, true)
			if len(meta.Categories) > 0 {
				meta.Primary = meta.Categories[0]
			}
		}
		if v, ok := tagValue(line, markerTags); ok {
			// Tags keep empty elements; "a,,b" yields three entries.
			meta.Tags = splitTrimmed(v, false)
		}
	}

	if meta.Description == "" {
		meta.Description = fallbackDescription(content)
	}
	return meta
}

// tagValue returns the marker's value: the rest of the line after the
// marker, with trailing block-comment characters stripped and whitespace
// trimmed.
func tagValue(line, marker string) (string, bool) {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return "", false
	}
	v := strings.TrimSpace(line[idx+len(marker):])
	v = strings.TrimRight(v, "*/")
	return strings.TrimSpace(v), true
}

func splitTrimmed(v string, dropEmpty bool) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if dropEmpty && p == "" {
			continue
		}
		out = append(out, p)
	}
	if dropEmpty && len(out) == 0 {
		return nil
	}
	return out
}

// fallbackDescription searches the whole content for a <summary> block or a
// /** ... */ comment and returns the first line of its trimmed body.
func fallbackDescription(content string) string {
	if inner, ok := between(content, "<summary>", "</summary>"); ok {
		return firstLine(inner)
	}
	if inner, ok := between(content, "/**", "*/"); ok {
		return firstLine(inner)
	}
	return ""
}

func between(s, open, close string) (string, bool) {
	start := strings.Index(s, open)
	if start < 0 {
		return "", false
	}
	rest := s[start+len(open):]
	end := strings.Index(rest, close)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(strings.TrimLeft(line, "*/ \t"))
}
