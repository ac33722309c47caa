package snippet

import "strings"

// languageNames maps recognized source extensions to display labels.
var languageNames = map[string]string{
	"cs":   "C#",
	"js":   "JavaScript",
	"py":   "Python",
	"java": "Java",
	"cpp":  "C++",
	"c":    "C",
	"ts":   "TypeScript",
	"jsx":  "JSX",
	"tsx":  "TSX",
}

// DefaultLanguage labels snippets whose extension is missing or unrecognized.
const DefaultLanguage = "C#"

// IsSourceFile reports whether the filename carries a recognized source
// extension.
func IsSourceFile(filename string) bool {
	_, ok := languageNames[extensionOf(filename)]
	return ok
}

// LanguageFor returns the display label for the filename's extension,
// falling back to DefaultLanguage for unknown or missing extensions.
func LanguageFor(filename string) string {
	if label, ok := languageNames[extensionOf(filename)]; ok {
		return label
	}
	return DefaultLanguage
}

// TrimExtension strips a recognized source extension from the filename,
// case-insensitively. Unrecognized extensions are left in place.
func TrimExtension(filename string) string {
	ext := extensionOf(filename)
	if _, ok := languageNames[ext]; !ok {
		return filename
	}
	return filename[:len(filename)-len(ext)-1]
}

func extensionOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
