package site

import (
	"bytes"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// languageClass maps a display label to the css class the copy widget and
// stylesheet key off, e.g. "language-csharp".
func languageClass(label string) string {
	name := strings.ToLower(label)
	switch label {
	case "C#":
		name = "csharp"
	case "C++":
		name = "cpp"
	}
	return "language-" + name
}

// highlight renders content as highlighted HTML. The lexer is picked from
// the filename first, then the display label; unknown inputs fall back to
// plain text rather than failing the page.
func highlight(content, filename, label string) (template.HTML, error) {
	lexer := lexers.Match(filename)
	if lexer == nil {
		lexer = lexers.Get(label)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}
	formatter := chromahtml.New(
		chromahtml.WithLineNumbers(true),
		chromahtml.WithClasses(false),
	)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// plainCode is the unhighlighted fallback, escaped.
func plainCode(content string) template.HTML {
	return template.HTML("<pre><code>" + template.HTMLEscapeString(content) + "</code></pre>")
}
