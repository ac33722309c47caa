package site

import "html/template"

var siteTemplates = template.Must(parseSiteTemplates())

func parseSiteTemplates() (*template.Template, error) {
	t := template.New("site")
	for name, text := range map[string]string{
		"head":    headTemplate,
		"foot":    footTemplate,
		"index":   indexTemplate,
		"snippet": snippetTemplate,
		"error":   errorTemplate,
	} {
		if _, err := t.New(name).Parse(text); err != nil {
			return nil, err
		}
	}
	return t, nil
}

const headTemplate = `<!DOCTYPE html>
<html lang="en"{{if .Theme}} data-theme="{{.Theme}}"{{end}}>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.SiteName}} — Portfolio</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<header class="topnav">
  <nav>
    <a href="/#about" class="nav-link">About</a>
    <a href="/#projects" class="nav-link">Projects</a>
    <a href="/#snippets" class="nav-link">Snippets</a>
  </nav>
  <form method="post" action="/theme">
    <button type="submit" id="theme-toggle" title="Toggle theme">{{if eq .Theme "dark"}}Light{{else}}Dark{{end}} mode</button>
  </form>
</header>
<main>
`

const footTemplate = `</main>
<footer>
  <p>Built with snippets fetched live from GitHub.</p>
</footer>
<script src="/static/effects.js"></script>
</body>
</html>
`

const indexTemplate = `{{template "head" .}}
<section id="about" class="reveal">
  <h1>{{.SiteName}}</h1>
  <p>Selected projects and a living library of code snippets, pulled straight
  from <a href="https://github.com/{{.Owner}}/{{.Repo}}">{{.Owner}}/{{.Repo}}</a>.</p>
</section>

{{if .Projects}}
<section id="projects" class="reveal">
  <h2>Projects</h2>
  <div class="project-grid">
  {{range .Projects}}
    <a class="project" href="{{.HTMLURL}}">
      <h3>{{.Name}}</h3>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
      <p class="project-meta">{{if .Language}}{{.Language}} · {{end}}★ {{.Stars}}</p>
    </a>
  {{end}}
  </div>
</section>
{{end}}

<section id="snippets">
  <h2>Code snippets</h2>

  <div id="category-filters">
  {{$selected := .Selected}}
  {{range .Categories}}
    <a class="filter{{if eq . $selected}} active{{end}}" href="/?category={{.}}" data-category="{{.}}">{{.}}</a>
  {{end}}
  </div>

  {{if .Error}}
  <div id="error-panel" class="error-panel" role="alert">{{.Error}}</div>
  {{else if .Empty}}
  <p id="empty-state">No snippets in this category yet.</p>
  {{else}}
  <div id="snippet-container" class="card-grid">
  {{range .Cards}}
    <a class="card reveal" href="/snippets/{{.Filename}}">
      <h3>{{.Title}}</h3>
      <span class="lang">{{.Language}}</span>
      <p class="desc">{{.Description}}</p>
      <p class="meta">{{.LineCount}} lines</p>
      {{if .Tags}}<p class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</p>{{end}}
      <p class="badges">{{range .Badges}}<span class="badge">{{.}}</span>{{end}}</p>
    </a>
  {{end}}
  </div>
  {{end}}
</section>
{{template "foot" .}}`

const snippetTemplate = `{{template "head" .}}
<article class="snippet-page">
  <p><a href="/">&larr; Back to all snippets</a></p>
  <h1>{{.Title}}</h1>
  {{if .Description}}<p class="desc">{{.Description}}</p>{{end}}
  <p class="meta">
    <span class="lang">{{.Language}}</span> · {{.LineCount}} lines
    · <a href="{{.DeepLink}}">View on GitHub</a>
  </p>
  {{if .Tags}}<p class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</p>{{end}}
  <div class="code-block {{.LanguageClass}}">
    <button class="copy-button" data-label="Copy">Copy</button>
    {{.Code}}
  </div>
  <textarea class="copy-source" hidden readonly>{{.Content}}</textarea>
</article>
{{template "foot" .}}`

const errorTemplate = `{{template "head" .}}
<section class="error-page">
  <div id="error-panel" class="error-panel" role="alert">{{.Message}}</div>
  <p><a href="/">Back to the portfolio</a></p>
</section>
{{template "foot" .}}`
