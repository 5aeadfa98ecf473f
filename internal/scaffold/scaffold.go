// internal/scaffold/scaffold.go
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Create writes a starter inventory project into dir: a config file, a
// document template, and a small sample storage document, so a build
// works out of the box.
func Create(dir string) error {
	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(dir, path), 0755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(dir, path), []byte(content), 0644)
	}

	for _, d := range []string{"tmpl", "dist"} {
		if err := mkdir(d); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	files := map[string]string{
		"compinv.yaml":             configYamlContent,
		"tmpl/template.html":       templateHtmlContent,
		"component-inventory.json": storageJsonContent,
	}
	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}
	return nil
}

// Constants for default file contents

const configYamlContent = `template: ./tmpl/template.html
storage: ./component-inventory.json
destPartials: ./dist/partials
dest:
  path: ./dist
  filename: component-inventory
  ext: .html
  productionExt: .html
expand: false
storePartials: false
partialExt: .html
categoryFallback: No category
destData: ./dist/inventory.json
`

const templateHtmlContent = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Component Inventory</title>
</head>
<body>
  <header>
    <h1>Component Inventory</h1>
    <p>{{ .Navigation.LengthUnique }} unique components, {{ .Navigation.LengthTotal }} occurrences.</p>
    <nav>
      <a href="{{ .Navigation.Index }}">Index</a>
      {{ range .Navigation.Items }}
      <a href="{{ .Href }}">{{ .Name }} ({{ .ItemLength }})</a>
      {{ end }}
    </nav>
  </header>
  <main>
    {{ range .Categories }}
    <section>
      <h2>{{ .Name }}</h2>
      {{ range .Items }}
      <article id="{{ .ID }}">
        <h3>{{ .Name }}</h3>
        {{ if .Description }}<div class="description">{{ .Description }}</div>{{ end }}
        <div class="fragment">{{ .Fragment }}</div>
        <p class="usage">Used in: {{ join .Usage ", " }}</p>
      </article>
      {{ end }}
    </section>
    {{ end }}
  </main>
</body>
</html>
`

const storageJsonContent = `{
  "items": [
    {
      "id": "button-primary",
      "name": "Primary Button",
      "category": "Forms",
      "origin": "pages/home.html",
      "viewId": "home",
      "template": "<button class=\"btn btn--primary\">Submit</button>",
      "description": "The **primary** call to action."
    },
    {
      "id": "button-primary",
      "name": "Primary Button",
      "category": "Forms",
      "origin": "pages/contact.html",
      "viewId": "contact",
      "template": "<button class=\"btn btn--primary\">Send</button>"
    },
    {
      "id": "breadcrumb",
      "name": "Breadcrumb",
      "category": "Navigation",
      "origin": "pages/docs.html",
      "viewId": "docs",
      "template": "<ol class=\"breadcrumb\"><li>Home</li></ol>"
    },
    {
      "name": "Footnote",
      "origin": "pages/docs.html",
      "viewId": "docs",
      "template": "<aside class=\"footnote\">Fine print.</aside>"
    }
  ]
}
`
