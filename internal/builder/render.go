// internal/builder/render.go
package builder

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"compinv/internal/inventory"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// templateFuncs is the helper namespace available inside inventory
// templates, general-purpose collection utilities in the spirit of the
// usual template helper imports.
var templateFuncs = template.FuncMap{
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"join":  strings.Join,
	"keys": func(m map[string]any) []string {
		out := make([]string, 0, len(m))
		for k := range m {
			out = append(out, k)
		}
		sort.Strings(out)
		return out
	},
	"add": func(a, b int) int { return a + b },
}

// LoadTemplate parses the document template from disk. The file must be
// valid UTF-8; an unreadable or unparsable template is a fatal
// configuration error.
func LoadTemplate(path string) (*template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read template at %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("template file is not valid UTF-8: %s", path)
	}

	tmpl, err := template.New("inventory").Funcs(templateFuncs).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("could not parse template %s: %w", path, err)
	}
	return tmpl, nil
}

// buildViews turns prepared categories into render-ready views. Template
// fragments pass through the sanitizer unless the build is unsafe, and
// markdown descriptions are rendered to HTML here, once, rather than per
// document.
func buildViews(prepared *inventory.PreparedInventory, opts BuildOptions) ([]CategoryView, error) {
	views := make([]CategoryView, len(prepared.Categories))

	for i, cat := range prepared.Categories {
		view := CategoryView{
			Name:  cat.Name,
			Items: make([]ItemView, len(cat.Ordered)),
		}
		for j, item := range cat.Ordered {
			fragment := item.Template
			if !opts.Unsafe {
				fragment = htmlSanitizer.Sanitize(fragment)
			}

			var description string
			if item.Description != "" {
				var buf bytes.Buffer
				if err := markdownRenderer.Convert([]byte(item.Description), &buf); err != nil {
					return nil, fmt.Errorf("failed to render description for %s: %w", item.ID, err)
				}
				description = buf.String()
				if !opts.Unsafe {
					description = htmlSanitizer.Sanitize(description)
				}
			}

			view.Items[j] = ItemView{
				ID:          item.ID,
				Name:        item.Name,
				Category:    item.Category,
				Fragment:    template.HTML(fragment),
				Description: template.HTML(description),
				Usage:       item.Usage,
			}
		}
		views[i] = view
	}
	return views, nil
}

// renderDocument executes the template and writes the result to the
// document's destination.
func renderDocument(tmpl *template.Template, doc Document) error {
	outFile, err := os.Create(doc.Dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", doc.Dest, err)
	}
	defer outFile.Close()

	if err := tmpl.Execute(outFile, doc.Payload); err != nil {
		return fmt.Errorf("failed to render %s: %w", doc.Dest, err)
	}
	return nil
}
