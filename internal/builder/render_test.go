package builder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compinv/internal/inventory"
)

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.html")
	require.NoError(t, os.WriteFile(path, []byte(`<h1>{{ lower .Navigation.Category }}</h1>`), 0644))

	tmpl, err := LoadTemplate(path)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, tmpl.Execute(&sb, Payload{Navigation: Navigation{Category: "Forms"}}))
	assert.Equal(t, "<h1>forms</h1>", sb.String())
}

func TestLoadTemplateErrors(t *testing.T) {
	_, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.html")
	require.NoError(t, os.WriteFile(bad, []byte(`{{ range }}`), 0644))
	_, err = LoadTemplate(bad)
	assert.Error(t, err)
}

func TestBuildViewsSanitizesFragments(t *testing.T) {
	prepared := preparedWith(t, &inventory.Item{
		ID:       "btn",
		Name:     "Button",
		Category: "Forms",
		Origin:   "a.html",
		Template: `<button>Go</button><script>alert(1)</script>`,
	})

	views, err := buildViews(prepared, BuildOptions{})
	require.NoError(t, err)

	fragment := string(views[0].Items[0].Fragment)
	assert.Contains(t, fragment, "Go")
	assert.NotContains(t, fragment, "<script>")
}

func TestBuildViewsUnsafeKeepsFragments(t *testing.T) {
	raw := `<button onclick="go()">Go</button>`
	prepared := preparedWith(t, &inventory.Item{
		ID: "btn", Name: "Button", Category: "Forms", Origin: "a.html", Template: raw,
	})

	views, err := buildViews(prepared, BuildOptions{Unsafe: true})
	require.NoError(t, err)
	assert.Equal(t, raw, string(views[0].Items[0].Fragment))
}

func TestBuildViewsRendersDescriptions(t *testing.T) {
	prepared := preparedWith(t, &inventory.Item{
		ID:          "btn",
		Name:        "Button",
		Category:    "Forms",
		Origin:      "a.html",
		Description: "A **primary** action.",
	})

	views, err := buildViews(prepared, BuildOptions{})
	require.NoError(t, err)

	description := string(views[0].Items[0].Description)
	assert.Contains(t, description, "<strong>primary</strong>")
}

func TestBuildViewsKeepsItemOrder(t *testing.T) {
	prepared := preparedWith(t,
		&inventory.Item{ID: "inp", Name: "Input", Category: "Forms", Origin: "a.html"},
		&inventory.Item{ID: "btn", Name: "Button", Category: "Forms", Origin: "a.html"},
	)

	views, err := buildViews(prepared, BuildOptions{})
	require.NoError(t, err)

	require.Len(t, views, 1)
	require.Len(t, views[0].Items, 2)
	assert.Equal(t, "Button", views[0].Items[0].Name)
	assert.Equal(t, "Input", views[0].Items[1].Name)
}
