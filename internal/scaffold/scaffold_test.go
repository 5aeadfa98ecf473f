package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compinv/internal/builder"
	"compinv/internal/config"
)

func TestCreateWritesStarterProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Create(dir))

	opts, err := config.Load(filepath.Join(dir, "compinv.yaml"))
	require.NoError(t, err)
	assert.NoError(t, opts.Validate())
}

func TestScaffoldedProjectBuilds(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Create(dir))

	opts, err := config.Load(filepath.Join(dir, "compinv.yaml"))
	require.NoError(t, err)

	// Paths in the starter config are relative to the project directory.
	opts.Template = filepath.Join(dir, "tmpl", "template.html")
	opts.Storage = filepath.Join(dir, "component-inventory.json")
	opts.Dest.Path = filepath.Join(dir, "dist")
	opts.DestPartials = filepath.Join(dir, "dist", "partials")
	opts.DestData = filepath.Join(dir, "dist", "inventory.json")

	result, err := builder.Build(opts, builder.BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Documents)
	assert.Equal(t, 3, result.LengthUnique, "duplicate button plus breadcrumb plus footnote")
	assert.Equal(t, 4, result.LengthTotal)
	assert.Equal(t, 3, result.Categories, "Forms, Navigation, and the fallback")
}
