// internal/builder/builder.go
package builder

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"compinv/internal/config"
	"compinv/internal/inventory"
)

type BuildOptions struct {
	// Unsafe disables HTML sanitization of captured fragments.
	Unsafe bool
	Debug  bool
}

// Result summarizes one completed build.
type Result struct {
	Documents    int
	Categories   int
	LengthUnique int
	LengthTotal  int
	ViewCount    int
}

// Build runs a full inventory build: read the storage document, prepare
// the data, render every document, and write the optional navigation
// snapshot. All preconditions are checked before any output is written.
func Build(opts config.Options, buildOpts BuildOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := LoadTemplate(opts.Template)
	if err != nil {
		return nil, err
	}

	storage, err := inventory.LoadStorage(opts.Storage)
	if err != nil {
		return nil, err
	}

	return BuildFromStorage(storage, tmpl, opts, buildOpts)
}

// BuildFromStorage is Build for callers that already hold the storage
// document in memory, e.g. upstream tools that collected the records
// themselves.
func BuildFromStorage(storage *inventory.Storage, tmpl *template.Template, opts config.Options, buildOpts BuildOptions) (*Result, error) {
	var store inventory.PartialStore
	if opts.StorePartials {
		if err := os.MkdirAll(opts.DestPartials, 0755); err != nil {
			return nil, fmt.Errorf("failed to create partials directory: %w", err)
		}
		store = &partialDir{dir: opts.DestPartials, ext: opts.PartialExt}
	}

	prepared, err := inventory.Prepare(storage, opts.CategoryFallback, store)
	if err != nil {
		return nil, err
	}

	views, err := buildViews(prepared, buildOpts)
	if err != nil {
		return nil, err
	}

	nav := BuildNavigation(prepared, opts.Dest)
	docs := Assemble(prepared, views, nav, opts)

	if err := os.MkdirAll(opts.Dest.Path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination directory: %w", err)
	}

	for _, doc := range docs {
		if err := renderDocument(tmpl, doc); err != nil {
			return nil, err
		}
	}

	if opts.DestData != "" {
		if err := writeNavigationSnapshot(opts.DestData, nav); err != nil {
			return nil, err
		}
	}

	return &Result{
		Documents:    len(docs),
		Categories:   len(prepared.Categories),
		LengthUnique: prepared.LengthUnique,
		LengthTotal:  prepared.LengthTotal,
		ViewCount:    prepared.ViewCount,
	}, nil
}

// partialDir persists newly seen template payloads as standalone files,
// one per item id.
type partialDir struct {
	dir string
	ext string
}

func (p *partialDir) StorePartial(id, payload string) error {
	return os.WriteFile(filepath.Join(p.dir, id+p.ext), []byte(payload), 0644)
}

// writeNavigationSnapshot stores the navigation model as JSON so later
// runs or other tools can pick it up.
func writeNavigationSnapshot(path string, nav Navigation) error {
	data, err := json.MarshalIndent(map[string]Navigation{"navigation": nav}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode navigation snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write navigation snapshot: %w", err)
	}
	return nil
}
