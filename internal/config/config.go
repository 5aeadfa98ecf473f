// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dest describes where rendered inventory documents end up. Ext is the
// extension of the files actually written; ProductionExt is the extension
// used when building links between documents. They may differ, e.g. when
// the written files are post-processed before deployment.
type Dest struct {
	Path          string `yaml:"path"`
	Filename      string `yaml:"filename"`
	Ext           string `yaml:"ext"`
	ProductionExt string `yaml:"productionExt"`
}

// Options is the full configuration surface of an inventory build.
// The `yaml` tags are used by the parser to map file keys to struct fields.
type Options struct {
	// Template is the path of the document template.
	Template string `yaml:"template"`
	// Storage is the path of the JSON document holding the raw records.
	Storage string `yaml:"storage"`
	// DestPartials is the directory individual partial files are written to.
	DestPartials string `yaml:"destPartials"`
	Dest         Dest   `yaml:"dest"`
	// Expand writes one document per category plus an index instead of a
	// single combined document.
	Expand bool `yaml:"expand"`
	// StorePartials writes each newly seen item's template payload as a
	// standalone file under DestPartials.
	StorePartials bool   `yaml:"storePartials"`
	PartialExt    string `yaml:"partialExt"`
	// CategoryFallback is the category assigned to records without one.
	CategoryFallback string `yaml:"categoryFallback"`
	// DestData is the path of the navigation snapshot JSON. Empty skips
	// the snapshot write.
	DestData string `yaml:"destData"`
}

// DefaultOptions returns the option set a build starts from before any
// file or flag overrides are applied.
func DefaultOptions() Options {
	return Options{
		Template:     "./tmpl/template.html",
		Storage:      "./component-inventory.json",
		DestPartials: "./dist/partials",
		Dest: Dest{
			Path:          "./dist",
			Filename:      "component-inventory",
			Ext:           ".html",
			ProductionExt: ".html",
		},
		Expand:           false,
		StorePartials:    false,
		PartialExt:       ".html",
		CategoryFallback: "No category",
		DestData:         "./dist/inventory.json",
	}
}

// Load reads an options file and overlays it on the defaults. Keys absent
// from the file keep their default values.
func Load(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	return opts, nil
}

// Validate reports the first configuration problem it finds. It is called
// before any processing begins so a bad build fails up front.
func (o Options) Validate() error {
	if o.Template == "" {
		return fmt.Errorf("template path must not be empty")
	}
	if o.Storage == "" {
		return fmt.Errorf("storage path must not be empty")
	}
	if o.Dest.Path == "" {
		return fmt.Errorf("dest.path must not be empty")
	}
	if o.Dest.Filename == "" {
		return fmt.Errorf("dest.filename must not be empty")
	}
	if !strings.HasPrefix(o.Dest.Ext, ".") {
		return fmt.Errorf("dest.ext %q must start with a dot", o.Dest.Ext)
	}
	if !strings.HasPrefix(o.Dest.ProductionExt, ".") {
		return fmt.Errorf("dest.productionExt %q must start with a dot", o.Dest.ProductionExt)
	}
	if o.StorePartials {
		if o.DestPartials == "" {
			return fmt.Errorf("destPartials must not be empty when storePartials is set")
		}
		if !strings.HasPrefix(o.PartialExt, ".") {
			return fmt.Errorf("partialExt %q must start with a dot", o.PartialExt)
		}
	}
	return nil
}
