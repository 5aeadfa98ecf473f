// internal/builder/models.go
package builder

import (
	"html/template"
)

// NavigationItem is one category link in the navigation model.
type NavigationItem struct {
	Href       string `json:"href"`
	Name       string `json:"name"`
	ItemLength int    `json:"itemLength"`
}

// Navigation is the cross-document index handed to every rendered
// document. Category names the category currently being rendered and is
// empty on the index and in combined mode. Each document receives its own
// value copy, never a shared instance.
type Navigation struct {
	Category     string           `json:"category"`
	Index        string           `json:"index"`
	Items        []NavigationItem `json:"items"`
	LengthUnique int              `json:"lengthUnique"`
	LengthTotal  int              `json:"lengthTotal"`
}

// ItemView is the render-ready form of one inventory item. Fragment has
// been through sanitization (unless the build is unsafe) and Description
// through the markdown renderer.
type ItemView struct {
	ID          string
	Name        string
	Category    string
	Fragment    template.HTML
	Description template.HTML
	Usage       []string
}

// CategoryView is one category with its items in final sorted order.
type CategoryView struct {
	Name  string
	Items []ItemView
}

// Payload is the data a template is executed with.
type Payload struct {
	Categories []CategoryView
	Navigation Navigation
	// IsIndex is true for the index document and for the single combined
	// document, false for per-category documents.
	IsIndex bool
	// Name and ItemLength are set on per-category documents only.
	Name         string
	ItemLength   int
	LengthUnique int
	LengthTotal  int
}

// Document pairs a destination path with the payload rendered into it.
type Document struct {
	Dest    string
	Payload Payload
}
