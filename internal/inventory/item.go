// internal/inventory/item.go
package inventory

// Item is the canonical, deduplicated form of a component record.
// The template payload is captured from the first record seen for an ID;
// later records only extend Usage.
type Item struct {
	ID       string
	Name     string
	Category string
	// Origin identifies where the record instance came from, typically a
	// source file path.
	Origin string
	// ViewID is a secondary identity used only for distinct-view counting.
	ViewID string
	// Template is the raw markup fragment captured for this component.
	Template string
	// Description is optional markdown documentation for the component.
	Description string
	// Usage lists the distinct origins that produced this ID, in the order
	// they were first seen.
	Usage []string
}

// AppendUsage records an origin for this item. Repeated origins are
// ignored so Usage stays duplicate-free and insertion-ordered.
func (it *Item) AppendUsage(origin string) {
	for _, u := range it.Usage {
		if u == origin {
			return
		}
	}
	it.Usage = append(it.Usage, origin)
}
