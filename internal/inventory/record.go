// internal/inventory/record.go
package inventory

import (
	"compinv/internal/util"
)

// Normalize turns one raw storage record into an Item. It reports false
// for anything that is not a structured object, and for objects that carry
// neither an id nor a name to derive one from. No other validation happens
// here; empty fields surface later in grouping and sorting.
func Normalize(raw any) (*Item, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}

	item := &Item{
		ID:          stringField(m, "id"),
		Name:        stringField(m, "name"),
		Category:    stringField(m, "category"),
		Origin:      stringField(m, "origin"),
		ViewID:      stringField(m, "viewId"),
		Template:    templateField(m),
		Description: stringField(m, "description"),
	}

	// Records without an explicit id get a deterministic one derived from
	// the display name.
	if item.ID == "" {
		item.ID = util.Slugify(item.Name)
	}
	if item.ID == "" {
		return nil, false
	}

	return item, true
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// templateField accepts the payload either as a single string or as a
// list of content lines.
func templateField(m map[string]any) string {
	switch v := m["template"].(type) {
	case string:
		return v
	case []any:
		lines := make([]string, 0, len(v))
		for _, line := range v {
			if s, ok := line.(string); ok {
				lines = append(lines, s)
			}
		}
		return util.JoinLines(lines)
	default:
		return ""
	}
}
