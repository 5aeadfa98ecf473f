// internal/inventory/tracker.go
package inventory

import (
	"fmt"
	"sort"
)

// PartialStore persists the template payload of a newly admitted item.
// A store is asked to write at most once per item ID.
type PartialStore interface {
	StorePartial(id, payload string) error
}

// Category is a named group of items. Items is keyed by item ID for O(1)
// duplicate lookup; Ordered is populated by Finalize with the items sorted
// by name.
type Category struct {
	Name    string
	Items   map[string]*Item
	Ordered []*Item

	// insertion order of IDs, the tie-break for equal names
	order []string
}

// Tracker deduplicates records by ID, accumulates usage, and groups the
// surviving items into categories. It is not safe for concurrent use;
// admission is a check-then-act sequence over the identity map.
type Tracker struct {
	fallback string
	store    PartialStore

	items         map[string]*Item
	categories    []*Category
	categoryIndex map[string]int
	views         map[string]struct{}
	total         int
}

// NewTracker returns an empty tracker. fallback is the category assigned
// to items without one. store may be nil to disable partial persistence.
func NewTracker(fallback string, store PartialStore) *Tracker {
	return &Tracker{
		fallback:      fallback,
		store:         store,
		items:         make(map[string]*Item),
		categoryIndex: make(map[string]int),
		views:         make(map[string]struct{}),
	}
}

// Admit records one normalized item. It reports whether the item's ID was
// new. A repeat admission only appends the origin to the existing item's
// usage; the payload and the category recorded first win. The returned
// error only ever comes from the partial store.
func (t *Tracker) Admit(item *Item) (bool, error) {
	t.total++
	t.views[item.ViewID] = struct{}{}

	if existing, ok := t.items[item.ID]; ok {
		existing.AppendUsage(item.Origin)
		return false, nil
	}

	if item.Category == "" {
		item.Category = t.fallback
	}
	item.AppendUsage(item.Origin)
	t.items[item.ID] = item

	cat := t.category(item.Category)
	cat.Items[item.ID] = item
	cat.order = append(cat.order, item.ID)

	if t.store != nil {
		if err := t.store.StorePartial(item.ID, item.Template); err != nil {
			return true, fmt.Errorf("failed to store partial for %s: %w", item.ID, err)
		}
	}
	return true, nil
}

// category returns the group for name, creating it on first use.
func (t *Tracker) category(name string) *Category {
	if i, ok := t.categoryIndex[name]; ok {
		return t.categories[i]
	}
	cat := &Category{
		Name:  name,
		Items: make(map[string]*Item),
	}
	t.categories = append(t.categories, cat)
	t.categoryIndex[name] = len(t.categories) - 1
	return cat
}

// PreparedInventory is the fully grouped and sorted result of one batch.
type PreparedInventory struct {
	// Categories sorted ascending by name.
	Categories []*Category
	// LengthUnique is the count of distinct item IDs across all categories.
	LengthUnique int
	// LengthTotal is the count of all admitted records, duplicates included.
	LengthTotal int
	// ViewCount is the number of distinct view IDs observed.
	ViewCount int
}

// Finalize imposes the deterministic ordering: categories ascending by
// name, items within each category ascending by name. Both sorts are
// stable; items with equal (or absent) names keep their insertion order.
func (t *Tracker) Finalize() *PreparedInventory {
	categories := make([]*Category, len(t.categories))
	copy(categories, t.categories)
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	for _, cat := range categories {
		cat.Ordered = make([]*Item, 0, len(cat.order))
		for _, id := range cat.order {
			cat.Ordered = append(cat.Ordered, cat.Items[id])
		}
		sort.SliceStable(cat.Ordered, func(i, j int) bool {
			return cat.Ordered[i].Name < cat.Ordered[j].Name
		})
	}

	return &PreparedInventory{
		Categories:   categories,
		LengthUnique: len(t.items),
		LengthTotal:  t.total,
		ViewCount:    len(t.views),
	}
}
