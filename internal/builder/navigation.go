// internal/builder/navigation.go
package builder

import (
	"fmt"

	"compinv/internal/config"
	"compinv/internal/inventory"
	"compinv/internal/util"
)

// categorySlugs derives one filename slug per category, in category
// order. Two names that normalize to the same slug are disambiguated with
// a numeric suffix ("forms", "forms-2", ...) so no document silently
// overwrites another.
func categorySlugs(categories []*inventory.Category) []string {
	slugs := make([]string, len(categories))
	taken := make(map[string]bool, len(categories))

	for i, cat := range categories {
		slug := util.Slugify(cat.Name)
		candidate := slug
		for n := 2; taken[candidate]; n++ {
			candidate = fmt.Sprintf("%s-%d", slug, n)
		}
		taken[candidate] = true
		slugs[i] = candidate
	}
	return slugs
}

// BuildNavigation assembles the navigation model for a prepared
// inventory. Hrefs use the production extension; the files themselves are
// written with the build extension by Assemble.
func BuildNavigation(prepared *inventory.PreparedInventory, dest config.Dest) Navigation {
	slugs := categorySlugs(prepared.Categories)

	items := make([]NavigationItem, len(prepared.Categories))
	for i, cat := range prepared.Categories {
		items[i] = NavigationItem{
			Href:       dest.Filename + "--" + slugs[i] + dest.ProductionExt,
			Name:       cat.Name,
			ItemLength: len(cat.Items),
		}
	}

	return Navigation{
		Category:     "",
		Index:        dest.Filename + dest.ProductionExt,
		Items:        items,
		LengthUnique: prepared.LengthUnique,
		LengthTotal:  prepared.LengthTotal,
	}
}
