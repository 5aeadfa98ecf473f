// internal/builder/assemble.go
package builder

import (
	"path/filepath"

	"compinv/internal/config"
	"compinv/internal/inventory"
)

// Assemble decides which documents a build produces and constructs an
// independent payload for each. In combined mode there is exactly one
// document holding the whole inventory. In expanded mode there is one
// document per category plus an index. Payloads never share mutable
// state; each gets its own navigation value with its own Category field.
func Assemble(prepared *inventory.PreparedInventory, views []CategoryView, nav Navigation, opts config.Options) []Document {
	dest := opts.Dest
	indexDest := filepath.Join(dest.Path, dest.Filename+dest.Ext)

	if !opts.Expand {
		combined := nav
		combined.Category = ""
		return []Document{{
			Dest: indexDest,
			Payload: Payload{
				Categories:   views,
				Navigation:   combined,
				IsIndex:      true,
				LengthUnique: prepared.LengthUnique,
				LengthTotal:  prepared.LengthTotal,
			},
		}}
	}

	slugs := categorySlugs(prepared.Categories)
	docs := make([]Document, 0, len(views)+1)

	for i, view := range views {
		sectionNav := nav
		sectionNav.Category = view.Name

		docs = append(docs, Document{
			Dest: filepath.Join(dest.Path, dest.Filename+"--"+slugs[i]+dest.Ext),
			Payload: Payload{
				Categories:   []CategoryView{view},
				Navigation:   sectionNav,
				IsIndex:      false,
				Name:         view.Name,
				ItemLength:   len(view.Items),
				LengthUnique: prepared.LengthUnique,
				LengthTotal:  prepared.LengthTotal,
			},
		})
	}

	indexNav := nav
	indexNav.Category = ""
	docs = append(docs, Document{
		Dest: indexDest,
		Payload: Payload{
			Categories:   []CategoryView{},
			Navigation:   indexNav,
			IsIndex:      true,
			LengthUnique: prepared.LengthUnique,
			LengthTotal:  prepared.LengthTotal,
		},
	})

	return docs
}
