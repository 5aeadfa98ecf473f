// internal/inventory/prepare.go
package inventory

// Prepare runs the whole data-preparation pass over one storage batch:
// normalize each record, deduplicate with usage tracking, then group and
// sort. Malformed records are skipped and never fatal. Totals are always
// recomputed from the batch; hints carried in the storage document are
// not trusted.
func Prepare(s *Storage, fallback string, store PartialStore) (*PreparedInventory, error) {
	tracker := NewTracker(fallback, store)

	for _, raw := range s.Items {
		item, ok := Normalize(raw)
		if !ok {
			continue
		}
		if _, err := tracker.Admit(item); err != nil {
			return nil, err
		}
	}

	return tracker.Finalize(), nil
}
