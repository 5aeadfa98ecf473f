// internal/inventory/storage.go
package inventory

import (
	"encoding/json"
	"fmt"
	"os"
)

// Storage is the raw inventory document. Items holds arbitrary decoded
// JSON values; anything that is not an object is skipped during
// preparation. LengthUnique and LengthTotal are hints a previous run may
// have left behind — they are ignored in favor of recomputed counts.
type Storage struct {
	Items        []any          `json:"items"`
	LengthUnique int            `json:"lengthUnique"`
	LengthTotal  int            `json:"lengthTotal"`
	Options      map[string]any `json:"options"`
}

// LoadStorage reads and decodes a storage document from disk.
func LoadStorage(path string) (*Storage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read storage file at %s: %w", path, err)
	}

	var s Storage
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("could not parse storage file %s: %w", path, err)
	}
	return &s, nil
}
