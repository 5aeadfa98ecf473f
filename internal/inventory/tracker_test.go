package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func admit(t *testing.T, tr *Tracker, item *Item) bool {
	t.Helper()
	isNew, err := tr.Admit(item)
	require.NoError(t, err)
	return isNew
}

func TestAdmitIsIdempotentPerOrigin(t *testing.T) {
	tr := NewTracker("No category", nil)

	assert.True(t, admit(t, tr, &Item{ID: "btn", Name: "Button", Origin: "a.html"}))
	assert.False(t, admit(t, tr, &Item{ID: "btn", Name: "Button", Origin: "a.html"}))
	assert.False(t, admit(t, tr, &Item{ID: "btn", Name: "Button", Origin: "b.html"}))

	prepared := tr.Finalize()
	require.Len(t, prepared.Categories, 1)
	item := prepared.Categories[0].Items["btn"]
	require.NotNil(t, item)
	assert.Equal(t, []string{"a.html", "b.html"}, item.Usage)
	assert.Equal(t, 1, prepared.LengthUnique)
	assert.Equal(t, 3, prepared.LengthTotal)
}

func TestFirstPayloadWins(t *testing.T) {
	tr := NewTracker("No category", nil)

	admit(t, tr, &Item{ID: "x", Name: "X", Template: "A", Origin: "a.html"})
	admit(t, tr, &Item{ID: "x", Name: "X", Template: "B", Origin: "b.html"})

	prepared := tr.Finalize()
	assert.Equal(t, "A", prepared.Categories[0].Items["x"].Template)
}

func TestCategoryIsStable(t *testing.T) {
	tr := NewTracker("No category", nil)

	admit(t, tr, &Item{ID: "btn", Name: "Button", Category: "Forms", Origin: "a.html"})
	admit(t, tr, &Item{ID: "btn", Name: "Button", Category: "Other", Origin: "b.html"})

	prepared := tr.Finalize()
	require.Len(t, prepared.Categories, 1, "a repeat id must not create a second category entry for the item")
	assert.Equal(t, "Forms", prepared.Categories[0].Name)
	assert.Equal(t, []string{"a.html", "b.html"}, prepared.Categories[0].Items["btn"].Usage)
}

func TestFallbackCategory(t *testing.T) {
	tr := NewTracker("Misc", nil)
	admit(t, tr, &Item{ID: "blob", Name: "Blob", Origin: "a.html"})

	prepared := tr.Finalize()
	require.Len(t, prepared.Categories, 1)
	assert.Equal(t, "Misc", prepared.Categories[0].Name)
	assert.Equal(t, "Misc", prepared.Categories[0].Items["blob"].Category)
}

func TestGlobalUniqueness(t *testing.T) {
	tr := NewTracker("No category", nil)

	admit(t, tr, &Item{ID: "a", Name: "A", Category: "One", Origin: "1.html"})
	admit(t, tr, &Item{ID: "b", Name: "B", Category: "Two", Origin: "1.html"})
	// Same id under a different category: counted once, globally.
	admit(t, tr, &Item{ID: "a", Name: "A", Category: "Two", Origin: "2.html"})

	prepared := tr.Finalize()
	assert.Equal(t, 2, prepared.LengthUnique)
	assert.Equal(t, 3, prepared.LengthTotal)

	perCategory := 0
	for _, cat := range prepared.Categories {
		perCategory += len(cat.Items)
	}
	assert.Equal(t, prepared.LengthUnique, perCategory)
}

func TestDistinctViewCount(t *testing.T) {
	tr := NewTracker("No category", nil)

	admit(t, tr, &Item{ID: "a", ViewID: "home", Origin: "1.html"})
	admit(t, tr, &Item{ID: "b", ViewID: "home", Origin: "1.html"})
	admit(t, tr, &Item{ID: "c", ViewID: "about", Origin: "2.html"})

	assert.Equal(t, 2, tr.Finalize().ViewCount)
}

type recordingStore struct {
	writes map[string]string
	err    error
}

func (s *recordingStore) StorePartial(id, payload string) error {
	if s.err != nil {
		return s.err
	}
	if s.writes == nil {
		s.writes = make(map[string]string)
	}
	if _, ok := s.writes[id]; ok {
		return errors.New("duplicate write for " + id)
	}
	s.writes[id] = payload
	return nil
}

func TestPartialStoredOncePerID(t *testing.T) {
	store := &recordingStore{}
	tr := NewTracker("No category", store)

	admit(t, tr, &Item{ID: "btn", Template: "<button/>", Origin: "a.html"})
	admit(t, tr, &Item{ID: "btn", Template: "<ignored/>", Origin: "b.html"})
	admit(t, tr, &Item{ID: "card", Template: "<div/>", Origin: "a.html"})

	assert.Equal(t, map[string]string{
		"btn":  "<button/>",
		"card": "<div/>",
	}, store.writes)
}

func TestPartialStoreErrorSurfaces(t *testing.T) {
	store := &recordingStore{err: errors.New("disk full")}
	tr := NewTracker("No category", store)

	_, err := tr.Admit(&Item{ID: "btn", Template: "<button/>", Origin: "a.html"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "btn")
}
