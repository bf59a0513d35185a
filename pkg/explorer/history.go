package explorer

import (
	"context"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/store"
)

const (
	historyKey   = "search_history"
	historyLimit = 10
)

// History records user search queries, most recent first. Re-recording a
// query moves it to the front; the list is capped at historyLimit entries.
type History struct {
	store store.Store
}

// NewHistory creates a search-history recorder backed by the given store.
func NewHistory(s store.Store) *History {
	return &History{store: s}
}

// Record prepends a query to the history.
func (h *History) Record(ctx context.Context, query string) error {
	if err := ValidateSearchQuery(query); err != nil {
		return err
	}
	current, err := h.store.GetStringList(ctx, historyKey)
	if err != nil {
		return err
	}
	updated := make([]string, 0, len(current)+1)
	updated = append(updated, query)
	for _, q := range current {
		if q != query {
			updated = append(updated, q)
		}
	}
	if len(updated) > historyLimit {
		updated = updated[:historyLimit]
	}
	return h.store.SetStringList(ctx, historyKey, updated)
}

// List returns the recorded queries, most recent first.
func (h *History) List(ctx context.Context) ([]string, error) {
	return h.store.GetStringList(ctx, historyKey)
}

// Clear removes the whole history.
func (h *History) Clear(ctx context.Context) error {
	return h.store.Remove(ctx, historyKey)
}
