package explorer

import (
	"context"
	"slices"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/store"
)

const favoritesKey = "favorites"

// Favorites manages the list of starred usernames. The list is
// deduplicated and keeps insertion order.
type Favorites struct {
	store store.Store
}

// NewFavorites creates a favorites manager backed by the given store.
func NewFavorites(s store.Store) *Favorites {
	return &Favorites{store: s}
}

// Add appends a username unless it is already present.
func (f *Favorites) Add(ctx context.Context, username string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	current, err := f.store.GetStringList(ctx, favoritesKey)
	if err != nil {
		return err
	}
	if slices.Contains(current, username) {
		return nil
	}
	return f.store.SetStringList(ctx, favoritesKey, append(current, username))
}

// Remove deletes a username from the list. Removing an absent username is
// not an error.
func (f *Favorites) Remove(ctx context.Context, username string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	current, err := f.store.GetStringList(ctx, favoritesKey)
	if err != nil {
		return err
	}
	filtered := slices.DeleteFunc(slices.Clone(current), func(s string) bool {
		return s == username
	})
	if len(filtered) == len(current) {
		return nil
	}
	return f.store.SetStringList(ctx, favoritesKey, filtered)
}

// List returns the favorite usernames in insertion order.
func (f *Favorites) List(ctx context.Context) ([]string, error) {
	return f.store.GetStringList(ctx, favoritesKey)
}

// Contains reports whether a username is a favorite.
func (f *Favorites) Contains(ctx context.Context, username string) (bool, error) {
	current, err := f.store.GetStringList(ctx, favoritesKey)
	if err != nil {
		return false, err
	}
	return slices.Contains(current, username), nil
}
