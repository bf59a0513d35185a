package explorer

import (
	"context"
	"reflect"
	"testing"

	apperrors "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/errors"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/store"
)

func TestFavoritesAddListRemove(t *testing.T) {
	ctx := context.Background()
	fav := NewFavorites(store.NewMemoryStore())

	for _, name := range []string{"octocat", "torvalds", "octocat"} {
		if err := fav.Add(ctx, name); err != nil {
			t.Fatalf("Add(%q) error: %v", name, err)
		}
	}

	list, err := fav.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if want := []string{"octocat", "torvalds"}; !reflect.DeepEqual(list, want) {
		t.Errorf("list = %v, want %v (deduplicated, insertion order)", list, want)
	}

	if err := fav.Remove(ctx, "octocat"); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	list, _ = fav.List(ctx)
	if want := []string{"torvalds"}; !reflect.DeepEqual(list, want) {
		t.Errorf("list = %v, want %v", list, want)
	}

	// Removing an absent name is a no-op.
	if err := fav.Remove(ctx, "ghost"); err != nil {
		t.Errorf("Remove of absent name: %v", err)
	}
}

func TestFavoritesContains(t *testing.T) {
	ctx := context.Background()
	fav := NewFavorites(store.NewMemoryStore())

	if err := fav.Add(ctx, "octocat"); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	got, err := fav.Contains(ctx, "octocat")
	if err != nil || !got {
		t.Errorf("Contains(octocat) = %v, %v", got, err)
	}
	got, err = fav.Contains(ctx, "ghost")
	if err != nil || got {
		t.Errorf("Contains(ghost) = %v, %v", got, err)
	}
}

func TestFavoritesValidatesUsername(t *testing.T) {
	ctx := context.Background()
	fav := NewFavorites(store.NewMemoryStore())

	if err := fav.Add(ctx, ""); !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("Add(\"\") error = %v, want INVALID_INPUT", err)
	}
	if err := fav.Add(ctx, "john doe"); !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("Add with spaces error = %v, want INVALID_INPUT", err)
	}

	list, _ := fav.List(ctx)
	if len(list) != 0 {
		t.Errorf("invalid names must not be stored, got %v", list)
	}
}
