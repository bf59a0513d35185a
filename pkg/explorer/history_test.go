package explorer

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	apperrors "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/errors"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/store"
)

func TestHistoryMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	hist := NewHistory(store.NewMemoryStore())

	for _, q := range []string{"first", "second", "third"} {
		if err := hist.Record(ctx, q); err != nil {
			t.Fatalf("Record(%q) error: %v", q, err)
		}
	}

	list, err := hist.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if want := []string{"third", "second", "first"}; !reflect.DeepEqual(list, want) {
		t.Errorf("list = %v, want %v", list, want)
	}
}

func TestHistoryDeduplicatesToFront(t *testing.T) {
	ctx := context.Background()
	hist := NewHistory(store.NewMemoryStore())

	for _, q := range []string{"a", "b", "c", "a"} {
		if err := hist.Record(ctx, q); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	list, _ := hist.List(ctx)
	if want := []string{"a", "c", "b"}; !reflect.DeepEqual(list, want) {
		t.Errorf("list = %v, want %v", list, want)
	}
}

func TestHistoryCap(t *testing.T) {
	ctx := context.Background()
	hist := NewHistory(store.NewMemoryStore())

	for i := 0; i < 15; i++ {
		if err := hist.Record(ctx, fmt.Sprintf("query-%d", i)); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	list, _ := hist.List(ctx)
	if len(list) != historyLimit {
		t.Fatalf("len = %d, want %d", len(list), historyLimit)
	}
	if list[0] != "query-14" || list[len(list)-1] != "query-5" {
		t.Errorf("list = %v, oldest entries must be evicted", list)
	}
}

func TestHistoryClear(t *testing.T) {
	ctx := context.Background()
	hist := NewHistory(store.NewMemoryStore())

	if err := hist.Record(ctx, "something"); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if err := hist.Clear(ctx); err != nil {
		t.Fatalf("Clear error: %v", err)
	}

	list, _ := hist.List(ctx)
	if len(list) != 0 {
		t.Errorf("list = %v, want empty after Clear", list)
	}
}

func TestHistoryRejectsEmptyQuery(t *testing.T) {
	hist := NewHistory(store.NewMemoryStore())

	err := hist.Record(context.Background(), "")
	if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}
