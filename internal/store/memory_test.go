package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/wordle/internal/game"
)

func TestMemory_SaveGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.NewSession("crane", game.WithID("g1"))

	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := st.Update(ctx, "g1", func(s *game.Session) error {
		_, err := s.Submit("slate")
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := st.Get(ctx, "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.History) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got.History))
	}

	// Mutating the copy must not leak into the store.
	_, _ = got.Submit("crane")
	again, _ := st.Get(ctx, "g1")
	if len(again.History) != 1 {
		t.Fatalf("expected stored session untouched, got %d attempts", len(again.History))
	}

	_ = st.Delete(ctx, "g1")
	if _, err := st.Get(ctx, "g1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := st.Update(ctx, "g1", func(*game.Session) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_ConcurrentUpdatesAreSerialised(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_ = st.Save(ctx, game.NewSession("crane", game.WithID("g1"), game.WithMaxGuesses(100)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, "g1", func(s *game.Session) error {
				_, err := s.Submit("slate")
				return err
			})
		}()
	}
	wg.Wait()

	got, _ := st.Get(ctx, "g1")
	if len(got.History) != 50 {
		t.Fatalf("expected 50 attempts, got %d", len(got.History))
	}
}
