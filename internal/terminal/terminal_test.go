package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/stats"
)

type listDict map[string]bool

func (d listDict) IsAllowed(w string) bool { return d[w] }

func TestRow_PlainMarkers(t *testing.T) {
	r := NewWriterRenderer(&bytes.Buffer{}, false)
	res, _ := game.Evaluate("alloy", "llama")
	got := r.Row("llama", res)
	want := "(L) [L] (A)  M   A "
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTile_ColourUsesVerdictBackground(t *testing.T) {
	r := NewWriterRenderer(&bytes.Buffer{}, true)
	if tile := r.Tile('c', game.Correct); !strings.HasPrefix(tile, bgGreen) || !strings.Contains(tile, " C ") {
		t.Fatalf("expected green C tile, got %q", tile)
	}
	if tile := r.Tile('c', game.Present); !strings.HasPrefix(tile, bgYellow) {
		t.Fatalf("expected yellow tile, got %q", tile)
	}
	if tile := r.Tile('c', game.Absent); !strings.HasPrefix(tile, bgGray) {
		t.Fatalf("expected gray tile, got %q", tile)
	}
}

func TestPlay_Win(t *testing.T) {
	var out bytes.Buffer
	s := game.NewSession("crane", game.WithDictionary(listDict{"slate": true, "crane": true}))
	in := strings.NewReader("cra\nzzzzz\nslate\nCRANE\n")

	if err := Play(context.Background(), in, NewWriterRenderer(&out, false), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status != game.Won || len(s.History) != 2 {
		t.Fatalf("expected win in 2, got %s after %d", s.Status, len(s.History))
	}
	text := out.String()
	for _, want := range []string{"Not enough letters", "Word not recognized", "[C] [R] [A] [N] [E]", "YOU WIN!"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestPlay_Loss(t *testing.T) {
	var out bytes.Buffer
	s := game.NewSession("crane", game.WithMaxGuesses(2))
	in := strings.NewReader("slate\nslate\nslate\n")

	if err := Play(context.Background(), in, NewWriterRenderer(&out, false), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status != game.Lost {
		t.Fatalf("expected lost, got %s", s.Status)
	}
	if !strings.Contains(out.String(), "YOU LOSE!  The answer was: CRANE") {
		t.Fatalf("expected loss message, got:\n%s", out.String())
	}
}

func TestPlay_InputEnds(t *testing.T) {
	s := game.NewSession("crane")
	err := Play(context.Background(), strings.NewReader("slate\n"), NewWriterRenderer(&bytes.Buffer{}, false), s)
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
	if s.Status != game.InProgress {
		t.Fatalf("expected in_progress, got %s", s.Status)
	}
}

func TestPlay_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Play(ctx, strings.NewReader("crane\n"), NewWriterRenderer(&bytes.Buffer{}, false), game.NewSession("crane"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestKeyboard_PlainShowsHints(t *testing.T) {
	var out bytes.Buffer
	s := game.NewSession("crane")
	_, _ = s.Submit("slate")
	NewWriterRenderer(&out, false).Keyboard(s.Keyboard())

	text := out.String()
	if !strings.Contains(text, "[A]") || !strings.Contains(text, "[E]") || !strings.Contains(text, " · ") {
		t.Fatalf("expected hint markers, got:\n%s", text)
	}
	if !strings.Contains(text, " Q ") {
		t.Fatalf("expected unguessed Q shown plain, got:\n%s", text)
	}
}

func TestStats_Render(t *testing.T) {
	var out bytes.Buffer
	st := stats.Stats{Played: 4, Won: 3, CurrentStreak: 2, MaxStreak: 2, Distribution: [6]int{0, 2, 1, 0, 0, 0}}
	NewWriterRenderer(&out, false).Stats(st)

	text := out.String()
	if !strings.Contains(text, "GUESS DISTRIBUTION") || !strings.Contains(text, "75") {
		t.Fatalf("expected stats summary, got:\n%s", text)
	}
	if !strings.Contains(text, "2 "+strings.Repeat("█", 30)+" 2") {
		t.Fatalf("expected full bar for the most common count, got:\n%s", text)
	}
}
