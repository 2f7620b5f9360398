package game

import (
	"errors"
	"testing"
)

type listDict map[string]bool

func (d listDict) IsAllowed(w string) bool { return d[w] }

func TestSession_WinTransition(t *testing.T) {
	s := NewSession("CRANE")
	if s.Answer != "crane" {
		t.Fatalf("expected normalised answer, got %q", s.Answer)
	}
	if s.ID == "" {
		t.Fatalf("expected generated id")
	}

	if _, err := s.Submit("slate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status != InProgress || s.Remaining() != 5 {
		t.Fatalf("expected in_progress with 5 left, got %s/%d", s.Status, s.Remaining())
	}

	res, err := s.Submit(" Crane ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Solved() || s.Status != Won {
		t.Fatalf("expected won, got %s %v", s.Status, res)
	}
	if s.Remaining() != 0 || !s.Finished() {
		t.Fatalf("expected finished session")
	}

	if _, err := s.Submit("slate"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if len(s.History) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(s.History))
	}
}

func TestSession_LossAfterMaxGuesses(t *testing.T) {
	s := NewSession("crane")
	for i := 0; i < DefaultMaxGuesses; i++ {
		if s.Status != InProgress {
			t.Fatalf("expected in_progress before guess %d, got %s", i+1, s.Status)
		}
		if _, err := s.Submit("slate"); err != nil {
			t.Fatalf("guess %d: unexpected error: %v", i+1, err)
		}
	}
	if s.Status != Lost {
		t.Fatalf("expected lost, got %s", s.Status)
	}
	if _, err := s.Submit("crane"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestSession_WinOnLastGuess(t *testing.T) {
	s := NewSession("crane", WithMaxGuesses(2))
	_, _ = s.Submit("slate")
	if _, err := s.Submit("crane"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status != Won {
		t.Fatalf("expected won, got %s", s.Status)
	}
}

func TestSession_RejectedGuessesDoNotCount(t *testing.T) {
	s := NewSession("crane", WithDictionary(listDict{"slate": true, "crane": true}))

	for _, g := range []string{"cran", "cranes", "cr4ne", ""} {
		if _, err := s.Submit(g); !errors.Is(err, ErrInvalidGuess) {
			t.Fatalf("%q: expected ErrInvalidGuess, got %v", g, err)
		}
	}
	if _, err := s.Submit("zzzzz"); !errors.Is(err, ErrNotAWord) {
		t.Fatalf("expected ErrNotAWord, got %v", err)
	}
	if len(s.History) != 0 || s.Remaining() != DefaultMaxGuesses {
		t.Fatalf("expected no attempts used, got %d", len(s.History))
	}
	if _, err := s.Submit("slate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSession_WithID(t *testing.T) {
	if s := NewSession("crane", WithID("fixed")); s.ID != "fixed" {
		t.Fatalf("expected fixed id, got %q", s.ID)
	}
}

func TestSession_CloneIsIndependent(t *testing.T) {
	s := NewSession("crane")
	_, _ = s.Submit("slate")
	c := s.Clone()
	c.History[0].Result[0] = Correct
	_, _ = c.Submit("crane")

	if len(s.History) != 1 || s.Status != InProgress {
		t.Fatalf("expected original untouched, got %d attempts %s", len(s.History), s.Status)
	}
	if s.History[0].Result[0] != Absent {
		t.Fatalf("expected original verdict absent, got %s", s.History[0].Result[0])
	}
}

func TestKeyboard_NeverDowngrades(t *testing.T) {
	s := NewSession("speed")
	_, _ = s.Submit("spell") // s,p correct; e correct; l absent
	_, _ = s.Submit("erase") // s present, e present
	_, _ = s.Submit("dress") // d present

	kb := s.Keyboard()
	want := map[rune]Verdict{'s': Correct, 'p': Correct, 'e': Correct, 'l': Absent, 'r': Absent, 'a': Absent, 'd': Present}
	for r, v := range want {
		if got, ok := kb.Hint(r); !ok || got != v {
			t.Fatalf("%c: expected %s, got %s (seen=%v)", r, v, got, ok)
		}
	}
	if _, ok := kb.Hint('z'); ok {
		t.Fatalf("expected z unseen")
	}
	if kb.Strings()["s"] != Correct {
		t.Fatalf("expected string-keyed copy")
	}
}

func TestState_Text(t *testing.T) {
	cases := map[State]string{InProgress: "in_progress", Won: "won", Lost: "lost"}
	for s, want := range cases {
		if s.String() != want {
			t.Fatalf("expected %s, got %s", want, s)
		}
	}
}
