package words

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	d, err := Load("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, g := d.Stats()
	if a == 0 || g < a {
		t.Fatalf("expected answers ⊆ allowed, got answers=%d allowed=%d", a, g)
	}
	if !d.IsAnswer("crane") {
		t.Fatalf("expected crane to be an answer")
	}
	if !d.IsAllowed("ERASE") {
		t.Fatalf("expected ERASE to be allowed (case-insensitive)")
	}
	if d.IsAnswer("erase") {
		t.Fatalf("expected erase to be guess-only")
	}
}

func TestLoad_Files(t *testing.T) {
	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.txt")
	allowed := filepath.Join(dir, "allowed.txt")
	writeFile(t, answers, "# answers\nCrane\n  slate  \ntoolong\nab1de\n\ncrane\n")
	writeFile(t, allowed, "adieu\nxyz\n")

	d, err := Load(answers, allowed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := d.Answers()
	if len(got) != 2 || got[0] != "crane" || got[1] != "slate" {
		t.Fatalf("expected [crane slate], got %v", got)
	}
	if !d.IsAllowed("adieu") || !d.IsAllowed("slate") {
		t.Fatalf("expected adieu and slate allowed")
	}
	if d.IsAllowed("xyz") {
		t.Fatalf("expected short word to be dropped")
	}
}

func TestLoad_AllowedOnlyUsedForBoth(t *testing.T) {
	allowed := filepath.Join(t.TempDir(), "allowed.txt")
	writeFile(t, allowed, "adieu\nroate\n")

	d, err := Load("", allowed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.IsAnswer("roate") {
		t.Fatalf("expected allowed list to double as answers")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	writeFile(t, empty, "# nothing\n")
	if _, err := Load(empty, empty); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  CRANE ": "crane",
		"SpEeD":    "speed",
		"":         "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestIsAlpha(t *testing.T) {
	if !IsAlpha("crane") {
		t.Fatalf("expected crane alphabetic")
	}
	for _, s := range []string{"", "cr4ne", "Crane", "cr ne"} {
		if IsAlpha(s) {
			t.Fatalf("expected %q rejected", s)
		}
	}
}

func TestPicker_SequentialWraps(t *testing.T) {
	d, err := New([]string{"alpha", "bravo", "charm"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := Picker{Dict: d, Mode: ModeSequential}

	tracker := 0
	var got []string
	for i := 0; i < 4; i++ {
		var w string
		w, tracker = p.Pick(tracker, time.Time{})
		got = append(got, w)
	}
	want := []string{"alpha", "bravo", "charm", "alpha"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	// A tracker past the end (e.g. the list shrank) restarts at the top.
	if w, next := p.Pick(99, time.Time{}); w != "alpha" || next != 1 {
		t.Fatalf("expected alpha/1, got %s/%d", w, next)
	}
}

func TestPicker_DailyIsStablePerDate(t *testing.T) {
	d, _ := Load("", "")
	p := Picker{Dict: d, Mode: ModeDaily, Salt: "salt"}

	morning := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	a, next := p.Pick(7, morning)
	b, _ := p.Pick(7, evening)
	if a != b {
		t.Fatalf("expected same answer within a day, got %s and %s", a, b)
	}
	if next != 7 {
		t.Fatalf("expected tracker untouched, got %d", next)
	}
}

func TestPicker_RandomReturnsAnswer(t *testing.T) {
	d, _ := Load("", "")
	p := Picker{Dict: d, Mode: ModeRandom}
	for i := 0; i < 20; i++ {
		w, _ := p.Pick(0, time.Now())
		if !d.IsAnswer(w) {
			t.Fatalf("expected an answer word, got %q", w)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("Daily"); err != nil || m != ModeDaily {
		t.Fatalf("expected daily, got %q (%v)", m, err)
	}
	if _, err := ParseMode("weekly"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
