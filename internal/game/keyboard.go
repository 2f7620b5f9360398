package game

// Keyboard maps each guessed letter to the best verdict seen for it.
// Hints never downgrade: Correct beats Present beats Absent.
type Keyboard map[rune]Verdict

// Apply folds one scored guess into the keyboard.
func (k Keyboard) Apply(guess string, res Result) {
	for i, r := range []rune(guess) {
		if i >= len(res) {
			return
		}
		if prev, ok := k[r]; !ok || res[i] > prev {
			k[r] = res[i]
		}
	}
}

// Hint returns the verdict recorded for r, and false if r was never guessed.
func (k Keyboard) Hint(r rune) (Verdict, bool) {
	v, ok := k[r]
	return v, ok
}

// Strings renders the keyboard with string keys for JSON encoding.
func (k Keyboard) Strings() map[string]Verdict {
	out := make(map[string]Verdict, len(k))
	for r, v := range k {
		out[string(r)] = v
	}
	return out
}
