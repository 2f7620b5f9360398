// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers ∪ guesses).
//   - Normalise words (trim + case fold) the same way for lists and guesses.
//
// Load behaviour:
//   1. answers and allowed paths both set → answers from the first, guesses from the second.
//   2. only allowed path set              → that file is used for both lists.
//   3. neither set                        → embedded defaults.
//
// Constraints:
//   • Words must be 5 letters a–z after normalisation; other lines are skipped.
//   • Blank lines and lines starting with '#' are ignored.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordLength is the number of letters in every listed word.
const WordLength = 5

// ErrEmpty is returned when no usable answers were loaded.
var ErrEmpty = errors.New("words: answers list is empty")

//go:embed default_small_answers.txt
var embeddedAnswers string

//go:embed default_small_allowed.txt
var embeddedAllowed string

// Dictionary holds the loaded lists. It is read-only after Load and safe
// for concurrent use.
type Dictionary struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load builds a Dictionary from the given files (see package comment).
func Load(answersPath, allowedPath string) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
	case allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList
	default:
		ansList, _ = readWords(strings.NewReader(embeddedAnswers))
		allowList, _ = readWords(strings.NewReader(embeddedAllowed))
	}
	return New(ansList, allowList)
}

// New builds a Dictionary from in-memory lists. Words are normalised and
// invalid entries dropped; answers are always allowed as guesses.
func New(answers, allowed []string) (*Dictionary, error) {
	d := &Dictionary{
		answersSet: make(map[string]struct{}, len(answers)),
		allowedSet: make(map[string]struct{}, len(answers)+len(allowed)),
	}
	for _, w := range answers {
		w = Normalize(w)
		if !valid(w) {
			continue
		}
		if _, dup := d.answersSet[w]; dup {
			continue
		}
		d.answers = append(d.answers, w)
		d.answersSet[w] = struct{}{}
		d.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		if w = Normalize(w); valid(w) {
			d.allowedSet[w] = struct{}{}
		}
	}
	if len(d.answers) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	out, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// readWords returns one entry per non-blank, non-comment line.
func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Normalize trims surrounding space and folds s to lower case.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// IsAlpha reports whether s is non-empty and all lowercase ASCII letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func valid(w string) bool { return len(w) == WordLength && IsAlpha(w) }

// Answers returns the answer list in file order. Callers must not modify it.
func (d *Dictionary) Answers() []string { return d.answers }

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (d *Dictionary) IsAllowed(w string) bool {
	_, ok := d.allowedSet[Normalize(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[Normalize(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answers), len(d.allowedSet)
}
