package game

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned by Evaluate when answer and guess differ in length.
var ErrInvalidInput = errors.New("game: invalid input")

// Evaluate scores guess against answer using the two-pass Wordle algorithm.
//
// Pass 1 marks exact matches as Correct and removes them from the pool of
// answer letters. Pass 2 walks the remaining positions left to right: a letter
// still in the pool is Present (and claims one copy), otherwise Absent.
//
// Inputs are compared letter by letter as given; callers normalise case.
func Evaluate(answer, guess string) (Result, error) {
	a := []rune(answer)
	g := []rune(guess)
	if len(a) != len(g) {
		return nil, fmt.Errorf("%w: guess has %d letters, answer has %d", ErrInvalidInput, len(g), len(a))
	}

	pool := make(map[rune]int, len(a))
	for _, r := range a {
		pool[r]++
	}

	res := make(Result, len(g))
	for i := range g {
		if g[i] == a[i] {
			res[i] = Correct
			pool[g[i]]--
		}
	}

	for i := range g {
		if res[i] == Correct {
			continue
		}
		if pool[g[i]] > 0 {
			res[i] = Present
			pool[g[i]]--
		} else {
			res[i] = Absent
		}
	}
	return res, nil
}
