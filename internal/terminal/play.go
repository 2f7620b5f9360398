package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/stats"
	"github.com/robalobadob/wordle/internal/words"
)

// ErrQuit is returned when input ends before the game is decided.
var ErrQuit = errors.New("game abandoned")

// Play runs one game, reading one guess per line from in. It returns once
// the session is won or lost, the input ends, or ctx is cancelled.
func Play(ctx context.Context, in io.Reader, r *Renderer, s *game.Session) error {
	sc := bufio.NewScanner(in)
	r.Printf("Guess the %d-letter word. You have %d tries.\n", s.Length(), s.MaxGuesses)
	r.Board(s)

	for !s.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Printf("%d> ", len(s.History)+1)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read guess: %w", err)
			}
			r.Printf("\n")
			return ErrQuit
		}
		line := sc.Text()

		_, err := s.Submit(line)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			if len([]rune(words.Normalize(line))) < s.Length() {
				r.Printf("Not enough letters\n")
			} else {
				r.Printf("Enter %d letters a-z\n", s.Length())
			}
			continue
		case errors.Is(err, game.ErrNotAWord):
			r.Printf("Word not recognized\n")
			continue
		case err != nil:
			return err
		}

		log.Debug().Str("gameId", s.ID).Str("guess", s.History[len(s.History)-1].Guess).
			Stringer("state", s.Status).Msg("guess scored")
		r.Printf("\n")
		r.Board(s)
		r.Printf("\n")
		r.Keyboard(s.Keyboard())
	}

	switch s.Status {
	case game.Won:
		r.Printf("\nYOU WIN!\n")
	case game.Lost:
		r.Printf("\nYOU LOSE!  The answer was: %s\n", strings.ToUpper(s.Answer))
	case game.InProgress:
	}
	return nil
}

// Stats prints the totals and a bar chart of the guess distribution.
func (r *Renderer) Stats(st stats.Stats) {
	r.Printf("\n%8s %8s %16s %12s\n", "Played", "Win %", "Current Streak", "Max Streak")
	r.Printf("%8d %8d %16d %12d\n\n", st.Played, st.WinPercent(), st.CurrentStreak, st.MaxStreak)
	r.Printf("GUESS DISTRIBUTION\n")

	maxN := 0
	for _, n := range st.Distribution {
		if n > maxN {
			maxN = n
		}
	}
	const width = 30
	for i, n := range st.Distribution {
		bar := 0
		if maxN > 0 {
			bar = n * width / maxN
		}
		fill := strings.Repeat("█", bar)
		if r.color && bar > 0 {
			fill = bgGreen + strings.Repeat(" ", bar) + reset
		}
		r.Printf("%d %s %d\n", i+1, fill, n)
	}
}
