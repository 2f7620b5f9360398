// Package stats keeps per-player game statistics: games played and won,
// streaks, how many guesses each win took, and the position of the
// sequential answer tracker.
package stats

import (
	"math"

	"github.com/robalobadob/wordle/internal/game"
)

// Stats is one player's running totals.
type Stats struct {
	Played        int                         `json:"played"`
	Won           int                         `json:"won"`
	CurrentStreak int                         `json:"currentStreak"`
	MaxStreak     int                         `json:"maxStreak"`
	Distribution  [game.DefaultMaxGuesses]int `json:"distribution"` // wins by guess count, index 0 = one guess
	WordTracker   int                         `json:"wordTracker"`
}

// RecordWin counts a game won in the given number of guesses.
func (s *Stats) RecordWin(guesses int) {
	s.Played++
	s.Won++
	s.CurrentStreak++
	if s.CurrentStreak > s.MaxStreak {
		s.MaxStreak = s.CurrentStreak
	}
	if guesses >= 1 && guesses <= len(s.Distribution) {
		s.Distribution[guesses-1]++
	}
}

// RecordLoss counts a lost game and resets the current streak.
func (s *Stats) RecordLoss() {
	s.Played++
	s.CurrentStreak = 0
}

// Record applies a finished session. Unfinished sessions are ignored.
func (s *Stats) Record(sess *game.Session) {
	switch sess.Status {
	case game.Won:
		s.RecordWin(len(sess.History))
	case game.Lost:
		s.RecordLoss()
	case game.InProgress:
	}
}

// WinPercent is the rounded share of games won, 0 before any game.
func (s Stats) WinPercent() int {
	if s.Played == 0 {
		return 0
	}
	return int(math.Round(float64(s.Won) / float64(s.Played) * 100))
}
