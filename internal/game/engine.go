// internal/game/engine.go
//
// Session engine for a single Wordle game.
// Responsibilities:
//   - Create sessions with the classic dimensions (6 guesses x 5 letters).
//   - Validate guesses (length, alphabetic, optional dictionary).
//   - Score guesses with Evaluate and keep the attempt history.
//   - Track state transitions: in_progress → won/lost.
//
// A Session is owned by its caller; it is not safe for concurrent use.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/internal/words"
)

const (
	DefaultMaxGuesses = 6
	DefaultLength     = 5
)

var (
	ErrGameOver     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
	ErrNotAWord     = errors.New("not in word list")
)

// Dictionary decides whether a normalised guess is a real word.
type Dictionary interface {
	IsAllowed(word string) bool
}

// Session holds the state of one game.
type Session struct {
	ID         string
	Owner      string // player the game belongs to, set by the caller
	Answer     string // lower case
	MaxGuesses int
	StartedAt  time.Time
	History    []Attempt
	Status     State

	dict Dictionary
}

// Option configures a Session at construction.
type Option func(*Session)

// WithMaxGuesses overrides the default of six attempts.
func WithMaxGuesses(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.MaxGuesses = n
		}
	}
}

// WithDictionary enables word-list validation of guesses.
func WithDictionary(d Dictionary) Option {
	return func(s *Session) { s.dict = d }
}

// WithID sets a fixed session identifier.
func WithID(id string) Option {
	return func(s *Session) { s.ID = id }
}

// WithOwner tags the session with the player it belongs to.
func WithOwner(playerID string) Option {
	return func(s *Session) { s.Owner = playerID }
}

// NewSession starts a game for answer.
func NewSession(answer string, opts ...Option) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		Answer:     words.Normalize(answer),
		MaxGuesses: DefaultMaxGuesses,
		StartedAt:  time.Now().UTC(),
		History:    []Attempt{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Length is the number of letters in the answer.
func (s *Session) Length() int { return len([]rune(s.Answer)) }

// Submit validates and scores a guess, advancing the session.
//
// Rejected guesses (ErrInvalidGuess, ErrNotAWord) do not use up an attempt.
// State transitions:
//   - all Correct → Won
//   - otherwise, once MaxGuesses attempts are used → Lost
func (s *Session) Submit(guess string) (Result, error) {
	if s.Status.Terminal() {
		return nil, ErrGameOver
	}
	guess = words.Normalize(guess)
	if n := len([]rune(guess)); n != s.Length() {
		return nil, fmt.Errorf("%w: want %d letters, got %d", ErrInvalidGuess, s.Length(), n)
	}
	if !words.IsAlpha(guess) {
		return nil, fmt.Errorf("%w: letters a-z only", ErrInvalidGuess)
	}
	if s.dict != nil && !s.dict.IsAllowed(guess) {
		return nil, ErrNotAWord
	}

	res, err := Evaluate(s.Answer, guess)
	if err != nil {
		return nil, err
	}
	s.History = append(s.History, Attempt{Guess: guess, Result: res})

	switch {
	case res.Solved():
		s.Status = Won
	case len(s.History) >= s.MaxGuesses:
		s.Status = Lost
	}
	return res, nil
}

// Remaining is the number of attempts left.
func (s *Session) Remaining() int {
	if s.Status.Terminal() {
		return 0
	}
	return s.MaxGuesses - len(s.History)
}

// Finished reports whether the session reached a terminal state.
func (s *Session) Finished() bool { return s.Status.Terminal() }

// Keyboard summarises every letter guessed so far.
func (s *Session) Keyboard() Keyboard {
	kb := Keyboard{}
	for _, a := range s.History {
		kb.Apply(a.Guess, a.Result)
	}
	return kb
}

// Clone returns a deep copy that shares no slices with s.
func (s *Session) Clone() *Session {
	c := *s
	c.History = make([]Attempt, len(s.History))
	for i, a := range s.History {
		c.History[i] = Attempt{Guess: a.Guess, Result: append(Result(nil), a.Result...)}
	}
	return &c
}
