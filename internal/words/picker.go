// internal/words/picker.go
//
// Answer selection strategies:
//   - sequential: walk the answer list in order using a persisted tracker,
//                 wrapping back to the first word after the last.
//   - random:     cryptographically random answer.
//   - daily:      deterministic per UTC date, HMAC(salt, YYYY-MM-DD) % len(answers).

package words

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"
	"time"
)

// Mode names an answer selection strategy.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeRandom     Mode = "random"
	ModeDaily      Mode = "daily"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(Normalize(s)); m {
	case ModeSequential, ModeRandom, ModeDaily:
		return m, nil
	default:
		return "", fmt.Errorf("words: unknown mode %q (want sequential, random or daily)", s)
	}
}

// Picker chooses answers from a Dictionary.
type Picker struct {
	Dict *Dictionary
	Mode Mode
	Salt string // daily mode only
}

// Pick returns the answer for this game and the tracker value to persist
// for the next one. Only sequential mode advances the tracker.
func (p Picker) Pick(tracker int, now time.Time) (answer string, next int) {
	answers := p.Dict.Answers()
	n := len(answers)
	switch p.Mode {
	case ModeRandom:
		return answers[randomIndex(n)], tracker
	case ModeDaily:
		return answers[DailyIndex(now, p.Salt, n)], tracker
	default:
		idx := tracker
		if idx < 0 || idx >= n {
			idx = 0
		}
		return answers[idx], (idx + 1) % n
	}
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic index for the date of t.
func DailyIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

func randomIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
