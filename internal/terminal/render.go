// internal/terminal/render.go
//
// Terminal presentation of verdicts.
//   - Tiles: upper-case letter on a green / yellow / gray background.
//   - Without colour (pipes, dumb terminals) tiles fall back to markers:
//       [A] correct, (A) present,  A  absent.
//   - Keyboard: QWERTY rows, each guessed key coloured by its best hint.

package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/wordle/internal/game"
)

const (
	reset    = "\x1b[0m"
	fgWhite  = "\x1b[1;38;2;255;255;255m"
	bgGreen  = "\x1b[48;2;83;141;78m"
	bgYellow = "\x1b[48;2;201;179;89m"  // #C9B359
	bgGray   = "\x1b[48;2;51;51;51m"    // #333333
	bgUnused = "\x1b[48;2;129;131;132m" // untouched keyboard key
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Renderer writes boards, keyboards and stats to a terminal.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer targets f, enabling colour only when f is a terminal.
func NewRenderer(f *os.File) *Renderer {
	fd := f.Fd()
	return &Renderer{
		w:     colorable.NewColorable(f),
		color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// NewWriterRenderer targets any writer with colour switched on or off.
func NewWriterRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

// Printf writes a formatted line fragment.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Tile formats a single letter with its verdict.
func (r *Renderer) Tile(letter rune, v game.Verdict) string {
	l := string(unicode.ToUpper(letter))
	if !r.color {
		switch v {
		case game.Correct:
			return "[" + l + "]"
		case game.Present:
			return "(" + l + ")"
		case game.Absent:
			return " " + l + " "
		}
		return " " + l + " "
	}
	return background(v) + fgWhite + " " + l + " " + reset
}

// Row formats one scored guess.
func (r *Renderer) Row(guess string, res game.Result) string {
	var b strings.Builder
	for i, l := range []rune(guess) {
		if i >= len(res) {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.Tile(l, res[i]))
	}
	return b.String()
}

// Board prints every attempt followed by placeholder rows for the unused ones.
func (r *Renderer) Board(s *game.Session) {
	for _, a := range s.History {
		fmt.Fprintln(r.w, r.Row(a.Guess, a.Result))
	}
	blank := strings.TrimSuffix(strings.Repeat(" _  ", s.Length()), " ")
	for i := len(s.History); i < s.MaxGuesses; i++ {
		fmt.Fprintln(r.w, blank)
	}
}

// Keyboard prints the QWERTY rows with hint colours.
func (r *Renderer) Keyboard(kb game.Keyboard) {
	for i, row := range keyboardRows {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", i))
		for _, k := range row {
			v, seen := kb.Hint(k)
			switch {
			case !seen && r.color:
				b.WriteString(bgUnused + fgWhite + " " + string(unicode.ToUpper(k)) + " " + reset)
			case !seen:
				b.WriteString(" " + string(unicode.ToUpper(k)) + " ")
			case !r.color && v == game.Absent:
				b.WriteString(" · ")
			default:
				b.WriteString(r.Tile(k, v))
			}
		}
		fmt.Fprintln(r.w, b.String())
	}
}

func background(v game.Verdict) string {
	switch v {
	case game.Correct:
		return bgGreen
	case game.Present:
		return bgYellow
	case game.Absent:
		return bgGray
	}
	return bgGray
}
