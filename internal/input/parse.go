// apps/solver/internal/input/parse.go
//
// Turns one line of annotated feedback into a solver.Turn.
//
// Grammar (case-insensitive, surrounding whitespace ignored):
//   - a plain letter is absent:        C
//   - a letter in brackets is fixed:   [A]
//   - a letter in parens is misplaced: (R)
//   - GG starts a new round, Q quits.
//
// The cleaned word (brackets stripped) must be five letters and known to
// the dictionary. Example: "(R)C[A]N[E]".

package input

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Sentinel tokens reserved outside the five-letter grammar.
const (
	TokenReset = "GG"
	TokenExit  = "Q"
)

var (
	ErrEmpty       = errors.New("empty input")
	ErrUnbalanced  = errors.New("unbalanced brackets")
	ErrMalformed   = errors.New("malformed input")
	ErrLength      = errors.New("guess must be exactly 5 letters")
	ErrUnknownWord = errors.New("not in word list")
)

// Command is what a line of input asks for.
type Command int

const (
	CommandGuess Command = iota
	CommandReset
	CommandExit
)

func (c Command) String() string {
	switch c {
	case CommandReset:
		return "reset"
	case CommandExit:
		return "exit"
	default:
		return "guess"
	}
}

// Parser validates input lines. Known, when set, reports whether a cleaned
// word is in the dictionary.
type Parser struct {
	Known func(word string) bool
}

// Parse interprets raw. The Turn is only meaningful for CommandGuess.
func (p Parser) Parse(raw string) (Command, solver.Turn, error) {
	var t solver.Turn

	s := strings.ToUpper(strings.TrimSpace(raw))
	switch s {
	case "":
		return CommandGuess, t, ErrEmpty
	case TokenReset:
		return CommandReset, t, nil
	case TokenExit:
		return CommandExit, t, nil
	}

	if strings.Count(s, "[") != strings.Count(s, "]") || strings.Count(s, "(") != strings.Count(s, ")") {
		return CommandGuess, t, ErrUnbalanced
	}

	var js []solver.Judgment
	for i := 0; i < len(s); {
		c := s[i]
		switch c {
		case '[', '(':
			closer := byte(']')
			if c == '(' {
				closer = ')'
			}
			if i+2 >= len(s) || s[i+2] != closer || !isLetter(s[i+1]) {
				return CommandGuess, t, errors.Wrapf(ErrMalformed, "%c at column %d must enclose exactly one letter", c, i+1)
			}
			if c == '[' {
				js = append(js, solver.Fixed(s[i+1]))
			} else {
				js = append(js, solver.Misplaced(s[i+1]))
			}
			i += 3
		case ']', ')':
			return CommandGuess, t, errors.Wrapf(ErrMalformed, "unexpected %c at column %d", c, i+1)
		default:
			if !isLetter(c) {
				return CommandGuess, t, errors.Wrapf(ErrMalformed, "unexpected %q at column %d", c, i+1)
			}
			js = append(js, solver.Absent(c))
			i++
		}
	}

	if len(js) != solver.WordLen {
		return CommandGuess, t, errors.Wrapf(ErrLength, "got %d", len(js))
	}
	copy(t[:], js)

	if p.Known != nil && !p.Known(t.Word()) {
		return CommandGuess, t, errors.Wrap(ErrUnknownWord, t.Word())
	}
	return CommandGuess, t, nil
}

// Format renders t back into the annotated grammar.
func Format(t solver.Turn) string {
	var b strings.Builder
	for _, j := range t {
		switch j.Mark {
		case solver.MarkFixed:
			b.WriteByte('[')
			b.WriteByte(j.Letter)
			b.WriteByte(']')
		case solver.MarkMisplaced:
			b.WriteByte('(')
			b.WriteByte(j.Letter)
			b.WriteByte(')')
		default:
			b.WriteByte(j.Letter)
		}
	}
	return b.String()
}

func isLetter(b byte) bool { return b >= 'A' && b <= 'Z' }
