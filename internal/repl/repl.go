// apps/solver/internal/repl/repl.go
//
// Interactive solver loop.
// Reads one annotated guess per line, e.g. "(r)c[a]n[e]", and prints up to
// five words that still fit everything typed so far.
//
// Commands:
//   - GG   → forget everything and start a new word.
//   - Q    → leave (EOF does the same).
//
// After the last turn, a solved board, or an empty suggestion list the loop
// prints "Game Over!" and asks whether to play again.
package repl

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/input"
	"github.com/robalobadob/wordle/apps/solver/internal/round"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// LineReader yields one line of user input at a time. io.EOF ends the loop.
type LineReader interface {
	ReadLine() (string, error)
}

// Options configures Run.
type Options struct {
	In       LineReader
	Out      io.Writer
	Dict     *words.Dictionary
	MaxTurns int // <= 0 uses round.DefaultMaxTurns

	// Confirm asks a yes/no question. When nil the question is printed to
	// Out and answered by the next line from In ("y" means yes).
	Confirm func(label string) bool
}

const againLabel = "Do you want to play again"

// Run drives the loop until the user quits, In is exhausted, or ctx is done.
func Run(ctx context.Context, o Options) error {
	if o.In == nil || o.Out == nil || o.Dict == nil {
		return errors.New("repl: In, Out and Dict are required")
	}
	if o.Confirm == nil {
		o.Confirm = lineConfirm(o.In, o.Out)
	}

	rd := round.New(o.Dict, o.MaxTurns)
	p := input.Parser{Known: o.Dict.Contains}

	fmt.Fprintln(o.Out, "Welcome to Wordle Solver!")
	defer fmt.Fprintln(o.Out, "Thanks for playing!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := o.In.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read line")
		}

		cmd, turn, err := p.Parse(line)
		if err != nil {
			fmt.Fprintf(o.Out, "Invalid input. Please try again. (%v)\n", err)
			continue
		}

		switch cmd {
		case input.CommandExit:
			return nil
		case input.CommandReset:
			rd.Reset()
			fmt.Fprintln(o.Out, "New Wordle!")
			continue
		}

		res, err := rd.Play(turn)
		if err != nil {
			// Finished rounds are reset below, so this is unexpected.
			return errors.Wrap(err, "play")
		}

		switch {
		case res.State == round.StateSolved:
			fmt.Fprintf(o.Out, "Solved in %d!\n", res.Turn)
		case len(res.Suggestions) == 0:
			fmt.Fprintln(o.Out, "No words left.")
		default:
			fmt.Fprintln(o.Out, strings.Join(res.Suggestions, " "))
		}

		if !res.Finished() {
			continue
		}
		log.Debug().Str("state", string(res.State)).Int("turns", res.Turn).Msg("round finished")

		fmt.Fprintln(o.Out, "Game Over!")
		if !o.Confirm(againLabel) {
			return nil
		}
		rd.Reset()
		fmt.Fprintln(o.Out, "New Wordle!")
	}
}

// lineConfirm asks on out and reads the answer from in.
func lineConfirm(in LineReader, out io.Writer) func(string) bool {
	return func(label string) bool {
		fmt.Fprintf(out, "%s? (y/n): ", label)
		ans, err := in.ReadLine()
		if err != nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(ans), "y")
	}
}
