// apps/solver/internal/replay/replay.go
//
// Scripted rounds for regression checks and demos.
//
// A script is YAML:
//
//	rounds:
//	  - name: grape
//	    guesses: ["(r)c[a]n[e]", "[g][r][a][p][e]"]
//	  - name: scored
//	    answer: GRAPE
//	    guesses: [crane, grape]
//
// With an answer set, plain words are scored against it; annotated guesses
// are always taken as written. Each round starts from the full dictionary.
package replay

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/solver/internal/input"
	"github.com/robalobadob/wordle/apps/solver/internal/round"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Script is a list of rounds to play in order.
type Script struct {
	Rounds []Round `yaml:"rounds"`
}

// Round is one scripted round.
type Round struct {
	Name    string   `yaml:"name"`
	Answer  string   `yaml:"answer,omitempty"`
	Guesses []string `yaml:"guesses"`
}

// RoundReport is the outcome of one scripted round.
type RoundReport struct {
	Name        string
	Turns       []string // each turn in annotated form
	Suggestions []string // after the last turn
	Remaining   int
	State       round.State
}

// Report collects every round's outcome.
type Report struct {
	Rounds []RoundReport
}

// Load decodes a script. Unknown keys are rejected.
func Load(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Script{}, errors.Wrap(err, "decode script")
	}
	if len(s.Rounds) == 0 {
		return Script{}, errors.New("script has no rounds")
	}
	return s, nil
}

// LoadFile reads a script from path.
func LoadFile(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, err
	}
	defer f.Close()
	s, err := Load(f)
	return s, errors.Wrap(err, path)
}

// Run plays every round of s against d. The first bad guess stops the run;
// the error names the round and turn.
func Run(s Script, d *words.Dictionary, maxTurns int) (Report, error) {
	var rep Report
	p := input.Parser{Known: d.Contains}

	for n, sr := range s.Rounds {
		name := sr.Name
		if name == "" {
			name = fmt.Sprintf("#%d", n+1)
		}
		answer := strings.ToUpper(strings.TrimSpace(sr.Answer))
		if answer != "" {
			if !solver.IsWord(answer) {
				return rep, errors.Errorf("round %s: answer %q must be %d letters A-Z", name, sr.Answer, solver.WordLen)
			}
			if !d.Contains(answer) {
				return rep, errors.Errorf("round %s: answer %q is not in the dictionary", name, sr.Answer)
			}
		}

		rd := round.New(d, maxTurns)
		rr := RoundReport{Name: name, Remaining: rd.Remaining(), State: rd.State()}
		for i, g := range sr.Guesses {
			cmd, turn, err := p.Parse(g)
			if err != nil {
				return rep, errors.Wrapf(err, "round %s turn %d", name, i+1)
			}
			if cmd != input.CommandGuess {
				return rep, errors.Errorf("round %s turn %d: %s is not allowed in a script", name, i+1, cmd)
			}
			if answer != "" && !annotated(g) {
				turn = solver.Score(answer, turn.Word())
			}

			res, err := rd.Play(turn)
			if err != nil {
				return rep, errors.Wrapf(err, "round %s turn %d", name, i+1)
			}
			rr.Turns = append(rr.Turns, input.Format(turn))
			rr.Suggestions = res.Suggestions
			rr.Remaining = res.Remaining
			rr.State = res.State
		}
		rep.Rounds = append(rep.Rounds, rr)
	}
	return rep, nil
}

// Write prints one line per round.
func (r Report) Write(w io.Writer) error {
	for _, rr := range r.Rounds {
		_, err := fmt.Fprintf(w, "%s: %s after %d turns, %d left %v\n",
			rr.Name, rr.State, len(rr.Turns), rr.Remaining, rr.Suggestions)
		if err != nil {
			return err
		}
	}
	return nil
}

func annotated(g string) bool { return strings.ContainsAny(g, "[]()") }
