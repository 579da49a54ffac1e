package round

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// SimResult reports a self-played round.
type SimResult struct {
	Answer  string
	Guesses []string // in order; the last one equals Answer when Found
	Found   bool
}

// Simulate plays a round against a known answer, scoring each guess the way
// the game would and always guessing the first suggestion next. opener, if
// non-empty, is the first guess. maxTurns <= 0 plays until the answer is
// found or no candidates remain.
func Simulate(d *words.Dictionary, answer, opener string, maxTurns int) (SimResult, error) {
	answer = strings.ToUpper(strings.TrimSpace(answer))
	opener = strings.ToUpper(strings.TrimSpace(opener))
	if !d.Contains(answer) {
		return SimResult{}, fmt.Errorf("simulate: answer %q is not in the dictionary", answer)
	}
	if opener != "" && !solver.IsWord(opener) {
		return SimResult{}, fmt.Errorf("simulate: opener %q must be 5 letters", opener)
	}

	res := SimResult{Answer: answer}
	s := solver.New(d.Words())

	guess := opener
	if guess == "" {
		guess = d.Words()[0]
	}
	for maxTurns <= 0 || len(res.Guesses) < maxTurns {
		res.Guesses = append(res.Guesses, guess)
		if guess == answer {
			res.Found = true
			break
		}
		next := s.Accept(solver.Score(answer, guess))
		if len(next) == 0 {
			break
		}
		guess = next[0]
	}
	return res, nil
}
