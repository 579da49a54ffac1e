// apps/solver/internal/round/round.go
//
// Turn counting for one round of the game.
// Responsibilities:
//   - Wrap a solver.Solver with a turn limit (6 by default).
//   - Classify each turn's outcome: playing → solved / exhausted / over.
//   - Reset back to a fresh round on request or when a new word starts.
//
// State transitions:
//   - All five judgments fixed        → Solved, round finished.
//   - No candidates left              → Exhausted, round finished.
//   - Turn count reaches the limit    → Over, round finished.
//   - Play after finish               → ErrRoundOver until Reset.
package round

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// DefaultMaxTurns matches the board height of the game.
const DefaultMaxTurns = 6

// ErrRoundOver is returned by Play once the round has finished.
var ErrRoundOver = errors.New("round is over")

// State is a coarse description of where the round stands.
type State string

const (
	StatePlaying   State = "playing"
	StateSolved    State = "solved"
	StateExhausted State = "exhausted"
	StateOver      State = "over"
)

// Result describes one played turn.
type Result struct {
	Turn        int      // 1-based turn number
	Suggestions []string // at most solver.MaxSuggestions words
	Remaining   int      // size of the working set after this turn
	State       State
}

// Finished reports whether the round needs a Reset before the next Play.
func (r Result) Finished() bool { return r.State != StatePlaying }

// Round is one game round over a dictionary. Not safe for concurrent use.
type Round struct {
	s        *solver.Solver
	maxTurns int
	turns    int
	state    State
}

// New starts a round over d. maxTurns <= 0 means DefaultMaxTurns.
func New(d *words.Dictionary, maxTurns int) *Round {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Round{s: solver.New(d.Words()), maxTurns: maxTurns, state: StatePlaying}
}

// Play feeds one turn of feedback to the solver.
func (r *Round) Play(t solver.Turn) (Result, error) {
	if r.state != StatePlaying {
		return Result{Turn: r.turns, Remaining: r.s.Remaining(), State: r.state}, ErrRoundOver
	}

	suggestions := r.s.Accept(t)
	r.turns++

	switch {
	case t.Solved():
		r.state = StateSolved
	case len(suggestions) == 0:
		r.state = StateExhausted
	case r.turns >= r.maxTurns:
		r.state = StateOver
	}

	log.Debug().
		Int("turn", r.turns).
		Str("guess", t.Word()).
		Int("remaining", r.s.Remaining()).
		Str("state", string(r.state)).
		Msg("turn played")

	return Result{
		Turn:        r.turns,
		Suggestions: suggestions,
		Remaining:   r.s.Remaining(),
		State:       r.state,
	}, nil
}

// Reset starts a new round over the same dictionary.
func (r *Round) Reset() {
	r.s.Reset()
	r.turns = 0
	r.state = StatePlaying
}

// Turns returns how many turns were played this round.
func (r *Round) Turns() int { return r.turns }

// MaxTurns returns the turn limit.
func (r *Round) MaxTurns() int { return r.maxTurns }

// State returns the current round state.
func (r *Round) State() State { return r.state }

// Remaining returns the number of candidates left.
func (r *Round) Remaining() int { return r.s.Remaining() }

// Constraints returns a snapshot of what the round has learned.
func (r *Round) Constraints() solver.Constraints { return r.s.Constraints() }
