// apps/solver/internal/solver/solver.go
//
// Candidate filter for a single round.
// Responsibilities:
//   - Own the round's Constraints and the working candidate set.
//   - Merge each turn of feedback, then narrow the working set.
//   - Hand back at most MaxSuggestions words per turn.
//
// Notes:
//   - Narrowing is destructive: a word that fails once never comes back until Reset.
//   - Order is dictionary order, so results are stable across runs.
//   - A Solver is not safe for concurrent use; run one per round.
package solver

import "strings"

// Solver narrows a dictionary turn by turn.
type Solver struct {
	dict    []string // full dictionary, deduplicated, never mutated
	working []string // current candidates; aliases dict until the first Accept
	c       Constraints
}

// New constructs a Solver over words. Words are upper-cased and
// deduplicated; anything that is not five letters A–Z is dropped.
func New(words []string) *Solver {
	seen := make(map[string]struct{}, len(words))
	dict := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !IsWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		dict = append(dict, w)
	}
	return &Solver{dict: dict, working: dict}
}

// Accept merges t into the round's constraints, narrows the working set and
// returns up to MaxSuggestions surviving words. An empty result means no
// known word satisfies everything seen so far.
func (s *Solver) Accept(t Turn) []string {
	s.c.Merge(t)
	snap := s.c

	kept := make([]string, 0, len(s.working))
	for _, w := range s.working {
		if Keep(snap, w) {
			kept = append(kept, w)
		}
	}
	s.working = kept

	n := len(kept)
	if n > MaxSuggestions {
		n = MaxSuggestions
	}
	out := make([]string, n)
	copy(out, kept[:n])
	return out
}

// Reset clears the constraints and restores the full dictionary.
func (s *Solver) Reset() {
	s.c.Reset()
	s.working = s.dict
}

// Constraints returns a snapshot of the accumulated constraints.
func (s *Solver) Constraints() Constraints { return s.c }

// Remaining returns the size of the working set.
func (s *Solver) Remaining() int { return len(s.working) }

// Candidates returns a copy of the working set.
func (s *Solver) Candidates() []string {
	out := make([]string, len(s.working))
	copy(out, s.working)
	return out
}

// Keep reports whether word is consistent with c. word must be five
// uppercase letters.
func Keep(c Constraints, word string) bool {
	letters := LettersOf(word)

	if req := c.Required(); !req.Empty() && !req.SubsetOf(letters) {
		return false
	}
	// An empty absent set must never reject anything.
	if !c.Absent.Empty() && c.Absent.Intersects(letters) {
		return false
	}

	for i := 0; i < WordLen; i++ {
		if c.Fixed[i] != 0 && word[i] != c.Fixed[i] {
			return false
		}
		if c.Excluded[i].Has(word[i]) {
			return false
		}
	}
	return true
}

// IsWord reports whether w is exactly WordLen uppercase ASCII letters.
func IsWord(w string) bool {
	if len(w) != WordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
