// apps/solver/internal/solver/constraints.go
//
// Accumulated knowledge about the hidden word for one round.
//
// Constraints is a plain value: copying it yields an independent snapshot,
// which is what Keep consumes. It only grows between resets.

package solver

// Constraints holds everything learned about the hidden word so far.
type Constraints struct {
	Fixed    [WordLen]byte      // letter known at each position; 0 when unknown
	Excluded [WordLen]LetterSet // letters present in the word but not at this position
	Absent   LetterSet          // letters not in the word at all
}

// Merge folds one turn of feedback into c.
//
//   - fixed:     Fixed[i] = letter (re-confirming is a no-op).
//   - misplaced: letter is added to Excluded[i].
//   - absent:    letter is added to Absent, unless the same letter is judged
//     fixed or misplaced elsewhere in this turn or is already known to be
//     required. In that case the guess held more copies of the letter than
//     the answer does, so the letter is only ruled out at position i.
func (c *Constraints) Merge(t Turn) {
	// Letters this turn says are in the word, plus everything already known.
	required := c.Required()
	for _, j := range t {
		if j.Mark == MarkFixed || j.Mark == MarkMisplaced {
			required = required.With(j.Letter)
		}
	}

	for i, j := range t {
		switch j.Mark {
		case MarkFixed:
			c.Fixed[i] = j.Letter
		case MarkMisplaced:
			c.Excluded[i] = c.Excluded[i].With(j.Letter)
		case MarkAbsent:
			if !required.Has(j.Letter) {
				c.Absent = c.Absent.With(j.Letter)
			} else if c.Fixed[i] != j.Letter {
				// Fixed[i] and Excluded[i] stay disjoint.
				c.Excluded[i] = c.Excluded[i].With(j.Letter)
			}
		}
	}
}

// Reset clears every constraint.
func (c *Constraints) Reset() {
	*c = Constraints{}
}

// Required returns every letter known to be in the word, wherever it sits.
func (c *Constraints) Required() LetterSet {
	var req LetterSet
	for i := 0; i < WordLen; i++ {
		if c.Fixed[i] != 0 {
			req = req.With(c.Fixed[i])
		}
		req = req.Union(c.Excluded[i])
	}
	return req
}

// Empty reports whether nothing has been learned yet.
func (c *Constraints) Empty() bool {
	return *c == Constraints{}
}

// Pattern renders the fixed letters as a five-character mask, e.g. "__A_E".
func (c *Constraints) Pattern() string {
	b := make([]byte, WordLen)
	for i, f := range c.Fixed {
		if f == 0 {
			b[i] = '_'
		} else {
			b[i] = f
		}
	}
	return string(b)
}
