// apps/solver/internal/solver/types.go
//
// Core type definitions for the constraint solver.
// Defines:
//   - Mark: per-letter feedback for one column of a guess (fixed/misplaced/absent).
//   - Judgment: one evaluated letter of a guess.
//   - Turn: the five judgments of a single guess, index = board column.

package solver

// WordLen is the only supported word length.
const WordLen = 5

// MaxSuggestions bounds the number of words returned by Accept.
const MaxSuggestions = 5

// Mark represents the feedback for a single letter in a guess.
// Possible values:
//   - "fixed":     letter is correct and in the correct position.
//   - "misplaced": letter exists in the answer but in a different position.
//   - "absent":    letter does not exist in the answer (see Merge for duplicates).
type Mark string

const (
	MarkFixed     Mark = "fixed"
	MarkMisplaced Mark = "misplaced"
	MarkAbsent    Mark = "absent"
)

// Judgment is one evaluated letter of a guess.
type Judgment struct {
	Letter byte // uppercase A–Z
	Mark   Mark
}

// Turn holds the feedback for one guess.
type Turn [WordLen]Judgment

// Word returns the guessed word the turn was judged on.
func (t Turn) Word() string {
	b := make([]byte, WordLen)
	for i, j := range t {
		b[i] = j.Letter
	}
	return string(b)
}

// Solved reports whether every column was judged fixed.
func (t Turn) Solved() bool {
	for _, j := range t {
		if j.Mark != MarkFixed {
			return false
		}
	}
	return true
}

// Fixed returns a Judgment marking letter as correct.
func Fixed(letter byte) Judgment { return Judgment{Letter: letter, Mark: MarkFixed} }

// Misplaced returns a Judgment marking letter as present elsewhere.
func Misplaced(letter byte) Judgment { return Judgment{Letter: letter, Mark: MarkMisplaced} }

// Absent returns a Judgment marking letter as not in the answer.
func Absent(letter byte) Judgment { return Judgment{Letter: letter, Mark: MarkAbsent} }
