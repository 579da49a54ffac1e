package solver

// Score judges guess against answer the way the game does, so that a round
// can be played without a human reading the board. Both words must be
// WordLen uppercase letters.
//
// Pass 1:
//   - Mark exact matches as fixed.
//   - Count remaining (non-fixed) answer letters.
//
// Pass 2:
//   - For each non-fixed guess letter: if there is remaining count for that
//     letter, mark misplaced and decrement the count; otherwise mark absent.
//
// This handles repeated letters in both answer and guess.
func Score(answer, guess string) Turn {
	var t Turn
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		t[i].Letter = guess[i]
		if guess[i] == answer[i] {
			t[i].Mark = MarkFixed
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < WordLen; i++ {
		if t[i].Mark == MarkFixed {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			t[i].Mark = MarkMisplaced
			counts[j]--
		} else {
			t[i].Mark = MarkAbsent
		}
	}
	return t
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(b byte) int { return int(b) - 'A' }
