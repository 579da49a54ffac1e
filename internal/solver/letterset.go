package solver

import "strings"

// LetterSet is a set of uppercase ASCII letters A–Z stored as a bitmask.
// The zero value is the empty set.
type LetterSet uint32

// LettersOf returns the set of distinct letters in s.
// Bytes outside A–Z are ignored.
func LettersOf(s string) LetterSet {
	var set LetterSet
	for i := 0; i < len(s); i++ {
		set = set.With(s[i])
	}
	return set
}

func bit(b byte) LetterSet {
	if b < 'A' || b > 'Z' {
		return 0
	}
	return 1 << (b - 'A')
}

// With returns the set with b added.
func (s LetterSet) With(b byte) LetterSet { return s | bit(b) }

// Has reports whether b is in the set.
func (s LetterSet) Has(b byte) bool {
	m := bit(b)
	return m != 0 && s&m != 0
}

// Union returns s ∪ o.
func (s LetterSet) Union(o LetterSet) LetterSet { return s | o }

// Intersects reports whether s and o share a letter.
func (s LetterSet) Intersects(o LetterSet) bool { return s&o != 0 }

// SubsetOf reports whether every letter of s is in o.
func (s LetterSet) SubsetOf(o LetterSet) bool { return s&^o == 0 }

// Empty reports whether the set has no letters.
func (s LetterSet) Empty() bool { return s == 0 }

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	n := 0
	for x := s; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// String lists the letters in alphabetical order, e.g. "AER".
func (s LetterSet) String() string {
	var b strings.Builder
	for c := byte('A'); c <= 'Z'; c++ {
		if s.Has(c) {
			b.WriteByte(c)
		}
	}
	return b.String()
}
