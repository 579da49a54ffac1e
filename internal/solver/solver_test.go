package solver

import (
	"reflect"
	"sort"
	"testing"
)

var testWords = []string{
	"CRANE", "SLATE", "TRACE", "GRAPE", "EERIE", "ROBOT", "FLOOR",
	"SPEED", "ABBEY", "BRAVO", "ROBIN", "LEVEL", "GEESE", "MAMMA",
}

// turn builds a Turn from a word and a mark string of f/m/a runes.
func turn(word, marks string) Turn {
	var t Turn
	for i := 0; i < WordLen; i++ {
		switch marks[i] {
		case 'f':
			t[i] = Fixed(word[i])
		case 'm':
			t[i] = Misplaced(word[i])
		default:
			t[i] = Absent(word[i])
		}
	}
	return t
}

func contains(list []string, w string) bool {
	for _, x := range list {
		if x == w {
			return true
		}
	}
	return false
}

func TestNewDeduplicatesAndNormalizes(t *testing.T) {
	s := New([]string{"crane", "CRANE", " slate ", "toolong", "ab1de", "Grape"})
	want := []string{"CRANE", "SLATE", "GRAPE"}
	if got := s.Candidates(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Candidates() = %v, want %v", got, want)
	}
}

func TestAcceptGrapeExample(t *testing.T) {
	s := New([]string{"CRANE", "SLATE", "TRACE", "GRAPE"})

	// R misplaced in column 0, A and E fixed, C and N absent.
	got := s.Accept(Turn{Misplaced('R'), Absent('C'), Fixed('A'), Absent('N'), Fixed('E')})

	c := s.Constraints()
	if c.Fixed != [WordLen]byte{0, 0, 'A', 0, 'E'} {
		t.Errorf("Fixed = %q", c.Fixed)
	}
	if c.Excluded[0] != LettersOf("R") {
		t.Errorf("Excluded[0] = %s, want R", c.Excluded[0])
	}
	if c.Absent != LettersOf("CN") {
		t.Errorf("Absent = %s, want CN", c.Absent)
	}
	if r := c.Required(); r != LettersOf("AER") {
		t.Errorf("Required() = %s, want AER", r)
	}
	if want := []string{"GRAPE"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Accept() = %v, want %v", got, want)
	}
}

func TestKeep(t *testing.T) {
	tests := []struct {
		name string
		c    Constraints
		word string
		want bool
	}{
		{"no constraints", Constraints{}, "CRANE", true},
		{"fixed match", Constraints{Fixed: [WordLen]byte{'C'}}, "CRANE", true},
		{"fixed mismatch", Constraints{Fixed: [WordLen]byte{'S'}}, "CRANE", false},
		{"excluded at position", Constraints{Excluded: [WordLen]LetterSet{LettersOf("C")}}, "CRANE", false},
		{"excluded letter elsewhere", Constraints{Excluded: [WordLen]LetterSet{LettersOf("R")}}, "BRAVO", true},
		{"required missing", Constraints{Excluded: [WordLen]LetterSet{0, 0, 0, 0, LettersOf("Z")}}, "CRANE", false},
		{"absent present", Constraints{Absent: LettersOf("N")}, "CRANE", false},
		{"absent not present", Constraints{Absent: LettersOf("XYZ")}, "CRANE", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Keep(tt.c, tt.word); got != tt.want {
				t.Errorf("Keep(%s) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestKeepEmptyAbsentNeverRejects(t *testing.T) {
	c := Constraints{}
	c.Merge(turn("CRANE", "mmmmm"))
	if !c.Absent.Empty() {
		t.Fatalf("Absent = %s, want empty", c.Absent)
	}
	// NACER satisfies the positional rules; only an absent rule could reject it.
	if !Keep(c, "NACER") {
		t.Error("Keep(NACER) = false with empty absent set")
	}
}

func TestExcludedDoesNotBlockLetterElsewhere(t *testing.T) {
	s := New([]string{"ROBIN", "BRAVO", "FLOOR", "SPEED"})
	got := s.Accept(turn("RUSTY", "maaaa"))
	// R is required but banned from column 0; BRAVO and FLOOR hold it elsewhere.
	if want := []string{"BRAVO", "FLOOR"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Accept() = %v, want %v", got, want)
	}
}

func TestMergeDuplicateLetters(t *testing.T) {
	var c Constraints
	// Guessing EERIE against CRANE: the last E is fixed, the first two are absent.
	c.Merge(Score("CRANE", "EERIE"))

	if c.Absent != LettersOf("I") {
		t.Errorf("Absent = %s, want I", c.Absent)
	}
	if c.Excluded[0] != LettersOf("E") || c.Excluded[1] != LettersOf("E") {
		t.Errorf("Excluded[0..1] = %s %s, want E E", c.Excluded[0], c.Excluded[1])
	}
	if c.Excluded[2] != LettersOf("R") {
		t.Errorf("Excluded[2] = %s, want R", c.Excluded[2])
	}
	if c.Fixed[4] != 'E' {
		t.Errorf("Fixed[4] = %q, want E", c.Fixed[4])
	}
	if !Keep(c, "CRANE") {
		t.Error("answer CRANE rejected")
	}
}

func TestMergeAbsentForPreviouslyRequiredLetter(t *testing.T) {
	var c Constraints
	c.Merge(turn("SLATE", "aamaa"))
	c.Merge(turn("ABBEY", "aaaaa"))
	if c.Absent.Has('A') {
		t.Errorf("Absent = %s, must not contain required A", c.Absent)
	}
	if !c.Excluded[0].Has('A') {
		t.Errorf("Excluded[0] = %s, want A", c.Excluded[0])
	}
}

func TestMergeIdempotent(t *testing.T) {
	turns := []Turn{
		turn("CRANE", "amfaf"),
		turn("EERIE", "aamaf"),
		turn("SPEED", "fmmaa"),
	}
	for _, tt := range turns {
		t.Run(tt.Word(), func(t *testing.T) {
			var once, twice Constraints
			once.Merge(tt)
			twice.Merge(tt)
			twice.Merge(tt)
			if once != twice {
				t.Errorf("merge twice = %+v, once = %+v", twice, once)
			}
		})
	}
}

func TestRequiredIsUnionOfFixedAndMisplaced(t *testing.T) {
	var c Constraints
	var want LetterSet
	turns := []Turn{
		turn("CRANE", "amaaa"),
		turn("ROBIN", "aaafa"),
		turn("LEVEL", "amaaa"),
	}
	for _, tt := range turns {
		before := c.Required()
		c.Merge(tt)
		for _, j := range tt {
			if j.Mark != MarkAbsent {
				want = want.With(j.Letter)
			}
		}
		got := c.Required()
		if got != want {
			t.Fatalf("after %s Required() = %s, want %s", tt.Word(), got, want)
		}
		if !before.SubsetOf(got) {
			t.Fatalf("Required shrank from %s to %s", before, got)
		}
	}
}

func TestResetRestoresDictionary(t *testing.T) {
	s := New(testWords)
	s.Accept(turn("CRANE", "ffaaa"))
	if s.Remaining() == len(testWords) {
		t.Fatal("expected narrowing before reset")
	}
	s.Reset()

	got := s.Candidates()
	want := append([]string(nil), testWords...)
	sort.Strings(got)
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("after Reset candidates = %v, want %v", got, want)
	}
	if c := s.Constraints(); !c.Empty() {
		t.Errorf("after Reset constraints = %+v", c)
	}
}

func TestAcceptNarrowsMonotonically(t *testing.T) {
	s := New(testWords)
	turns := []Turn{
		turn("SLATE", "aaaaf"),
		turn("GEESE", "amaaf"),
		turn("CRANE", "mffaf"),
	}
	for _, tt := range turns {
		before := s.Candidates()
		got := s.Accept(tt)
		after := s.Candidates()

		if len(got) > MaxSuggestions {
			t.Fatalf("Accept() returned %d words", len(got))
		}
		for _, w := range after {
			if !contains(before, w) {
				t.Fatalf("%s appeared after %s", w, tt.Word())
			}
		}
		snap := s.Constraints()
		for _, w := range got {
			if !contains(before, w) {
				t.Errorf("suggestion %s not in previous working set", w)
			}
			if !Keep(snap, w) {
				t.Errorf("suggestion %s fails Keep", w)
			}
		}
	}
}

func TestAcceptBoundsResult(t *testing.T) {
	s := New(testWords)
	got := s.Accept(turn("QQQQQ", "aaaaa"))
	if len(got) != MaxSuggestions {
		t.Fatalf("Accept() returned %d words, want %d", len(got), MaxSuggestions)
	}
	if want := testWords[:MaxSuggestions]; !reflect.DeepEqual(got, want) {
		t.Errorf("Accept() = %v, want dictionary order %v", got, want)
	}
}

func TestAcceptEmptyResult(t *testing.T) {
	s := New(testWords)
	if got := s.Accept(turn("ZZZZZ", "fffff")); len(got) != 0 {
		t.Errorf("Accept() = %v, want empty", got)
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}
}

func TestIndependentInstances(t *testing.T) {
	a := New(testWords)
	b := New(testWords)
	a.Accept(turn("CRANE", "fffff"))
	if b.Remaining() != len(testWords) {
		t.Errorf("second solver narrowed to %d", b.Remaining())
	}
}

// The real answer must survive any feedback produced by game scoring.
func TestAnswerAlwaysSurvivesScoredFeedback(t *testing.T) {
	for _, answer := range testWords {
		for _, guess := range testWords {
			s := New(testWords)
			s.Accept(Score(answer, guess))
			if !contains(s.Candidates(), answer) {
				t.Errorf("answer %s filtered out by guess %s (%+v)", answer, guess, s.Constraints())
			}
		}
	}
}

func TestIsWord(t *testing.T) {
	tests := []struct {
		w    string
		want bool
	}{
		{"CRANE", true},
		{"crane", false},
		{"GR4PE", false},
		{"CRAN", false},
		{"CRANES", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsWord(tt.w); got != tt.want {
			t.Errorf("IsWord(%q) = %v, want %v", tt.w, got, tt.want)
		}
	}
}
