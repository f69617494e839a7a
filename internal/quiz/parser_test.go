package quiz

import (
	"errors"
	"testing"
)

const wellFormed = `### Question 1:
What is the capital of France?
A) Berlin
B) Madrid
C) Paris
D) Rome
Correct Answer: C) Paris
Explanation: Paris is the capital and most populous city of France.`

func TestParseQuestion_WellFormed(t *testing.T) {
	q, err := ParseQuestion(wellFormed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Stem != "What is the capital of France?" {
		t.Errorf("stem = %q", q.Stem)
	}
	if q.Options[0] != "A) Berlin" || q.Options[3] != "D) Rome" {
		t.Errorf("unexpected options: %v", q.Options)
	}
	if q.CorrectLetter != "C" {
		t.Errorf("letter = %q, want C", q.CorrectLetter)
	}
	if q.CorrectFull != "C) Paris" {
		t.Errorf("full = %q, want %q", q.CorrectFull, "C) Paris")
	}
	if q.Explanation != "Paris is the capital and most populous city of France." {
		t.Errorf("explanation = %q", q.Explanation)
	}
}

func TestParseQuestion_NoHeading(t *testing.T) {
	raw := "Question?\nA) x\nB) y\nC) z\nD) w\nCorrect Answer: B) y\nExplanation: because"
	q, err := ParseQuestion(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectLetter != "B" {
		t.Errorf("letter = %q, want B", q.CorrectLetter)
	}
	if q.Stem != "Question?" {
		t.Errorf("stem = %q", q.Stem)
	}
}

func TestParseQuestion_HeadingSharesLine(t *testing.T) {
	raw := "### Question 3: What is osmosis?\nA) a\nB) b\nC) c\nD) d\nCorrect Answer: A) a\nExplanation: diffusion of water"
	q, err := ParseQuestion(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Stem != "What is osmosis?" {
		t.Errorf("stem = %q", q.Stem)
	}
}

func TestParseQuestion_MultilineExplanation(t *testing.T) {
	raw := wellFormed + "\nIt has been the capital since 987 AD."
	q, err := ParseQuestion(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Paris is the capital and most populous city of France.\nIt has been the capital since 987 AD."
	if q.Explanation != want {
		t.Errorf("explanation = %q, want %q", q.Explanation, want)
	}
}

func TestParseQuestion_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"missing option line", "Q?\nA) x\nB) y\nC) z\nCorrect Answer: B) y\nExplanation: because"},
		{"options out of order", "Q?\nB) y\nA) x\nC) z\nD) w\nCorrect Answer: B) y\nExplanation: because"},
		{"missing correct answer", "Q?\nA) x\nB) y\nC) z\nD) w\nExplanation: because"},
		{"letter out of range", "Q?\nA) x\nB) y\nC) z\nD) w\nCorrect Answer: E) ?\nExplanation: because"},
		{"missing explanation", "Q?\nA) x\nB) y\nC) z\nD) w\nCorrect Answer: B) y"},
		{"missing stem", "A) x\nB) y\nC) z\nD) w\nCorrect Answer: B) y\nExplanation: because"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuestion(tt.raw)
			if err == nil {
				t.Fatalf("expected error, got question %+v", q)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %T (%v)", err, err)
			}
			if perr.Missing == "" {
				t.Error("expected ParseError to name the missing part")
			}
		})
	}
}

func TestParseQuestion_BlankLinesIgnored(t *testing.T) {
	raw := "\n\nWhat is 2+2?\n\nA) 3\nB) 4\n\nC) 5\nD) 6\nCorrect Answer: B) 4\nExplanation: arithmetic\n\n"
	q, err := ParseQuestion(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.CorrectLetter != "B" {
		t.Errorf("letter = %q, want B", q.CorrectLetter)
	}
}
