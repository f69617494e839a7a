package quiz

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		correct   int
		attempted int
		want      string
	}{
		{0, 0, "N/A"},
		{3, 4, "75.0%"},
		{1, 3, "33.3%"},
		{2, 3, "66.7%"},
		{10, 10, "100.0%"},
		{0, 5, "0.0%"},
	}
	for _, tt := range tests {
		got := Grade(tt.correct, tt.attempted)
		if got != tt.want {
			t.Errorf("Grade(%d, %d) = %q, want %q", tt.correct, tt.attempted, got, tt.want)
		}
		// Idempotent: same inputs, same output.
		if again := Grade(tt.correct, tt.attempted); again != got {
			t.Errorf("Grade(%d, %d) not stable: %q then %q", tt.correct, tt.attempted, got, again)
		}
	}
}

func TestScoreboard(t *testing.T) {
	b := NewScoreboard()

	if b.Grade() != "N/A" {
		t.Errorf("empty grade = %q, want N/A", b.Grade())
	}

	b.RecordAttempt(true)
	b.RecordAttempt(true)
	b.RecordAttempt(false)
	b.RecordAttempt(true)

	correct, attempted := b.Totals()
	if correct != 3 || attempted != 4 {
		t.Errorf("totals = (%d, %d), want (3, 4)", correct, attempted)
	}
	if b.Grade() != "75.0%" {
		t.Errorf("grade = %q, want 75.0%%", b.Grade())
	}
}
