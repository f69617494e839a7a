package quiz

import (
	"errors"
	"strings"
	"testing"
)

func TestSelectNext_EmptyLadder(t *testing.T) {
	state := &DifficultyState{Hint: HintNormal}
	_, err := SelectNext(nil, state)
	if !errors.Is(err, ErrEmptyLadder) {
		t.Fatalf("expected ErrEmptyLadder, got %v", err)
	}
}

func TestSelectNext_Normal(t *testing.T) {
	ladder := []string{"Cells", "Tissues", "Organs"}
	state := &DifficultyState{TopicIndex: 1, Hint: HintNormal}

	directive, err := SelectNext(ladder, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.TopicIndex != 1 {
		t.Errorf("index = %d, want 1", state.TopicIndex)
	}
	if state.Topic != "Tissues" {
		t.Errorf("topic = %q, want %q", state.Topic, "Tissues")
	}
	if !strings.Contains(directive, "'Tissues'") || !strings.Contains(directive, "balanced difficulty") {
		t.Errorf("unexpected directive: %q", directive)
	}
}

func TestSelectNext_EasierMovesDown(t *testing.T) {
	ladder := []string{"Cells", "Tissues", "Organs"}
	state := &DifficultyState{TopicIndex: 2, Hint: HintEasier}

	directive, err := SelectNext(ladder, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.TopicIndex != 1 {
		t.Errorf("index = %d, want 1", state.TopicIndex)
	}
	if state.Topic != "Tissues" {
		t.Errorf("topic = %q, want %q", state.Topic, "Tissues")
	}
	if !strings.Contains(directive, "EASIER") || !strings.Contains(directive, "PREVIOUS or CURRENT") {
		t.Errorf("unexpected directive: %q", directive)
	}
}

func TestSelectNext_EasierClampsAtBottom(t *testing.T) {
	ladder := []string{"Cells", "Tissues", "Organs"}
	state := &DifficultyState{TopicIndex: 0, Hint: HintEasier}

	directive, err := SelectNext(ladder, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Clamped: no movement, topic unchanged.
	if state.TopicIndex != 0 {
		t.Errorf("index = %d, want 0", state.TopicIndex)
	}
	if state.Topic != "Cells" {
		t.Errorf("topic = %q, want %q", state.Topic, "Cells")
	}
	if !strings.Contains(directive, "EASIER question about 'Cells'") {
		t.Errorf("unexpected directive: %q", directive)
	}
	if strings.Contains(directive, "PREVIOUS") {
		t.Errorf("no-movement directive should not mention the previous topic: %q", directive)
	}
}

func TestSelectNext_HarderMovesUp(t *testing.T) {
	ladder := []string{"Cells", "Tissues", "Organs"}
	state := &DifficultyState{TopicIndex: 0, Hint: HintHarder}

	directive, err := SelectNext(ladder, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.TopicIndex != 1 {
		t.Errorf("index = %d, want 1", state.TopicIndex)
	}
	if state.Topic != "Tissues" {
		t.Errorf("topic = %q, want %q", state.Topic, "Tissues")
	}
	if !strings.Contains(directive, "NEXT related topic: 'Tissues'") || !strings.Contains(directive, "core concepts") {
		t.Errorf("unexpected directive: %q", directive)
	}
}

func TestSelectNext_HarderClampsAtTop(t *testing.T) {
	ladder := []string{"Cells", "Tissues", "Organs"}
	state := &DifficultyState{TopicIndex: 2, Hint: HintHarder}

	directive, err := SelectNext(ladder, state)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.TopicIndex != 2 {
		t.Errorf("index = %d, want 2", state.TopicIndex)
	}
	if state.Topic != "Organs" {
		t.Errorf("topic = %q, want %q", state.Topic, "Organs")
	}
	if !strings.Contains(directive, "HARDER") || !strings.Contains(directive, "complex or nuanced") {
		t.Errorf("unexpected directive: %q", directive)
	}
}

func TestSelectNext_ClampsOutOfRangeIndex(t *testing.T) {
	ladder := []string{"Cells", "Tissues"}

	tests := []struct {
		name      string
		index     int
		wantIndex int
		wantTopic string
	}{
		{"negative index", -3, 0, "Cells"},
		{"index past end", 7, 1, "Tissues"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &DifficultyState{TopicIndex: tt.index, Hint: HintNormal}
			if _, err := SelectNext(ladder, state); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if state.TopicIndex != tt.wantIndex {
				t.Errorf("index = %d, want %d", state.TopicIndex, tt.wantIndex)
			}
			if state.Topic != tt.wantTopic {
				t.Errorf("topic = %q, want %q", state.Topic, tt.wantTopic)
			}
		})
	}
}

func TestSelectNext_MutationSurvivesAcrossCalls(t *testing.T) {
	ladder := []string{"Cells", "Tissues", "Organs"}
	state := &DifficultyState{TopicIndex: 0, Hint: HintHarder}

	// First call moves to index 1; the mutation must persist.
	if _, err := SelectNext(ladder, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := SelectNext(ladder, state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.TopicIndex != 2 {
		t.Errorf("index = %d, want 2 after two harder steps", state.TopicIndex)
	}
}
