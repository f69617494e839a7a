package quiz

import (
	"errors"
	"fmt"
)

// ErrEmptyLadder is returned when a section has no topics to quiz on.
var ErrEmptyLadder = errors.New("no topics available in this section")

// SelectNext walks the topic ladder according to the stored hint and
// returns the generation directive for the next question.
//
// The state mutation (index and topic) is applied before the directive
// is returned, so the new position is visible to the next call even if
// question generation subsequently fails.
func SelectNext(ladder []string, state *DifficultyState) (string, error) {
	if len(ladder) == 0 {
		return "", ErrEmptyLadder
	}

	// Clamp into range; topic lists can shrink between calls.
	idx := state.TopicIndex
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ladder) {
		idx = len(ladder) - 1
	}
	state.TopicIndex = idx
	state.Topic = ladder[idx]

	switch state.Hint {
	case HintEasier:
		prev := max(0, idx-1)
		target := ladder[prev]
		if prev != idx {
			state.TopicIndex = prev
			state.Topic = target
			return fmt.Sprintf("Generate an EASIER question about the PREVIOUS or CURRENT related topic: '%s'. Focus on foundational concepts or simpler aspects of this topic.", target), nil
		}
		return fmt.Sprintf("Generate an EASIER question about '%s'. Focus on foundational concepts or simpler aspects of this topic.", state.Topic), nil

	case HintHarder:
		next := min(idx+1, len(ladder)-1)
		target := ladder[next]
		if next != idx {
			state.TopicIndex = next
			state.Topic = target
			return fmt.Sprintf("Generate a question about the NEXT related topic: '%s'. Focus on core concepts.", target), nil
		}
		return fmt.Sprintf("Generate a HARDER question about '%s'. Introduce more complex or nuanced aspects.", state.Topic), nil

	default:
		return fmt.Sprintf("Generate a question about the topic: '%s'. Focus on a balanced difficulty.", state.Topic), nil
	}
}
