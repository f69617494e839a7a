package quiz

// MaxQuestions bounds every quiz session.
const MaxQuestions = 10

// Hint is the directional difficulty signal derived from the previous
// answer's correctness. It steers the next topic selection on the ladder.
type Hint string

const (
	HintNormal Hint = "normal"
	HintEasier Hint = "easier"
	HintHarder Hint = "harder"
)

// DifficultyState tracks a section's position on its topic ladder.
// The index is always clamped into [0, len(ladder)-1].
type DifficultyState struct {
	TopicIndex int
	Topic      string
	Hint       Hint
}

// reset returns the state to the bottom of the ladder.
func (d *DifficultyState) reset() {
	d.TopicIndex = 0
	d.Topic = ""
	d.Hint = HintNormal
}

// Question is a parsed multiple-choice question. Immutable once parsed;
// discarded when the next question is requested.
type Question struct {
	Stem          string
	Options       [4]string // full option lines, "A) ..." through "D) ..."
	CorrectLetter string    // one of A-D
	CorrectFull   string    // "C) Paris"
	Explanation   string
}

// State is the quiz session state machine.
type State int

const (
	StateIdle           State = iota // no quiz running
	StateAwaitingAnswer              // question shown, selection open
	StateLocked                      // answer checked, feedback shown
	StateCompleted                   // MaxQuestions answered
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateLocked:
		return "locked"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
