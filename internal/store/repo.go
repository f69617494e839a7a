package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SectionState is the serialized form of a curriculum section for snapshots.
type SectionState struct {
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

// SnapshotData captures the full workspace state at a point in time.
type SnapshotData struct {
	Version  int            `json:"version"`
	Subject  string         `json:"subject,omitempty"`
	Sections []SectionState `json:"sections,omitempty"`
	StudyMap string         `json:"study_map,omitempty"`
}

// Snapshot represents a point-in-time capture of workspace state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages workspace state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates LLM usage for a single purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for a single model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QuizEventData captures a quiz session lifecycle event.
type QuizEventData struct {
	SessionID         string
	Section           string
	Action            string // start, finish, or restart
	QuestionsAnswered int
	CorrectAnswers    int
	Grade             string
	DurationSecs      int
}

// QuizSummaryRecord is a persisted quiz finish event for stats views.
type QuizSummaryRecord struct {
	SessionID         string
	Section           string
	Timestamp         time.Time
	QuestionsAnswered int
	CorrectAnswers    int
	Grade             string
	DurationSecs      int
}

// AnswerEventData captures a single answered question.
type AnswerEventData struct {
	SessionID     string
	Section       string
	Topic         string
	TopicIndex    int
	QuestionText  string
	CorrectLetter string
	ChosenLetter  string
	Correct       bool
	TimeMs        int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendQuizEvent records a quiz session lifecycle event.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendAnswerEvent records an answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// SectionAccuracy returns the fraction of correct answers for a section,
	// or 0 if no answers have been recorded.
	SectionAccuracy(ctx context.Context, section string) (float64, error)

	// QueryQuizSummaries returns finished quiz sessions, newest first.
	QueryQuizSummaries(ctx context.Context, opts QueryOpts) ([]QuizSummaryRecord, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
