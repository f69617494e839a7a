package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Subject: "Biology",
			Sections: []SectionState{
				{Name: "Cell Structure", Topics: []string{"Organelles", "Membranes"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Subject != "Biology" {
		t.Errorf("data.subject = %q, want %q", snap.Data.Subject, "Biology")
	}
	if len(snap.Data.Sections) != 1 || snap.Data.Sections[0].Name != "Cell Structure" {
		t.Errorf("unexpected sections: %+v", snap.Data.Sections)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "groq",
			Model:        "llama-3.3-70b-versatile",
			Purpose:      "question-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      true,
			RequestBody:  "[user]\ngenerate a question\n",
			ResponseBody: "### Question 1: ...",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("input tokens = %d, want 102", events[0].InputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event")
	}
	if got.RequestBody == "" || got.ResponseBody == "" {
		t.Error("expected request/response bodies to round-trip")
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendEvent := func(purpose, model string, in, out int, latency int64) {
		t.Helper()
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "groq",
			Model:        model,
			Purpose:      purpose,
			InputTokens:  in,
			OutputTokens: out,
			LatencyMs:    latency,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	appendEvent("question-gen", "llama-3.3-70b-versatile", 100, 50, 100)
	appendEvent("question-gen", "llama-3.3-70b-versatile", 200, 60, 300)
	appendEvent("curriculum-gen", "llama-3.1-8b-instant", 500, 200, 400)

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d purposes, want 2", len(stats))
	}
	// Sorted alphabetically: curriculum-gen first.
	if stats[0].Purpose != "curriculum-gen" || stats[0].Calls != 1 {
		t.Errorf("unexpected first stat: %+v", stats[0])
	}
	if stats[1].Purpose != "question-gen" || stats[1].Calls != 2 {
		t.Errorf("unexpected second stat: %+v", stats[1])
	}
	if stats[1].InputTokens != 300 {
		t.Errorf("question-gen input tokens = %d, want 300", stats[1].InputTokens)
	}
	if stats[1].AvgLatencyMs != 200 {
		t.Errorf("question-gen avg latency = %d, want 200", stats[1].AvgLatencyMs)
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d models, want 2", len(usage))
	}
}

func TestQuizAndAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizEvent(ctx, QuizEventData{
		SessionID: "sess-1",
		Section:   "Cell Structure",
		Action:    "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	answers := []bool{true, true, false}
	for i, correct := range answers {
		chosen := "A"
		if !correct {
			chosen = "C"
		}
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:     "sess-1",
			Section:       "Cell Structure",
			Topic:         "Organelles",
			TopicIndex:    i,
			QuestionText:  "Which organelle produces ATP?",
			CorrectLetter: "A",
			ChosenLetter:  chosen,
			Correct:       correct,
			TimeMs:        1500,
		})
		if err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	err = repo.AppendQuizEvent(ctx, QuizEventData{
		SessionID:         "sess-1",
		Section:           "Cell Structure",
		Action:            "finish",
		QuestionsAnswered: 3,
		CorrectAnswers:    2,
		Grade:             "66.7%",
		DurationSecs:      45,
	})
	if err != nil {
		t.Fatalf("append finish: %v", err)
	}

	acc, err := repo.SectionAccuracy(ctx, "Cell Structure")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	want := 2.0 / 3.0
	if acc < want-0.001 || acc > want+0.001 {
		t.Errorf("accuracy = %f, want %f", acc, want)
	}

	// Unknown section has no answers.
	acc, err = repo.SectionAccuracy(ctx, "Thermodynamics")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %f, want 0", acc)
	}

	summaries, err := repo.QueryQuizSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if summaries[0].Grade != "66.7%" {
		t.Errorf("grade = %q, want %q", summaries[0].Grade, "66.7%")
	}
	if summaries[0].CorrectAnswers != 2 {
		t.Errorf("correct = %d, want 2", summaries[0].CorrectAnswers)
	}
}
