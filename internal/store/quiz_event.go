package store

import (
	"context"
	"fmt"

	"github.com/abhisek/studiq/ent"
	"github.com/abhisek/studiq/ent/answerevent"
	"github.com/abhisek/studiq/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSection(data.Section).
		SetAction(data.Action).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetGrade(data.Grade).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSection(data.Section).
		SetTopic(data.Topic).
		SetTopicIndex(data.TopicIndex).
		SetQuestionText(data.QuestionText).
		SetCorrectLetter(data.CorrectLetter).
		SetChosenLetter(data.ChosenLetter).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SectionAccuracy(ctx context.Context, section string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Section(section)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query section accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) QueryQuizSummaries(ctx context.Context, opts QueryOpts) ([]QuizSummaryRecord, error) {
	q := r.client.QuizEvent.Query().
		Where(quizevent.Action("finish")).
		Order(ent.Desc(quizevent.FieldSequence))

	if !opts.From.IsZero() {
		q = q.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(quizevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz summaries: %w", err)
	}

	records := make([]QuizSummaryRecord, 0, len(events))
	for _, e := range events {
		records = append(records, QuizSummaryRecord{
			SessionID:         e.SessionID,
			Section:           e.Section,
			Timestamp:         e.Timestamp,
			QuestionsAnswered: e.QuestionsAnswered,
			CorrectAnswers:    e.CorrectAnswers,
			Grade:             e.Grade,
			DurationSecs:      e.DurationSecs,
		})
	}
	return records, nil
}
