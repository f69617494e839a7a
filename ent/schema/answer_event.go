package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a quiz session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to QuizEvent"),
		field.String("section").
			NotEmpty().
			Comment("Curriculum section the quiz ran against"),
		field.String("topic").
			NotEmpty().
			Comment("Ladder topic the question targeted"),
		field.Int("topic_index").
			Comment("Position of the topic on the ladder"),
		field.String("question_text").
			NotEmpty().
			Comment("The question stem shown"),
		field.String("correct_letter").
			NotEmpty().
			Comment("Correct option letter A-D"),
		field.String("chosen_letter").
			NotEmpty().
			Comment("Letter the learner picked"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int64("time_ms").
			Default(0).
			Comment("Milliseconds from display to lock-in"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("section"),
		index.Fields("correct"),
	}
}
