package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records quiz session lifecycle events (start/finish/restart).
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("section").
			NotEmpty().
			Comment("Curriculum section the quiz ran against"),
		field.String("action").
			NotEmpty().
			Comment("start, finish, or restart"),
		field.Int("questions_answered").
			Default(0).
			Comment("Total questions answered (on finish only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on finish only)"),
		field.String("grade").
			Default("").
			Comment("Formatted final grade (on finish only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration in seconds (on finish only)"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("section"),
		index.Fields("action"),
	}
}
