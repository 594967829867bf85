package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one quiz submission, full or partial.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// AnswerSummary is the serialized form of a single answer for persistence.
type AnswerSummary struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
	TimeMs     int64  `json:"time_ms"`
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_slug").
			NotEmpty().
			Comment("Catalog lesson slug"),
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping this attempt's quiz and XP events"),
		field.Int("score").
			Comment("Rounded percentage 0-100"),
		field.Int("total_questions").
			Comment("Questions counted toward the score; equals answered on early exit"),
		field.Int("correct_answers"),
		field.Int("hearts_left").
			Default(0),
		field.Int("best_streak").
			Default(0),
		field.Int("time_spent_secs").
			Default(0),
		field.Bool("exhausted").
			Default(false).
			Comment("Attempt ended by running out of hearts"),
		field.Bool("passed"),
		field.JSON("answers", []AnswerSummary{}).
			Optional(),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_slug"),
		index.Fields("attempt_id"),
	}
}
