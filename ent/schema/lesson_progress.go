package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonProgress is the per-lesson progress record, keyed by lesson slug.
// One row per lesson the learner has touched; lessons never opened have no
// row and read back as the zero value.
type LessonProgress struct {
	ent.Schema
}

func (LessonProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			Unique().
			NotEmpty().
			Comment("Catalog lesson slug"),
		field.Bool("viewed_lesson").
			Default(false),
		field.Bool("viewed_summary").
			Default(false),
		field.Bool("quiz_attempted").
			Default(false),
		field.Int("score").
			Optional().
			Nillable().
			Comment("Latest quiz score 0-100; unset until a quiz is submitted"),
		field.Bool("passed").
			Optional().
			Nillable().
			Comment("Pass verdict pinned at submission time"),
		field.String("last_step").
			Default("").
			Comment("Last flow step reached: lesson, summary, quiz, result"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LessonProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slug").Unique(),
	}
}
