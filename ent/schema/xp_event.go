package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records XP awarded for a quiz attempt. The running total is the
// sum over all events; there is no mutable balance row to drift.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_slug").
			NotEmpty(),
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID of the quiz attempt that earned this award"),
		field.String("tier").
			NotEmpty().
			Comment("Performance tier ID the award was computed from"),
		field.Int("amount").
			NonNegative(),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_slug"),
		index.Fields("attempt_id"),
	}
}
