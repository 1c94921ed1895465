package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent records a learner's movement through a module.
type ProgressEvent struct {
	ent.Schema
}

func (ProgressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("respondent_id").
			NotEmpty(),
		field.String("module_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, lesson or complete"),
		field.Int("lessons_completed").
			Default(0).
			NonNegative().
			Comment("Lessons done after this event"),
	}
}

func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("respondent_id", "module_id"),
	}
}
