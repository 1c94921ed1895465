package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records a completed readiness assessment.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("result_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID identifying this result"),
		field.String("respondent_id").
			NotEmpty().
			Comment("Employee who took the assessment"),
		field.Int("score").
			Range(0, 100).
			Comment("Readiness score"),
		field.JSON("modules", []string{}).
			Comment("Assigned module IDs in order"),
		field.JSON("answers", map[string]string{}).
			Comment("Question ID to selected option value"),
		field.String("bank_version").
			Default("").
			Comment("Question bank the answers were scored against"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("respondent_id"),
	}
}
