package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one coach call to a hosted model, kept for usage and
// cost reports and for `legacyready llm view`.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider"),
		field.String("model").Comment("Model ID reported by the backend"),
		field.String("purpose"),
		field.Int("input_tokens").Default(0),
		field.Int("output_tokens").Default(0),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.String("error_message").Default(""),
		field.Text("request_body").Default("").Comment("Plain-text transcript of the request"),
		field.Text("response_body").Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("model"),
	}
}
