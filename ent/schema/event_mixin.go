package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin is embedded by every append-only event table. Sequence comes
// from the store's shared counter, so it orders rows across tables.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").Unique().Immutable(),
		field.Time("timestamp").
			Default(func() time.Time { return time.Now().UTC() }).
			Immutable(),
	}
}

// The unique constraint already indexes sequence.
func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{index.Fields("timestamp")}
}
