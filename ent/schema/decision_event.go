package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionEvent records one scored decision within a simulation session.
type DecisionEvent struct {
	ent.Schema
}

func (DecisionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DecisionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Int("step").
			Comment("1-based step number"),
		field.String("action").
			NotEmpty().
			Comment("Chosen choice text"),
		field.String("quality").
			NotEmpty().
			Comment("optimal, suboptimal, or poor"),
		field.Int("delta").
			Comment("Score delta awarded for this decision"),
	}
}

func (DecisionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quality"),
	}
}
