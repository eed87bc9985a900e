package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SimulationEvent records simulation session lifecycle events (start/end/abandon).
type SimulationEvent struct {
	ent.Schema
}

func (SimulationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SimulationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a simulation session"),
		field.String("action").
			NotEmpty().
			Comment("start, end, or abandon"),
		field.String("scenario_id").
			Default("").
			Comment("Selected scenario (on start/end)"),
		field.String("scenario_type").
			Default("").
			Comment("initial_management, overnight_call, inpatient_decision, discharge_planning"),
		field.Int("score").
			Default(0).
			Comment("Final score (on end only)"),
		field.Int("max_score").
			Default(0).
			Comment("Maximum achievable score (on end only)"),
		field.Int("steps").
			Default(0).
			Comment("Decision steps completed (on end only)"),
	}
}

func (SimulationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
