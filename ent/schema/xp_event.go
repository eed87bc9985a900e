package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records a single XP award and the activity that triggered it.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("amount").
			Comment("XP awarded by this event"),
		field.String("activity").
			NotEmpty().
			Comment("Activity type: quiz, activity, history, case, simulation, daily-login"),
		field.String("reason").
			Default("").
			Comment("Human-readable cause"),
		field.Int("total_after").
			Comment("Cumulative XP after this award"),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activity"),
	}
}
