package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a spaced-repetition review answer and the
// schedule it produced.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty(),
		field.Bool("correct").
			Comment("Whether the most recent answer was correct"),
		field.Int("interval_days").
			Comment("Computed interval until the next review"),
		field.Time("next_review").
			Comment("Computed next review date"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
	}
}
