package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a topic mastery point change.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Comment("Curriculum topic name"),
		field.Int("delta").
			Comment("Points added (never negative)"),
		field.Int("points_after").
			Comment("Cumulative points after this change"),
		field.String("source").
			NotEmpty().
			Comment("chapter, podcast, article, quiz, simulation"),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
	}
}
