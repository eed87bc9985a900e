package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records a one-time achievement unlock.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("achievement_id").
			NotEmpty().
			Comment("Catalog identifier, e.g. first_case"),
		field.String("name").
			NotEmpty(),
		field.Int("xp_reward").
			Default(0),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("achievement_id"),
	}
}
