// Code generated by ent, DO NOT EDIT.

package achievementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kevinkeet/watershed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// AchievementID applies equality check predicate on the "achievement_id" field. It's identical to AchievementIDEQ.
func AchievementID(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldAchievementID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldName, v))
}

// XpReward applies equality check predicate on the "xp_reward" field. It's identical to XpRewardEQ.
func XpReward(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldXpReward, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldTimestamp, v))
}

// AchievementIDEQ applies the EQ predicate on the "achievement_id" field.
func AchievementIDEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldAchievementID, v))
}

// AchievementIDNEQ applies the NEQ predicate on the "achievement_id" field.
func AchievementIDNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldAchievementID, v))
}

// AchievementIDIn applies the In predicate on the "achievement_id" field.
func AchievementIDIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldAchievementID, vs...))
}

// AchievementIDNotIn applies the NotIn predicate on the "achievement_id" field.
func AchievementIDNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldAchievementID, vs...))
}

// AchievementIDGT applies the GT predicate on the "achievement_id" field.
func AchievementIDGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldAchievementID, v))
}

// AchievementIDGTE applies the GTE predicate on the "achievement_id" field.
func AchievementIDGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldAchievementID, v))
}

// AchievementIDLT applies the LT predicate on the "achievement_id" field.
func AchievementIDLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldAchievementID, v))
}

// AchievementIDLTE applies the LTE predicate on the "achievement_id" field.
func AchievementIDLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldAchievementID, v))
}

// AchievementIDContains applies the Contains predicate on the "achievement_id" field.
func AchievementIDContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldAchievementID, v))
}

// AchievementIDHasPrefix applies the HasPrefix predicate on the "achievement_id" field.
func AchievementIDHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldAchievementID, v))
}

// AchievementIDHasSuffix applies the HasSuffix predicate on the "achievement_id" field.
func AchievementIDHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldAchievementID, v))
}

// AchievementIDEqualFold applies the EqualFold predicate on the "achievement_id" field.
func AchievementIDEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldAchievementID, v))
}

// AchievementIDContainsFold applies the ContainsFold predicate on the "achievement_id" field.
func AchievementIDContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldAchievementID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldContainsFold(FieldName, v))
}

// XpRewardEQ applies the EQ predicate on the "xp_reward" field.
func XpRewardEQ(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldEQ(FieldXpReward, v))
}

// XpRewardNEQ applies the NEQ predicate on the "xp_reward" field.
func XpRewardNEQ(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNEQ(FieldXpReward, v))
}

// XpRewardIn applies the In predicate on the "xp_reward" field.
func XpRewardIn(vs ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldIn(FieldXpReward, vs...))
}

// XpRewardNotIn applies the NotIn predicate on the "xp_reward" field.
func XpRewardNotIn(vs ...int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldNotIn(FieldXpReward, vs...))
}

// XpRewardGT applies the GT predicate on the "xp_reward" field.
func XpRewardGT(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGT(FieldXpReward, v))
}

// XpRewardGTE applies the GTE predicate on the "xp_reward" field.
func XpRewardGTE(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldGTE(FieldXpReward, v))
}

// XpRewardLT applies the LT predicate on the "xp_reward" field.
func XpRewardLT(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLT(FieldXpReward, v))
}

// XpRewardLTE applies the LTE predicate on the "xp_reward" field.
func XpRewardLTE(v int) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.FieldLTE(FieldXpReward, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AchievementEvent) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AchievementEvent) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AchievementEvent) predicate.AchievementEvent {
	return predicate.AchievementEvent(sql.NotPredicates(p))
}
