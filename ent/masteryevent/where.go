// Code generated by ent, DO NOT EDIT.

package masteryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kevinkeet/watershed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTopic, v))
}

// Delta applies equality check predicate on the "delta" field. It's identical to DeltaEQ.
func Delta(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldDelta, v))
}

// PointsAfter applies equality check predicate on the "points_after" field. It's identical to PointsAfterEQ.
func PointsAfter(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldPointsAfter, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSource, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldTopic, v))
}

// DeltaEQ applies the EQ predicate on the "delta" field.
func DeltaEQ(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldDelta, v))
}

// DeltaNEQ applies the NEQ predicate on the "delta" field.
func DeltaNEQ(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldDelta, v))
}

// DeltaIn applies the In predicate on the "delta" field.
func DeltaIn(vs ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldDelta, vs...))
}

// DeltaNotIn applies the NotIn predicate on the "delta" field.
func DeltaNotIn(vs ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldDelta, vs...))
}

// DeltaGT applies the GT predicate on the "delta" field.
func DeltaGT(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldDelta, v))
}

// DeltaGTE applies the GTE predicate on the "delta" field.
func DeltaGTE(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldDelta, v))
}

// DeltaLT applies the LT predicate on the "delta" field.
func DeltaLT(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldDelta, v))
}

// DeltaLTE applies the LTE predicate on the "delta" field.
func DeltaLTE(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldDelta, v))
}

// PointsAfterEQ applies the EQ predicate on the "points_after" field.
func PointsAfterEQ(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldPointsAfter, v))
}

// PointsAfterNEQ applies the NEQ predicate on the "points_after" field.
func PointsAfterNEQ(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldPointsAfter, v))
}

// PointsAfterIn applies the In predicate on the "points_after" field.
func PointsAfterIn(vs ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldPointsAfter, vs...))
}

// PointsAfterNotIn applies the NotIn predicate on the "points_after" field.
func PointsAfterNotIn(vs ...int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldPointsAfter, vs...))
}

// PointsAfterGT applies the GT predicate on the "points_after" field.
func PointsAfterGT(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldPointsAfter, v))
}

// PointsAfterGTE applies the GTE predicate on the "points_after" field.
func PointsAfterGTE(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldPointsAfter, v))
}

// PointsAfterLT applies the LT predicate on the "points_after" field.
func PointsAfterLT(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldPointsAfter, v))
}

// PointsAfterLTE applies the LTE predicate on the "points_after" field.
func PointsAfterLTE(v int) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldPointsAfter, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.FieldContainsFold(FieldSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryEvent) predicate.MasteryEvent {
	return predicate.MasteryEvent(sql.NotPredicates(p))
}
