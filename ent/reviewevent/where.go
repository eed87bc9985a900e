// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kevinkeet/watershed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTopic, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldCorrect, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalDays, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldNextReview, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldTopic, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldCorrect, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldIntervalDays, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldNextReview, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.NotPredicates(p))
}
