// Code generated by ent, DO NOT EDIT.

package decisionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kevinkeet/watershed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldStep, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldAction, v))
}

// Quality applies equality check predicate on the "quality" field. It's identical to QualityEQ.
func Quality(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldQuality, v))
}

// Delta applies equality check predicate on the "delta" field. It's identical to DeltaEQ.
func Delta(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDelta, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldStep, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldAction, v))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldQuality, vs...))
}

// QualityGT applies the GT predicate on the "quality" field.
func QualityGT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldQuality, v))
}

// QualityGTE applies the GTE predicate on the "quality" field.
func QualityGTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldQuality, v))
}

// QualityLT applies the LT predicate on the "quality" field.
func QualityLT(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldQuality, v))
}

// QualityLTE applies the LTE predicate on the "quality" field.
func QualityLTE(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldQuality, v))
}

// QualityContains applies the Contains predicate on the "quality" field.
func QualityContains(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContains(FieldQuality, v))
}

// QualityHasPrefix applies the HasPrefix predicate on the "quality" field.
func QualityHasPrefix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasPrefix(FieldQuality, v))
}

// QualityHasSuffix applies the HasSuffix predicate on the "quality" field.
func QualityHasSuffix(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldHasSuffix(FieldQuality, v))
}

// QualityEqualFold applies the EqualFold predicate on the "quality" field.
func QualityEqualFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEqualFold(FieldQuality, v))
}

// QualityContainsFold applies the ContainsFold predicate on the "quality" field.
func QualityContainsFold(v string) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldContainsFold(FieldQuality, v))
}

// DeltaEQ applies the EQ predicate on the "delta" field.
func DeltaEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldEQ(FieldDelta, v))
}

// DeltaNEQ applies the NEQ predicate on the "delta" field.
func DeltaNEQ(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNEQ(FieldDelta, v))
}

// DeltaIn applies the In predicate on the "delta" field.
func DeltaIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldIn(FieldDelta, vs...))
}

// DeltaNotIn applies the NotIn predicate on the "delta" field.
func DeltaNotIn(vs ...int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldNotIn(FieldDelta, vs...))
}

// DeltaGT applies the GT predicate on the "delta" field.
func DeltaGT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGT(FieldDelta, v))
}

// DeltaGTE applies the GTE predicate on the "delta" field.
func DeltaGTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldGTE(FieldDelta, v))
}

// DeltaLT applies the LT predicate on the "delta" field.
func DeltaLT(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLT(FieldDelta, v))
}

// DeltaLTE applies the LTE predicate on the "delta" field.
func DeltaLTE(v int) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.FieldLTE(FieldDelta, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DecisionEvent) predicate.DecisionEvent {
	return predicate.DecisionEvent(sql.NotPredicates(p))
}
