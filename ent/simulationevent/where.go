// Code generated by ent, DO NOT EDIT.

package simulationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/kevinkeet/watershed/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldAction, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioType applies equality check predicate on the "scenario_type" field. It's identical to ScenarioTypeEQ.
func ScenarioType(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldScenarioType, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldScore, v))
}

// MaxScore applies equality check predicate on the "max_score" field. It's identical to MaxScoreEQ.
func MaxScore(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldMaxScore, v))
}

// Steps applies equality check predicate on the "steps" field. It's identical to StepsEQ.
func Steps(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldSteps, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldContainsFold(FieldAction, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldScenarioID, v))
}

// ScenarioIDContains applies the Contains predicate on the "scenario_id" field.
func ScenarioIDContains(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldContains(FieldScenarioID, v))
}

// ScenarioIDHasPrefix applies the HasPrefix predicate on the "scenario_id" field.
func ScenarioIDHasPrefix(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldHasPrefix(FieldScenarioID, v))
}

// ScenarioIDHasSuffix applies the HasSuffix predicate on the "scenario_id" field.
func ScenarioIDHasSuffix(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldHasSuffix(FieldScenarioID, v))
}

// ScenarioIDEqualFold applies the EqualFold predicate on the "scenario_id" field.
func ScenarioIDEqualFold(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEqualFold(FieldScenarioID, v))
}

// ScenarioIDContainsFold applies the ContainsFold predicate on the "scenario_id" field.
func ScenarioIDContainsFold(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldContainsFold(FieldScenarioID, v))
}

// ScenarioTypeEQ applies the EQ predicate on the "scenario_type" field.
func ScenarioTypeEQ(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldScenarioType, v))
}

// ScenarioTypeNEQ applies the NEQ predicate on the "scenario_type" field.
func ScenarioTypeNEQ(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldScenarioType, v))
}

// ScenarioTypeIn applies the In predicate on the "scenario_type" field.
func ScenarioTypeIn(vs ...string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldScenarioType, vs...))
}

// ScenarioTypeNotIn applies the NotIn predicate on the "scenario_type" field.
func ScenarioTypeNotIn(vs ...string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldScenarioType, vs...))
}

// ScenarioTypeGT applies the GT predicate on the "scenario_type" field.
func ScenarioTypeGT(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldScenarioType, v))
}

// ScenarioTypeGTE applies the GTE predicate on the "scenario_type" field.
func ScenarioTypeGTE(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldScenarioType, v))
}

// ScenarioTypeLT applies the LT predicate on the "scenario_type" field.
func ScenarioTypeLT(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldScenarioType, v))
}

// ScenarioTypeLTE applies the LTE predicate on the "scenario_type" field.
func ScenarioTypeLTE(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldScenarioType, v))
}

// ScenarioTypeContains applies the Contains predicate on the "scenario_type" field.
func ScenarioTypeContains(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldContains(FieldScenarioType, v))
}

// ScenarioTypeHasPrefix applies the HasPrefix predicate on the "scenario_type" field.
func ScenarioTypeHasPrefix(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldHasPrefix(FieldScenarioType, v))
}

// ScenarioTypeHasSuffix applies the HasSuffix predicate on the "scenario_type" field.
func ScenarioTypeHasSuffix(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldHasSuffix(FieldScenarioType, v))
}

// ScenarioTypeEqualFold applies the EqualFold predicate on the "scenario_type" field.
func ScenarioTypeEqualFold(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEqualFold(FieldScenarioType, v))
}

// ScenarioTypeContainsFold applies the ContainsFold predicate on the "scenario_type" field.
func ScenarioTypeContainsFold(v string) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldContainsFold(FieldScenarioType, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldScore, v))
}

// MaxScoreEQ applies the EQ predicate on the "max_score" field.
func MaxScoreEQ(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldMaxScore, v))
}

// MaxScoreNEQ applies the NEQ predicate on the "max_score" field.
func MaxScoreNEQ(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldMaxScore, v))
}

// MaxScoreIn applies the In predicate on the "max_score" field.
func MaxScoreIn(vs ...int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldMaxScore, vs...))
}

// MaxScoreNotIn applies the NotIn predicate on the "max_score" field.
func MaxScoreNotIn(vs ...int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldMaxScore, vs...))
}

// MaxScoreGT applies the GT predicate on the "max_score" field.
func MaxScoreGT(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldMaxScore, v))
}

// MaxScoreGTE applies the GTE predicate on the "max_score" field.
func MaxScoreGTE(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldMaxScore, v))
}

// MaxScoreLT applies the LT predicate on the "max_score" field.
func MaxScoreLT(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldMaxScore, v))
}

// MaxScoreLTE applies the LTE predicate on the "max_score" field.
func MaxScoreLTE(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldMaxScore, v))
}

// StepsEQ applies the EQ predicate on the "steps" field.
func StepsEQ(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldEQ(FieldSteps, v))
}

// StepsNEQ applies the NEQ predicate on the "steps" field.
func StepsNEQ(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNEQ(FieldSteps, v))
}

// StepsIn applies the In predicate on the "steps" field.
func StepsIn(vs ...int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldIn(FieldSteps, vs...))
}

// StepsNotIn applies the NotIn predicate on the "steps" field.
func StepsNotIn(vs ...int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldNotIn(FieldSteps, vs...))
}

// StepsGT applies the GT predicate on the "steps" field.
func StepsGT(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGT(FieldSteps, v))
}

// StepsGTE applies the GTE predicate on the "steps" field.
func StepsGTE(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldGTE(FieldSteps, v))
}

// StepsLT applies the LT predicate on the "steps" field.
func StepsLT(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLT(FieldSteps, v))
}

// StepsLTE applies the LTE predicate on the "steps" field.
func StepsLTE(v int) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.FieldLTE(FieldSteps, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SimulationEvent) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SimulationEvent) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SimulationEvent) predicate.SimulationEvent {
	return predicate.SimulationEvent(sql.NotPredicates(p))
}
