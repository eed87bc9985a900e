// Code generated by ent, DO NOT EDIT.

package simulationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the simulationevent type in the database.
	Label = "simulation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldScenarioID holds the string denoting the scenario_id field in the database.
	FieldScenarioID = "scenario_id"
	// FieldScenarioType holds the string denoting the scenario_type field in the database.
	FieldScenarioType = "scenario_type"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldMaxScore holds the string denoting the max_score field in the database.
	FieldMaxScore = "max_score"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// Table holds the table name of the simulationevent in the database.
	Table = "simulation_events"
)

// Columns holds all SQL columns for simulationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldScenarioID,
	FieldScenarioType,
	FieldScore,
	FieldMaxScore,
	FieldSteps,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultScenarioID holds the default value on creation for the "scenario_id" field.
	DefaultScenarioID string
	// DefaultScenarioType holds the default value on creation for the "scenario_type" field.
	DefaultScenarioType string
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultMaxScore holds the default value on creation for the "max_score" field.
	DefaultMaxScore int
	// DefaultSteps holds the default value on creation for the "steps" field.
	DefaultSteps int
)

// OrderOption defines the ordering options for the SimulationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByScenarioID orders the results by the scenario_id field.
func ByScenarioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioID, opts...).ToFunc()
}

// ByScenarioType orders the results by the scenario_type field.
func ByScenarioType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioType, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByMaxScore orders the results by the max_score field.
func ByMaxScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScore, opts...).ToFunc()
}

// BySteps orders the results by the steps field.
func BySteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSteps, opts...).ToFunc()
}
