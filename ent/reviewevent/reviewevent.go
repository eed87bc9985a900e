// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTopic,
	FieldCorrect,
	FieldIntervalDays,
	FieldNextReview,
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
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
)

// OrderOption defines the ordering options for the ReviewEvent queries.
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

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}
