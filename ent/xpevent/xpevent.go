// Code generated by ent, DO NOT EDIT.

package xpevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the xpevent type in the database.
	Label = "xp_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldActivity holds the string denoting the activity field in the database.
	FieldActivity = "activity"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldTotalAfter holds the string denoting the total_after field in the database.
	FieldTotalAfter = "total_after"
	// Table holds the table name of the xpevent in the database.
	Table = "xp_events"
)

// Columns holds all SQL columns for xpevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAmount,
	FieldActivity,
	FieldReason,
	FieldTotalAfter,
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
	// ActivityValidator is a validator for the "activity" field. It is called by the builders before save.
	ActivityValidator func(string) error
	// DefaultReason holds the default value on creation for the "reason" field.
	DefaultReason string
)

// OrderOption defines the ordering options for the XPEvent queries.
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

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByActivity orders the results by the activity field.
func ByActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivity, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByTotalAfter orders the results by the total_after field.
func ByTotalAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAfter, opts...).ToFunc()
}
