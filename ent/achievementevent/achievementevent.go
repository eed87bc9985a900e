// Code generated by ent, DO NOT EDIT.

package achievementevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the achievementevent type in the database.
	Label = "achievement_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldAchievementID holds the string denoting the achievement_id field in the database.
	FieldAchievementID = "achievement_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldXpReward holds the string denoting the xp_reward field in the database.
	FieldXpReward = "xp_reward"
	// Table holds the table name of the achievementevent in the database.
	Table = "achievement_events"
)

// Columns holds all SQL columns for achievementevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldAchievementID,
	FieldName,
	FieldXpReward,
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
	// AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	AchievementIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultXpReward holds the default value on creation for the "xp_reward" field.
	DefaultXpReward int
)

// OrderOption defines the ordering options for the AchievementEvent queries.
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

// ByAchievementID orders the results by the achievement_id field.
func ByAchievementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAchievementID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByXpReward orders the results by the xp_reward field.
func ByXpReward(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpReward, opts...).ToFunc()
}
