// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kevinkeet/watershed/ent/achievementevent"
)

// AchievementEvent is the model entity for the AchievementEvent schema.
type AchievementEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Catalog identifier, e.g. first_case
	AchievementID string `json:"achievement_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// XpReward holds the value of the "xp_reward" field.
	XpReward     int `json:"xp_reward,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AchievementEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case achievementevent.FieldID, achievementevent.FieldSequence, achievementevent.FieldXpReward:
			values[i] = new(sql.NullInt64)
		case achievementevent.FieldAchievementID, achievementevent.FieldName:
			values[i] = new(sql.NullString)
		case achievementevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AchievementEvent fields.
func (_m *AchievementEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case achievementevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case achievementevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case achievementevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case achievementevent.FieldAchievementID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field achievement_id", values[i])
			} else if value.Valid {
				_m.AchievementID = value.String
			}
		case achievementevent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case achievementevent.FieldXpReward:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_reward", values[i])
			} else if value.Valid {
				_m.XpReward = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AchievementEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AchievementEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AchievementEvent.
// Note that you need to call AchievementEvent.Unwrap() before calling this method if this AchievementEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AchievementEvent) Update() *AchievementEventUpdateOne {
	return NewAchievementEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AchievementEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AchievementEvent) Unwrap() *AchievementEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AchievementEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AchievementEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AchievementEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("achievement_id=")
	builder.WriteString(_m.AchievementID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("xp_reward=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpReward))
	builder.WriteByte(')')
	return builder.String()
}

// AchievementEvents is a parsable slice of AchievementEvent.
type AchievementEvents []*AchievementEvent
