// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kevinkeet/watershed/ent/simulationevent"
)

// SimulationEvent is the model entity for the SimulationEvent schema.
type SimulationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a simulation session
	SessionID string `json:"session_id,omitempty"`
	// start, end, or abandon
	Action string `json:"action,omitempty"`
	// Selected scenario (on start/end)
	ScenarioID string `json:"scenario_id,omitempty"`
	// initial_management, overnight_call, inpatient_decision, discharge_planning
	ScenarioType string `json:"scenario_type,omitempty"`
	// Final score (on end only)
	Score int `json:"score,omitempty"`
	// Maximum achievable score (on end only)
	MaxScore int `json:"max_score,omitempty"`
	// Decision steps completed (on end only)
	Steps        int `json:"steps,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SimulationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case simulationevent.FieldID, simulationevent.FieldSequence, simulationevent.FieldScore, simulationevent.FieldMaxScore, simulationevent.FieldSteps:
			values[i] = new(sql.NullInt64)
		case simulationevent.FieldSessionID, simulationevent.FieldAction, simulationevent.FieldScenarioID, simulationevent.FieldScenarioType:
			values[i] = new(sql.NullString)
		case simulationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SimulationEvent fields.
func (_m *SimulationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case simulationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case simulationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case simulationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case simulationevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case simulationevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case simulationevent.FieldScenarioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_id", values[i])
			} else if value.Valid {
				_m.ScenarioID = value.String
			}
		case simulationevent.FieldScenarioType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_type", values[i])
			} else if value.Valid {
				_m.ScenarioType = value.String
			}
		case simulationevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case simulationevent.FieldMaxScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_score", values[i])
			} else if value.Valid {
				_m.MaxScore = int(value.Int64)
			}
		case simulationevent.FieldSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value.Valid {
				_m.Steps = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SimulationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SimulationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SimulationEvent.
// Note that you need to call SimulationEvent.Unwrap() before calling this method if this SimulationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SimulationEvent) Update() *SimulationEventUpdateOne {
	return NewSimulationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SimulationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SimulationEvent) Unwrap() *SimulationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SimulationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SimulationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SimulationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("scenario_id=")
	builder.WriteString(_m.ScenarioID)
	builder.WriteString(", ")
	builder.WriteString("scenario_type=")
	builder.WriteString(_m.ScenarioType)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("max_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScore))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteByte(')')
	return builder.String()
}

// SimulationEvents is a parsable slice of SimulationEvent.
type SimulationEvents []*SimulationEvent
