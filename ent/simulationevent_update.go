// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kevinkeet/watershed/ent/predicate"
	"github.com/kevinkeet/watershed/ent/simulationevent"
)

// SimulationEventUpdate is the builder for updating SimulationEvent entities.
type SimulationEventUpdate struct {
	config
	hooks    []Hook
	mutation *SimulationEventMutation
}

// Where appends a list predicates to the SimulationEventUpdate builder.
func (_u *SimulationEventUpdate) Where(ps ...predicate.SimulationEvent) *SimulationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SimulationEventUpdate) SetSessionID(v string) *SimulationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SimulationEventUpdate) SetNillableSessionID(v *string) *SimulationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SimulationEventUpdate) SetAction(v string) *SimulationEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SimulationEventUpdate) SetNillableAction(v *string) *SimulationEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *SimulationEventUpdate) SetScenarioID(v string) *SimulationEventUpdate {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *SimulationEventUpdate) SetNillableScenarioID(v *string) *SimulationEventUpdate {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetScenarioType sets the "scenario_type" field.
func (_u *SimulationEventUpdate) SetScenarioType(v string) *SimulationEventUpdate {
	_u.mutation.SetScenarioType(v)
	return _u
}

// SetNillableScenarioType sets the "scenario_type" field if the given value is not nil.
func (_u *SimulationEventUpdate) SetNillableScenarioType(v *string) *SimulationEventUpdate {
	if v != nil {
		_u.SetScenarioType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SimulationEventUpdate) SetScore(v int) *SimulationEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SimulationEventUpdate) SetNillableScore(v *int) *SimulationEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SimulationEventUpdate) AddScore(v int) *SimulationEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SimulationEventUpdate) SetMaxScore(v int) *SimulationEventUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SimulationEventUpdate) SetNillableMaxScore(v *int) *SimulationEventUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SimulationEventUpdate) AddMaxScore(v int) *SimulationEventUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *SimulationEventUpdate) SetSteps(v int) *SimulationEventUpdate {
	_u.mutation.ResetSteps()
	_u.mutation.SetSteps(v)
	return _u
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_u *SimulationEventUpdate) SetNillableSteps(v *int) *SimulationEventUpdate {
	if v != nil {
		_u.SetSteps(*v)
	}
	return _u
}

// AddSteps adds value to the "steps" field.
func (_u *SimulationEventUpdate) AddSteps(v int) *SimulationEventUpdate {
	_u.mutation.AddSteps(v)
	return _u
}

// Mutation returns the SimulationEventMutation object of the builder.
func (_u *SimulationEventUpdate) Mutation() *SimulationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SimulationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SimulationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SimulationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SimulationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SimulationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := simulationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SimulationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := simulationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SimulationEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SimulationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(simulationevent.Table, simulationevent.Columns, sqlgraph.NewFieldSpec(simulationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(simulationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(simulationevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(simulationevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioType(); ok {
		_spec.SetField(simulationevent.FieldScenarioType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(simulationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(simulationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(simulationevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(simulationevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(simulationevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSteps(); ok {
		_spec.AddField(simulationevent.FieldSteps, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{simulationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SimulationEventUpdateOne is the builder for updating a single SimulationEvent entity.
type SimulationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SimulationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SimulationEventUpdateOne) SetSessionID(v string) *SimulationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SimulationEventUpdateOne) SetNillableSessionID(v *string) *SimulationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SimulationEventUpdateOne) SetAction(v string) *SimulationEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SimulationEventUpdateOne) SetNillableAction(v *string) *SimulationEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScenarioID sets the "scenario_id" field.
func (_u *SimulationEventUpdateOne) SetScenarioID(v string) *SimulationEventUpdateOne {
	_u.mutation.SetScenarioID(v)
	return _u
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_u *SimulationEventUpdateOne) SetNillableScenarioID(v *string) *SimulationEventUpdateOne {
	if v != nil {
		_u.SetScenarioID(*v)
	}
	return _u
}

// SetScenarioType sets the "scenario_type" field.
func (_u *SimulationEventUpdateOne) SetScenarioType(v string) *SimulationEventUpdateOne {
	_u.mutation.SetScenarioType(v)
	return _u
}

// SetNillableScenarioType sets the "scenario_type" field if the given value is not nil.
func (_u *SimulationEventUpdateOne) SetNillableScenarioType(v *string) *SimulationEventUpdateOne {
	if v != nil {
		_u.SetScenarioType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SimulationEventUpdateOne) SetScore(v int) *SimulationEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SimulationEventUpdateOne) SetNillableScore(v *int) *SimulationEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SimulationEventUpdateOne) AddScore(v int) *SimulationEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SimulationEventUpdateOne) SetMaxScore(v int) *SimulationEventUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SimulationEventUpdateOne) SetNillableMaxScore(v *int) *SimulationEventUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SimulationEventUpdateOne) AddMaxScore(v int) *SimulationEventUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetSteps sets the "steps" field.
func (_u *SimulationEventUpdateOne) SetSteps(v int) *SimulationEventUpdateOne {
	_u.mutation.ResetSteps()
	_u.mutation.SetSteps(v)
	return _u
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_u *SimulationEventUpdateOne) SetNillableSteps(v *int) *SimulationEventUpdateOne {
	if v != nil {
		_u.SetSteps(*v)
	}
	return _u
}

// AddSteps adds value to the "steps" field.
func (_u *SimulationEventUpdateOne) AddSteps(v int) *SimulationEventUpdateOne {
	_u.mutation.AddSteps(v)
	return _u
}

// Mutation returns the SimulationEventMutation object of the builder.
func (_u *SimulationEventUpdateOne) Mutation() *SimulationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SimulationEventUpdate builder.
func (_u *SimulationEventUpdateOne) Where(ps ...predicate.SimulationEvent) *SimulationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SimulationEventUpdateOne) Select(field string, fields ...string) *SimulationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SimulationEvent entity.
func (_u *SimulationEventUpdateOne) Save(ctx context.Context) (*SimulationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SimulationEventUpdateOne) SaveX(ctx context.Context) *SimulationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SimulationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SimulationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SimulationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := simulationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SimulationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := simulationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SimulationEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SimulationEventUpdateOne) sqlSave(ctx context.Context) (_node *SimulationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(simulationevent.Table, simulationevent.Columns, sqlgraph.NewFieldSpec(simulationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SimulationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, simulationevent.FieldID)
		for _, f := range fields {
			if !simulationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != simulationevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(simulationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(simulationevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioID(); ok {
		_spec.SetField(simulationevent.FieldScenarioID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioType(); ok {
		_spec.SetField(simulationevent.FieldScenarioType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(simulationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(simulationevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(simulationevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(simulationevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(simulationevent.FieldSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSteps(); ok {
		_spec.AddField(simulationevent.FieldSteps, field.TypeInt, value)
	}
	_node = &SimulationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{simulationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
