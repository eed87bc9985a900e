// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kevinkeet/watershed/ent/simulationevent"
)

// SimulationEventCreate is the builder for creating a SimulationEvent entity.
type SimulationEventCreate struct {
	config
	mutation *SimulationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SimulationEventCreate) SetSequence(v int64) *SimulationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SimulationEventCreate) SetTimestamp(v time.Time) *SimulationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SimulationEventCreate) SetNillableTimestamp(v *time.Time) *SimulationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SimulationEventCreate) SetSessionID(v string) *SimulationEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *SimulationEventCreate) SetAction(v string) *SimulationEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetScenarioID sets the "scenario_id" field.
func (_c *SimulationEventCreate) SetScenarioID(v string) *SimulationEventCreate {
	_c.mutation.SetScenarioID(v)
	return _c
}

// SetNillableScenarioID sets the "scenario_id" field if the given value is not nil.
func (_c *SimulationEventCreate) SetNillableScenarioID(v *string) *SimulationEventCreate {
	if v != nil {
		_c.SetScenarioID(*v)
	}
	return _c
}

// SetScenarioType sets the "scenario_type" field.
func (_c *SimulationEventCreate) SetScenarioType(v string) *SimulationEventCreate {
	_c.mutation.SetScenarioType(v)
	return _c
}

// SetNillableScenarioType sets the "scenario_type" field if the given value is not nil.
func (_c *SimulationEventCreate) SetNillableScenarioType(v *string) *SimulationEventCreate {
	if v != nil {
		_c.SetScenarioType(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *SimulationEventCreate) SetScore(v int) *SimulationEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SimulationEventCreate) SetNillableScore(v *int) *SimulationEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *SimulationEventCreate) SetMaxScore(v int) *SimulationEventCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_c *SimulationEventCreate) SetNillableMaxScore(v *int) *SimulationEventCreate {
	if v != nil {
		_c.SetMaxScore(*v)
	}
	return _c
}

// SetSteps sets the "steps" field.
func (_c *SimulationEventCreate) SetSteps(v int) *SimulationEventCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetNillableSteps sets the "steps" field if the given value is not nil.
func (_c *SimulationEventCreate) SetNillableSteps(v *int) *SimulationEventCreate {
	if v != nil {
		_c.SetSteps(*v)
	}
	return _c
}

// Mutation returns the SimulationEventMutation object of the builder.
func (_c *SimulationEventCreate) Mutation() *SimulationEventMutation {
	return _c.mutation
}

// Save creates the SimulationEvent in the database.
func (_c *SimulationEventCreate) Save(ctx context.Context) (*SimulationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SimulationEventCreate) SaveX(ctx context.Context) *SimulationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SimulationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SimulationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SimulationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := simulationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		v := simulationevent.DefaultScenarioID
		_c.mutation.SetScenarioID(v)
	}
	if _, ok := _c.mutation.ScenarioType(); !ok {
		v := simulationevent.DefaultScenarioType
		_c.mutation.SetScenarioType(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := simulationevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		v := simulationevent.DefaultMaxScore
		_c.mutation.SetMaxScore(v)
	}
	if _, ok := _c.mutation.Steps(); !ok {
		v := simulationevent.DefaultSteps
		_c.mutation.SetSteps(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SimulationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SimulationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SimulationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SimulationEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := simulationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SimulationEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "SimulationEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := simulationevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SimulationEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioID(); !ok {
		return &ValidationError{Name: "scenario_id", err: errors.New(`ent: missing required field "SimulationEvent.scenario_id"`)}
	}
	if _, ok := _c.mutation.ScenarioType(); !ok {
		return &ValidationError{Name: "scenario_type", err: errors.New(`ent: missing required field "SimulationEvent.scenario_type"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SimulationEvent.score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "SimulationEvent.max_score"`)}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "SimulationEvent.steps"`)}
	}
	return nil
}

func (_c *SimulationEventCreate) sqlSave(ctx context.Context) (*SimulationEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SimulationEventCreate) createSpec() (*SimulationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SimulationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(simulationevent.Table, sqlgraph.NewFieldSpec(simulationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(simulationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(simulationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(simulationevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(simulationevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.ScenarioID(); ok {
		_spec.SetField(simulationevent.FieldScenarioID, field.TypeString, value)
		_node.ScenarioID = value
	}
	if value, ok := _c.mutation.ScenarioType(); ok {
		_spec.SetField(simulationevent.FieldScenarioType, field.TypeString, value)
		_node.ScenarioType = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(simulationevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(simulationevent.FieldMaxScore, field.TypeInt, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(simulationevent.FieldSteps, field.TypeInt, value)
		_node.Steps = value
	}
	return _node, _spec
}

// SimulationEventCreateBulk is the builder for creating many SimulationEvent entities in bulk.
type SimulationEventCreateBulk struct {
	config
	err      error
	builders []*SimulationEventCreate
}

// Save creates the SimulationEvent entities in the database.
func (_c *SimulationEventCreateBulk) Save(ctx context.Context) ([]*SimulationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SimulationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SimulationEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SimulationEventCreateBulk) SaveX(ctx context.Context) []*SimulationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SimulationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SimulationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
