// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kevinkeet/watershed/ent/masteryevent"
	"github.com/kevinkeet/watershed/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *MasteryEventUpdate) SetTopic(v string) *MasteryEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableTopic(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDelta sets the "delta" field.
func (_u *MasteryEventUpdate) SetDelta(v int) *MasteryEventUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableDelta(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *MasteryEventUpdate) AddDelta(v int) *MasteryEventUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// SetPointsAfter sets the "points_after" field.
func (_u *MasteryEventUpdate) SetPointsAfter(v int) *MasteryEventUpdate {
	_u.mutation.ResetPointsAfter()
	_u.mutation.SetPointsAfter(v)
	return _u
}

// SetNillablePointsAfter sets the "points_after" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillablePointsAfter(v *int) *MasteryEventUpdate {
	if v != nil {
		_u.SetPointsAfter(*v)
	}
	return _u
}

// AddPointsAfter adds value to the "points_after" field.
func (_u *MasteryEventUpdate) AddPointsAfter(v int) *MasteryEventUpdate {
	_u.mutation.AddPointsAfter(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *MasteryEventUpdate) SetSource(v string) *MasteryEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MasteryEventUpdate) SetNillableSource(v *string) *MasteryEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := masteryevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := masteryevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(masteryevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(masteryevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(masteryevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsAfter(); ok {
		_spec.SetField(masteryevent.FieldPointsAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAfter(); ok {
		_spec.AddField(masteryevent.FieldPointsAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(masteryevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetTopic sets the "topic" field.
func (_u *MasteryEventUpdateOne) SetTopic(v string) *MasteryEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableTopic(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDelta sets the "delta" field.
func (_u *MasteryEventUpdateOne) SetDelta(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableDelta(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *MasteryEventUpdateOne) AddDelta(v int) *MasteryEventUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// SetPointsAfter sets the "points_after" field.
func (_u *MasteryEventUpdateOne) SetPointsAfter(v int) *MasteryEventUpdateOne {
	_u.mutation.ResetPointsAfter()
	_u.mutation.SetPointsAfter(v)
	return _u
}

// SetNillablePointsAfter sets the "points_after" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillablePointsAfter(v *int) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetPointsAfter(*v)
	}
	return _u
}

// AddPointsAfter adds value to the "points_after" field.
func (_u *MasteryEventUpdateOne) AddPointsAfter(v int) *MasteryEventUpdateOne {
	_u.mutation.AddPointsAfter(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *MasteryEventUpdateOne) SetSource(v string) *MasteryEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MasteryEventUpdateOne) SetNillableSource(v *string) *MasteryEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the MasteryEventMutation object of the builder.
func (_u *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (_u *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryEvent entity.
func (_u *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryEventUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := masteryevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := masteryevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(masteryevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(masteryevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(masteryevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointsAfter(); ok {
		_spec.SetField(masteryevent.FieldPointsAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPointsAfter(); ok {
		_spec.AddField(masteryevent.FieldPointsAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(masteryevent.FieldSource, field.TypeString, value)
	}
	_node = &MasteryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
