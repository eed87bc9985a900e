// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kevinkeet/watershed/ent/decisionevent"
	"github.com/kevinkeet/watershed/ent/predicate"
)

// DecisionEventUpdate is the builder for updating DecisionEvent entities.
type DecisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionEventMutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdate) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DecisionEventUpdate) SetSessionID(v string) *DecisionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableSessionID(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *DecisionEventUpdate) SetStep(v int) *DecisionEventUpdate {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableStep(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *DecisionEventUpdate) AddStep(v int) *DecisionEventUpdate {
	_u.mutation.AddStep(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *DecisionEventUpdate) SetAction(v string) *DecisionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableAction(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *DecisionEventUpdate) SetQuality(v string) *DecisionEventUpdate {
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableQuality(v *string) *DecisionEventUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// SetDelta sets the "delta" field.
func (_u *DecisionEventUpdate) SetDelta(v int) *DecisionEventUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *DecisionEventUpdate) SetNillableDelta(v *int) *DecisionEventUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *DecisionEventUpdate) AddDelta(v int) *DecisionEventUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdate) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := decisionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := decisionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quality(); ok {
		if err := decisionevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.quality": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(decisionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(decisionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(decisionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(decisionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(decisionevent.FieldQuality, field.TypeString, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(decisionevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(decisionevent.FieldDelta, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionEventUpdateOne is the builder for updating a single DecisionEvent entity.
type DecisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DecisionEventUpdateOne) SetSessionID(v string) *DecisionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableSessionID(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *DecisionEventUpdateOne) SetStep(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableStep(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *DecisionEventUpdateOne) AddStep(v int) *DecisionEventUpdateOne {
	_u.mutation.AddStep(v)
	return _u
}

// SetAction sets the "action" field.
func (_u *DecisionEventUpdateOne) SetAction(v string) *DecisionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableAction(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *DecisionEventUpdateOne) SetQuality(v string) *DecisionEventUpdateOne {
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableQuality(v *string) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// SetDelta sets the "delta" field.
func (_u *DecisionEventUpdateOne) SetDelta(v int) *DecisionEventUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *DecisionEventUpdateOne) SetNillableDelta(v *int) *DecisionEventUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *DecisionEventUpdateOne) AddDelta(v int) *DecisionEventUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// Mutation returns the DecisionEventMutation object of the builder.
func (_u *DecisionEventUpdateOne) Mutation() *DecisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionEventUpdate builder.
func (_u *DecisionEventUpdateOne) Where(ps ...predicate.DecisionEvent) *DecisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionEventUpdateOne) Select(field string, fields ...string) *DecisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionEvent entity.
func (_u *DecisionEventUpdateOne) Save(ctx context.Context) (*DecisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) SaveX(ctx context.Context) *DecisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := decisionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := decisionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quality(); ok {
		if err := decisionevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "DecisionEvent.quality": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionEventUpdateOne) sqlSave(ctx context.Context) (_node *DecisionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decisionevent.Table, decisionevent.Columns, sqlgraph.NewFieldSpec(decisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionevent.FieldID)
		for _, f := range fields {
			if !decisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionevent.FieldID {
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
		_spec.SetField(decisionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(decisionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(decisionevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(decisionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(decisionevent.FieldQuality, field.TypeString, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(decisionevent.FieldDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(decisionevent.FieldDelta, field.TypeInt, value)
	}
	_node = &DecisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
