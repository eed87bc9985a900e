// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kevinkeet/watershed/ent/achievementevent"
	"github.com/kevinkeet/watershed/ent/predicate"
)

// AchievementEventDelete is the builder for deleting a AchievementEvent entity.
type AchievementEventDelete struct {
	config
	hooks    []Hook
	mutation *AchievementEventMutation
}

// Where appends a list predicates to the AchievementEventDelete builder.
func (_d *AchievementEventDelete) Where(ps ...predicate.AchievementEvent) *AchievementEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AchievementEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AchievementEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AchievementEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(achievementevent.Table, sqlgraph.NewFieldSpec(achievementevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AchievementEventDeleteOne is the builder for deleting a single AchievementEvent entity.
type AchievementEventDeleteOne struct {
	_d *AchievementEventDelete
}

// Where appends a list predicates to the AchievementEventDelete builder.
func (_d *AchievementEventDeleteOne) Where(ps ...predicate.AchievementEvent) *AchievementEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AchievementEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{achievementevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AchievementEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
