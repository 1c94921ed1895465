// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/endevo/legacyready/ent/predicate"
	"github.com/endevo/legacyready/ent/progressevent"
)

// ProgressEventUpdate is the builder for updating ProgressEvent entities.
type ProgressEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressEventMutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdate) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRespondentID sets the "respondent_id" field.
func (_u *ProgressEventUpdate) SetRespondentID(v string) *ProgressEventUpdate {
	_u.mutation.SetRespondentID(v)
	return _u
}

// SetNillableRespondentID sets the "respondent_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableRespondentID(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetRespondentID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ProgressEventUpdate) SetModuleID(v string) *ProgressEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableModuleID(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ProgressEventUpdate) SetAction(v string) *ProgressEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableAction(v *string) *ProgressEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *ProgressEventUpdate) SetLessonsCompleted(v int) *ProgressEventUpdate {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *ProgressEventUpdate) SetNillableLessonsCompleted(v *int) *ProgressEventUpdate {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *ProgressEventUpdate) AddLessonsCompleted(v int) *ProgressEventUpdate {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdate) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdate) check() error {
	if v, ok := _u.mutation.RespondentID(); ok {
		if err := progressevent.RespondentIDValidator(v); err != nil {
			return &ValidationError{Name: "respondent_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.respondent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := progressevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := progressevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonsCompleted(); ok {
		if err := progressevent.LessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "lessons_completed", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.lessons_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RespondentID(); ok {
		_spec.SetField(progressevent.FieldRespondentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(progressevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(progressevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(progressevent.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(progressevent.FieldLessonsCompleted, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressEventUpdateOne is the builder for updating a single ProgressEvent entity.
type ProgressEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressEventMutation
}

// SetRespondentID sets the "respondent_id" field.
func (_u *ProgressEventUpdateOne) SetRespondentID(v string) *ProgressEventUpdateOne {
	_u.mutation.SetRespondentID(v)
	return _u
}

// SetNillableRespondentID sets the "respondent_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableRespondentID(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetRespondentID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *ProgressEventUpdateOne) SetModuleID(v string) *ProgressEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableModuleID(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ProgressEventUpdateOne) SetAction(v string) *ProgressEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableAction(v *string) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *ProgressEventUpdateOne) SetLessonsCompleted(v int) *ProgressEventUpdateOne {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *ProgressEventUpdateOne) SetNillableLessonsCompleted(v *int) *ProgressEventUpdateOne {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *ProgressEventUpdateOne) AddLessonsCompleted(v int) *ProgressEventUpdateOne {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// Mutation returns the ProgressEventMutation object of the builder.
func (_u *ProgressEventUpdateOne) Mutation() *ProgressEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressEventUpdate builder.
func (_u *ProgressEventUpdateOne) Where(ps ...predicate.ProgressEvent) *ProgressEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressEventUpdateOne) Select(field string, fields ...string) *ProgressEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressEvent entity.
func (_u *ProgressEventUpdateOne) Save(ctx context.Context) (*ProgressEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) SaveX(ctx context.Context) *ProgressEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressEventUpdateOne) check() error {
	if v, ok := _u.mutation.RespondentID(); ok {
		if err := progressevent.RespondentIDValidator(v); err != nil {
			return &ValidationError{Name: "respondent_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.respondent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := progressevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := progressevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonsCompleted(); ok {
		if err := progressevent.LessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "lessons_completed", err: fmt.Errorf(`ent: validator failed for field "ProgressEvent.lessons_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressEventUpdateOne) sqlSave(ctx context.Context) (_node *ProgressEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressevent.Table, progressevent.Columns, sqlgraph.NewFieldSpec(progressevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressevent.FieldID)
		for _, f := range fields {
			if !progressevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressevent.FieldID {
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
	if value, ok := _u.mutation.RespondentID(); ok {
		_spec.SetField(progressevent.FieldRespondentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(progressevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(progressevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(progressevent.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(progressevent.FieldLessonsCompleted, field.TypeInt, value)
	}
	_node = &ProgressEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
