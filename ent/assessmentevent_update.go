// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/endevo/legacyready/ent/assessmentevent"
	"github.com/endevo/legacyready/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRespondentID sets the "respondent_id" field.
func (_u *AssessmentEventUpdate) SetRespondentID(v string) *AssessmentEventUpdate {
	_u.mutation.SetRespondentID(v)
	return _u
}

// SetNillableRespondentID sets the "respondent_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRespondentID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRespondentID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdate) SetScore(v int) *AssessmentEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScore(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdate) AddScore(v int) *AssessmentEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetModules sets the "modules" field.
func (_u *AssessmentEventUpdate) SetModules(v []string) *AssessmentEventUpdate {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *AssessmentEventUpdate) AppendModules(v []string) *AssessmentEventUpdate {
	_u.mutation.AppendModules(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AssessmentEventUpdate) SetAnswers(v map[string]string) *AssessmentEventUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetBankVersion sets the "bank_version" field.
func (_u *AssessmentEventUpdate) SetBankVersion(v string) *AssessmentEventUpdate {
	_u.mutation.SetBankVersion(v)
	return _u
}

// SetNillableBankVersion sets the "bank_version" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableBankVersion(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetBankVersion(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.RespondentID(); ok {
		if err := assessmentevent.RespondentIDValidator(v); err != nil {
			return &ValidationError{Name: "respondent_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.respondent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := assessmentevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.score": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RespondentID(); ok {
		_spec.SetField(assessmentevent.FieldRespondentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(assessmentevent.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldModules, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(assessmentevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BankVersion(); ok {
		_spec.SetField(assessmentevent.FieldBankVersion, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetRespondentID sets the "respondent_id" field.
func (_u *AssessmentEventUpdateOne) SetRespondentID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetRespondentID(v)
	return _u
}

// SetNillableRespondentID sets the "respondent_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRespondentID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRespondentID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdateOne) SetScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScore(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdateOne) AddScore(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetModules sets the "modules" field.
func (_u *AssessmentEventUpdateOne) SetModules(v []string) *AssessmentEventUpdateOne {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *AssessmentEventUpdateOne) AppendModules(v []string) *AssessmentEventUpdateOne {
	_u.mutation.AppendModules(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *AssessmentEventUpdateOne) SetAnswers(v map[string]string) *AssessmentEventUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetBankVersion sets the "bank_version" field.
func (_u *AssessmentEventUpdateOne) SetBankVersion(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetBankVersion(v)
	return _u
}

// SetNillableBankVersion sets the "bank_version" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableBankVersion(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetBankVersion(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.RespondentID(); ok {
		if err := assessmentevent.RespondentIDValidator(v); err != nil {
			return &ValidationError{Name: "respondent_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.respondent_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := assessmentevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.score": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
		_spec.SetField(assessmentevent.FieldRespondentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(assessmentevent.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessmentevent.FieldModules, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(assessmentevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.BankVersion(); ok {
		_spec.SetField(assessmentevent.FieldBankVersion, field.TypeString, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
