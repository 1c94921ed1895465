// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/endevo/legacyready/ent/assessmentevent"
)

// AssessmentEventCreate is the builder for creating a AssessmentEvent entity.
type AssessmentEventCreate struct {
	config
	mutation *AssessmentEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentEventCreate) SetSequence(v int64) *AssessmentEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentEventCreate) SetTimestamp(v time.Time) *AssessmentEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableTimestamp(v *time.Time) *AssessmentEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetResultID sets the "result_id" field.
func (_c *AssessmentEventCreate) SetResultID(v string) *AssessmentEventCreate {
	_c.mutation.SetResultID(v)
	return _c
}

// SetRespondentID sets the "respondent_id" field.
func (_c *AssessmentEventCreate) SetRespondentID(v string) *AssessmentEventCreate {
	_c.mutation.SetRespondentID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AssessmentEventCreate) SetScore(v int) *AssessmentEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetModules sets the "modules" field.
func (_c *AssessmentEventCreate) SetModules(v []string) *AssessmentEventCreate {
	_c.mutation.SetModules(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *AssessmentEventCreate) SetAnswers(v map[string]string) *AssessmentEventCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetBankVersion sets the "bank_version" field.
func (_c *AssessmentEventCreate) SetBankVersion(v string) *AssessmentEventCreate {
	_c.mutation.SetBankVersion(v)
	return _c
}

// SetNillableBankVersion sets the "bank_version" field if the given value is not nil.
func (_c *AssessmentEventCreate) SetNillableBankVersion(v *string) *AssessmentEventCreate {
	if v != nil {
		_c.SetBankVersion(*v)
	}
	return _c
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_c *AssessmentEventCreate) Mutation() *AssessmentEventMutation {
	return _c.mutation
}

// Save creates the AssessmentEvent in the database.
func (_c *AssessmentEventCreate) Save(ctx context.Context) (*AssessmentEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentEventCreate) SaveX(ctx context.Context) *AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessmentevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.BankVersion(); !ok {
		v := assessmentevent.DefaultBankVersion
		_c.mutation.SetBankVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssessmentEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssessmentEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ResultID(); !ok {
		return &ValidationError{Name: "result_id", err: errors.New(`ent: missing required field "AssessmentEvent.result_id"`)}
	}
	if v, ok := _c.mutation.ResultID(); ok {
		if err := assessmentevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.result_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RespondentID(); !ok {
		return &ValidationError{Name: "respondent_id", err: errors.New(`ent: missing required field "AssessmentEvent.respondent_id"`)}
	}
	if v, ok := _c.mutation.RespondentID(); ok {
		if err := assessmentevent.RespondentIDValidator(v); err != nil {
			return &ValidationError{Name: "respondent_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.respondent_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AssessmentEvent.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := assessmentevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Modules(); !ok {
		return &ValidationError{Name: "modules", err: errors.New(`ent: missing required field "AssessmentEvent.modules"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "AssessmentEvent.answers"`)}
	}
	if _, ok := _c.mutation.BankVersion(); !ok {
		return &ValidationError{Name: "bank_version", err: errors.New(`ent: missing required field "AssessmentEvent.bank_version"`)}
	}
	return nil
}

func (_c *AssessmentEventCreate) sqlSave(ctx context.Context) (*AssessmentEvent, error) {
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

func (_c *AssessmentEventCreate) createSpec() (*AssessmentEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentevent.Table, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessmentevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessmentevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ResultID(); ok {
		_spec.SetField(assessmentevent.FieldResultID, field.TypeString, value)
		_node.ResultID = value
	}
	if value, ok := _c.mutation.RespondentID(); ok {
		_spec.SetField(assessmentevent.FieldRespondentID, field.TypeString, value)
		_node.RespondentID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Modules(); ok {
		_spec.SetField(assessmentevent.FieldModules, field.TypeJSON, value)
		_node.Modules = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(assessmentevent.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.BankVersion(); ok {
		_spec.SetField(assessmentevent.FieldBankVersion, field.TypeString, value)
		_node.BankVersion = value
	}
	return _node, _spec
}

// AssessmentEventCreateBulk is the builder for creating many AssessmentEvent entities in bulk.
type AssessmentEventCreateBulk struct {
	config
	err      error
	builders []*AssessmentEventCreate
}

// Save creates the AssessmentEvent entities in the database.
func (_c *AssessmentEventCreateBulk) Save(ctx context.Context) ([]*AssessmentEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentEventMutation)
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
func (_c *AssessmentEventCreateBulk) SaveX(ctx context.Context) []*AssessmentEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
