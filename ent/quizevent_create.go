// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/statlab/ent/quizevent"
	"github.com/abhisek/statlab/ent/schema"
)

// QuizEventCreate is the builder for creating a QuizEvent entity.
type QuizEventCreate struct {
	config
	mutation *QuizEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizEventCreate) SetSequence(v int64) *QuizEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizEventCreate) SetTimestamp(v time.Time) *QuizEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableTimestamp(v *time.Time) *QuizEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLessonSlug sets the "lesson_slug" field.
func (_c *QuizEventCreate) SetLessonSlug(v string) *QuizEventCreate {
	_c.mutation.SetLessonSlug(v)
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *QuizEventCreate) SetAttemptID(v string) *QuizEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizEventCreate) SetScore(v int) *QuizEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *QuizEventCreate) SetTotalQuestions(v int) *QuizEventCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *QuizEventCreate) SetCorrectAnswers(v int) *QuizEventCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetHeartsLeft sets the "hearts_left" field.
func (_c *QuizEventCreate) SetHeartsLeft(v int) *QuizEventCreate {
	_c.mutation.SetHeartsLeft(v)
	return _c
}

// SetNillableHeartsLeft sets the "hearts_left" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableHeartsLeft(v *int) *QuizEventCreate {
	if v != nil {
		_c.SetHeartsLeft(*v)
	}
	return _c
}

// SetBestStreak sets the "best_streak" field.
func (_c *QuizEventCreate) SetBestStreak(v int) *QuizEventCreate {
	_c.mutation.SetBestStreak(v)
	return _c
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableBestStreak(v *int) *QuizEventCreate {
	if v != nil {
		_c.SetBestStreak(*v)
	}
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *QuizEventCreate) SetTimeSpentSecs(v int) *QuizEventCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableTimeSpentSecs(v *int) *QuizEventCreate {
	if v != nil {
		_c.SetTimeSpentSecs(*v)
	}
	return _c
}

// SetExhausted sets the "exhausted" field.
func (_c *QuizEventCreate) SetExhausted(v bool) *QuizEventCreate {
	_c.mutation.SetExhausted(v)
	return _c
}

// SetNillableExhausted sets the "exhausted" field if the given value is not nil.
func (_c *QuizEventCreate) SetNillableExhausted(v *bool) *QuizEventCreate {
	if v != nil {
		_c.SetExhausted(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *QuizEventCreate) SetPassed(v bool) *QuizEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *QuizEventCreate) SetAnswers(v []schema.AnswerSummary) *QuizEventCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// Mutation returns the QuizEventMutation object of the builder.
func (_c *QuizEventCreate) Mutation() *QuizEventMutation {
	return _c.mutation
}

// Save creates the QuizEvent in the database.
func (_c *QuizEventCreate) Save(ctx context.Context) (*QuizEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizEventCreate) SaveX(ctx context.Context) *QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.HeartsLeft(); !ok {
		v := quizevent.DefaultHeartsLeft
		_c.mutation.SetHeartsLeft(v)
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		v := quizevent.DefaultBestStreak
		_c.mutation.SetBestStreak(v)
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		v := quizevent.DefaultTimeSpentSecs
		_c.mutation.SetTimeSpentSecs(v)
	}
	if _, ok := _c.mutation.Exhausted(); !ok {
		v := quizevent.DefaultExhausted
		_c.mutation.SetExhausted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LessonSlug(); !ok {
		return &ValidationError{Name: "lesson_slug", err: errors.New(`ent: missing required field "QuizEvent.lesson_slug"`)}
	}
	if v, ok := _c.mutation.LessonSlug(); ok {
		if err := quizevent.LessonSlugValidator(v); err != nil {
			return &ValidationError{Name: "lesson_slug", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.lesson_slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "QuizEvent.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := quizevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizEvent.score"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "QuizEvent.total_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "QuizEvent.correct_answers"`)}
	}
	if _, ok := _c.mutation.HeartsLeft(); !ok {
		return &ValidationError{Name: "hearts_left", err: errors.New(`ent: missing required field "QuizEvent.hearts_left"`)}
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		return &ValidationError{Name: "best_streak", err: errors.New(`ent: missing required field "QuizEvent.best_streak"`)}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "QuizEvent.time_spent_secs"`)}
	}
	if _, ok := _c.mutation.Exhausted(); !ok {
		return &ValidationError{Name: "exhausted", err: errors.New(`ent: missing required field "QuizEvent.exhausted"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "QuizEvent.passed"`)}
	}
	return nil
}

func (_c *QuizEventCreate) sqlSave(ctx context.Context) (*QuizEvent, error) {
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

func (_c *QuizEventCreate) createSpec() (*QuizEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizevent.Table, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LessonSlug(); ok {
		_spec.SetField(quizevent.FieldLessonSlug, field.TypeString, value)
		_node.LessonSlug = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(quizevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(quizevent.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.HeartsLeft(); ok {
		_spec.SetField(quizevent.FieldHeartsLeft, field.TypeInt, value)
		_node.HeartsLeft = value
	}
	if value, ok := _c.mutation.BestStreak(); ok {
		_spec.SetField(quizevent.FieldBestStreak, field.TypeInt, value)
		_node.BestStreak = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(quizevent.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.Exhausted(); ok {
		_spec.SetField(quizevent.FieldExhausted, field.TypeBool, value)
		_node.Exhausted = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(quizevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(quizevent.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	return _node, _spec
}

// QuizEventCreateBulk is the builder for creating many QuizEvent entities in bulk.
type QuizEventCreateBulk struct {
	config
	err      error
	builders []*QuizEventCreate
}

// Save creates the QuizEvent entities in the database.
func (_c *QuizEventCreateBulk) Save(ctx context.Context) ([]*QuizEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizEventMutation)
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
func (_c *QuizEventCreateBulk) SaveX(ctx context.Context) []*QuizEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
