// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/statlab/ent/lessonprogress"
)

// LessonProgressCreate is the builder for creating a LessonProgress entity.
type LessonProgressCreate struct {
	config
	mutation *LessonProgressMutation
	hooks    []Hook
}

// SetSlug sets the "slug" field.
func (_c *LessonProgressCreate) SetSlug(v string) *LessonProgressCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetViewedLesson sets the "viewed_lesson" field.
func (_c *LessonProgressCreate) SetViewedLesson(v bool) *LessonProgressCreate {
	_c.mutation.SetViewedLesson(v)
	return _c
}

// SetNillableViewedLesson sets the "viewed_lesson" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableViewedLesson(v *bool) *LessonProgressCreate {
	if v != nil {
		_c.SetViewedLesson(*v)
	}
	return _c
}

// SetViewedSummary sets the "viewed_summary" field.
func (_c *LessonProgressCreate) SetViewedSummary(v bool) *LessonProgressCreate {
	_c.mutation.SetViewedSummary(v)
	return _c
}

// SetNillableViewedSummary sets the "viewed_summary" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableViewedSummary(v *bool) *LessonProgressCreate {
	if v != nil {
		_c.SetViewedSummary(*v)
	}
	return _c
}

// SetQuizAttempted sets the "quiz_attempted" field.
func (_c *LessonProgressCreate) SetQuizAttempted(v bool) *LessonProgressCreate {
	_c.mutation.SetQuizAttempted(v)
	return _c
}

// SetNillableQuizAttempted sets the "quiz_attempted" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableQuizAttempted(v *bool) *LessonProgressCreate {
	if v != nil {
		_c.SetQuizAttempted(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *LessonProgressCreate) SetScore(v int) *LessonProgressCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableScore(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *LessonProgressCreate) SetPassed(v bool) *LessonProgressCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillablePassed(v *bool) *LessonProgressCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetLastStep sets the "last_step" field.
func (_c *LessonProgressCreate) SetLastStep(v string) *LessonProgressCreate {
	_c.mutation.SetLastStep(v)
	return _c
}

// SetNillableLastStep sets the "last_step" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableLastStep(v *string) *LessonProgressCreate {
	if v != nil {
		_c.SetLastStep(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LessonProgressCreate) SetCompletedAt(v time.Time) *LessonProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableCompletedAt(v *time.Time) *LessonProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonProgressCreate) SetUpdatedAt(v time.Time) *LessonProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableUpdatedAt(v *time.Time) *LessonProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_c *LessonProgressCreate) Mutation() *LessonProgressMutation {
	return _c.mutation
}

// Save creates the LessonProgress in the database.
func (_c *LessonProgressCreate) Save(ctx context.Context) (*LessonProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonProgressCreate) SaveX(ctx context.Context) *LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonProgressCreate) defaults() {
	if _, ok := _c.mutation.ViewedLesson(); !ok {
		v := lessonprogress.DefaultViewedLesson
		_c.mutation.SetViewedLesson(v)
	}
	if _, ok := _c.mutation.ViewedSummary(); !ok {
		v := lessonprogress.DefaultViewedSummary
		_c.mutation.SetViewedSummary(v)
	}
	if _, ok := _c.mutation.QuizAttempted(); !ok {
		v := lessonprogress.DefaultQuizAttempted
		_c.mutation.SetQuizAttempted(v)
	}
	if _, ok := _c.mutation.LastStep(); !ok {
		v := lessonprogress.DefaultLastStep
		_c.mutation.SetLastStep(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lessonprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonProgressCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "LessonProgress.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := lessonprogress.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ViewedLesson(); !ok {
		return &ValidationError{Name: "viewed_lesson", err: errors.New(`ent: missing required field "LessonProgress.viewed_lesson"`)}
	}
	if _, ok := _c.mutation.ViewedSummary(); !ok {
		return &ValidationError{Name: "viewed_summary", err: errors.New(`ent: missing required field "LessonProgress.viewed_summary"`)}
	}
	if _, ok := _c.mutation.QuizAttempted(); !ok {
		return &ValidationError{Name: "quiz_attempted", err: errors.New(`ent: missing required field "LessonProgress.quiz_attempted"`)}
	}
	if _, ok := _c.mutation.LastStep(); !ok {
		return &ValidationError{Name: "last_step", err: errors.New(`ent: missing required field "LessonProgress.last_step"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LessonProgress.updated_at"`)}
	}
	return nil
}

func (_c *LessonProgressCreate) sqlSave(ctx context.Context) (*LessonProgress, error) {
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

func (_c *LessonProgressCreate) createSpec() (*LessonProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonprogress.Table, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(lessonprogress.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.ViewedLesson(); ok {
		_spec.SetField(lessonprogress.FieldViewedLesson, field.TypeBool, value)
		_node.ViewedLesson = value
	}
	if value, ok := _c.mutation.ViewedSummary(); ok {
		_spec.SetField(lessonprogress.FieldViewedSummary, field.TypeBool, value)
		_node.ViewedSummary = value
	}
	if value, ok := _c.mutation.QuizAttempted(); ok {
		_spec.SetField(lessonprogress.FieldQuizAttempted, field.TypeBool, value)
		_node.QuizAttempted = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(lessonprogress.FieldScore, field.TypeInt, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(lessonprogress.FieldPassed, field.TypeBool, value)
		_node.Passed = &value
	}
	if value, ok := _c.mutation.LastStep(); ok {
		_spec.SetField(lessonprogress.FieldLastStep, field.TypeString, value)
		_node.LastStep = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LessonProgressCreateBulk is the builder for creating many LessonProgress entities in bulk.
type LessonProgressCreateBulk struct {
	config
	err      error
	builders []*LessonProgressCreate
}

// Save creates the LessonProgress entities in the database.
func (_c *LessonProgressCreateBulk) Save(ctx context.Context) ([]*LessonProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonProgressMutation)
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
func (_c *LessonProgressCreateBulk) SaveX(ctx context.Context) []*LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
