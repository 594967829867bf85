// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/statlab/ent/lessonprogress"
	"github.com/abhisek/statlab/ent/predicate"
)

// LessonProgressUpdate is the builder for updating LessonProgress entities.
type LessonProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LessonProgressMutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdate) Where(ps ...predicate.LessonProgress) *LessonProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *LessonProgressUpdate) SetSlug(v string) *LessonProgressUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableSlug(v *string) *LessonProgressUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetViewedLesson sets the "viewed_lesson" field.
func (_u *LessonProgressUpdate) SetViewedLesson(v bool) *LessonProgressUpdate {
	_u.mutation.SetViewedLesson(v)
	return _u
}

// SetNillableViewedLesson sets the "viewed_lesson" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableViewedLesson(v *bool) *LessonProgressUpdate {
	if v != nil {
		_u.SetViewedLesson(*v)
	}
	return _u
}

// SetViewedSummary sets the "viewed_summary" field.
func (_u *LessonProgressUpdate) SetViewedSummary(v bool) *LessonProgressUpdate {
	_u.mutation.SetViewedSummary(v)
	return _u
}

// SetNillableViewedSummary sets the "viewed_summary" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableViewedSummary(v *bool) *LessonProgressUpdate {
	if v != nil {
		_u.SetViewedSummary(*v)
	}
	return _u
}

// SetQuizAttempted sets the "quiz_attempted" field.
func (_u *LessonProgressUpdate) SetQuizAttempted(v bool) *LessonProgressUpdate {
	_u.mutation.SetQuizAttempted(v)
	return _u
}

// SetNillableQuizAttempted sets the "quiz_attempted" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableQuizAttempted(v *bool) *LessonProgressUpdate {
	if v != nil {
		_u.SetQuizAttempted(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LessonProgressUpdate) SetScore(v int) *LessonProgressUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableScore(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LessonProgressUpdate) AddScore(v int) *LessonProgressUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *LessonProgressUpdate) ClearScore() *LessonProgressUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetPassed sets the "passed" field.
func (_u *LessonProgressUpdate) SetPassed(v bool) *LessonProgressUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillablePassed(v *bool) *LessonProgressUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// ClearPassed clears the value of the "passed" field.
func (_u *LessonProgressUpdate) ClearPassed() *LessonProgressUpdate {
	_u.mutation.ClearPassed()
	return _u
}

// SetLastStep sets the "last_step" field.
func (_u *LessonProgressUpdate) SetLastStep(v string) *LessonProgressUpdate {
	_u.mutation.SetLastStep(v)
	return _u
}

// SetNillableLastStep sets the "last_step" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableLastStep(v *string) *LessonProgressUpdate {
	if v != nil {
		_u.SetLastStep(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonProgressUpdate) SetCompletedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCompletedAt(v *time.Time) *LessonProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonProgressUpdate) ClearCompletedAt() *LessonProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProgressUpdate) SetUpdatedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdate) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonProgressUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := lessonprogress.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(lessonprogress.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViewedLesson(); ok {
		_spec.SetField(lessonprogress.FieldViewedLesson, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ViewedSummary(); ok {
		_spec.SetField(lessonprogress.FieldViewedSummary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuizAttempted(); ok {
		_spec.SetField(lessonprogress.FieldQuizAttempted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lessonprogress.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lessonprogress.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(lessonprogress.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(lessonprogress.FieldPassed, field.TypeBool, value)
	}
	if _u.mutation.PassedCleared() {
		_spec.ClearField(lessonprogress.FieldPassed, field.TypeBool)
	}
	if value, ok := _u.mutation.LastStep(); ok {
		_spec.SetField(lessonprogress.FieldLastStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonProgressUpdateOne is the builder for updating a single LessonProgress entity.
type LessonProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonProgressMutation
}

// SetSlug sets the "slug" field.
func (_u *LessonProgressUpdateOne) SetSlug(v string) *LessonProgressUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableSlug(v *string) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetViewedLesson sets the "viewed_lesson" field.
func (_u *LessonProgressUpdateOne) SetViewedLesson(v bool) *LessonProgressUpdateOne {
	_u.mutation.SetViewedLesson(v)
	return _u
}

// SetNillableViewedLesson sets the "viewed_lesson" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableViewedLesson(v *bool) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetViewedLesson(*v)
	}
	return _u
}

// SetViewedSummary sets the "viewed_summary" field.
func (_u *LessonProgressUpdateOne) SetViewedSummary(v bool) *LessonProgressUpdateOne {
	_u.mutation.SetViewedSummary(v)
	return _u
}

// SetNillableViewedSummary sets the "viewed_summary" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableViewedSummary(v *bool) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetViewedSummary(*v)
	}
	return _u
}

// SetQuizAttempted sets the "quiz_attempted" field.
func (_u *LessonProgressUpdateOne) SetQuizAttempted(v bool) *LessonProgressUpdateOne {
	_u.mutation.SetQuizAttempted(v)
	return _u
}

// SetNillableQuizAttempted sets the "quiz_attempted" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableQuizAttempted(v *bool) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetQuizAttempted(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LessonProgressUpdateOne) SetScore(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableScore(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LessonProgressUpdateOne) AddScore(v int) *LessonProgressUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *LessonProgressUpdateOne) ClearScore() *LessonProgressUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetPassed sets the "passed" field.
func (_u *LessonProgressUpdateOne) SetPassed(v bool) *LessonProgressUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillablePassed(v *bool) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// ClearPassed clears the value of the "passed" field.
func (_u *LessonProgressUpdateOne) ClearPassed() *LessonProgressUpdateOne {
	_u.mutation.ClearPassed()
	return _u
}

// SetLastStep sets the "last_step" field.
func (_u *LessonProgressUpdateOne) SetLastStep(v string) *LessonProgressUpdateOne {
	_u.mutation.SetLastStep(v)
	return _u
}

// SetNillableLastStep sets the "last_step" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableLastStep(v *string) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetLastStep(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LessonProgressUpdateOne) SetCompletedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LessonProgressUpdateOne) ClearCompletedAt() *LessonProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProgressUpdateOne) SetUpdatedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdateOne) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdateOne) Where(ps ...predicate.LessonProgress) *LessonProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonProgressUpdateOne) Select(field string, fields ...string) *LessonProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonProgress entity.
func (_u *LessonProgressUpdateOne) Save(ctx context.Context) (*LessonProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) SaveX(ctx context.Context) *LessonProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := lessonprogress.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonProgressUpdateOne) sqlSave(ctx context.Context) (_node *LessonProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonprogress.FieldID)
		for _, f := range fields {
			if !lessonprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonprogress.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(lessonprogress.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.ViewedLesson(); ok {
		_spec.SetField(lessonprogress.FieldViewedLesson, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ViewedSummary(); ok {
		_spec.SetField(lessonprogress.FieldViewedSummary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuizAttempted(); ok {
		_spec.SetField(lessonprogress.FieldQuizAttempted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lessonprogress.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lessonprogress.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(lessonprogress.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(lessonprogress.FieldPassed, field.TypeBool, value)
	}
	if _u.mutation.PassedCleared() {
		_spec.ClearField(lessonprogress.FieldPassed, field.TypeBool)
	}
	if value, ok := _u.mutation.LastStep(); ok {
		_spec.SetField(lessonprogress.FieldLastStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lessonprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LessonProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
