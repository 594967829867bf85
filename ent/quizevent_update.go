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
	"github.com/abhisek/statlab/ent/predicate"
	"github.com/abhisek/statlab/ent/quizevent"
	"github.com/abhisek/statlab/ent/schema"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLessonSlug sets the "lesson_slug" field.
func (_u *QuizEventUpdate) SetLessonSlug(v string) *QuizEventUpdate {
	_u.mutation.SetLessonSlug(v)
	return _u
}

// SetNillableLessonSlug sets the "lesson_slug" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableLessonSlug(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetLessonSlug(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizEventUpdate) SetAttemptID(v string) *QuizEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAttemptID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdate) SetScore(v int) *QuizEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableScore(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdate) AddScore(v int) *QuizEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizEventUpdate) SetTotalQuestions(v int) *QuizEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableTotalQuestions(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizEventUpdate) AddTotalQuestions(v int) *QuizEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizEventUpdate) SetCorrectAnswers(v int) *QuizEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableCorrectAnswers(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizEventUpdate) AddCorrectAnswers(v int) *QuizEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetHeartsLeft sets the "hearts_left" field.
func (_u *QuizEventUpdate) SetHeartsLeft(v int) *QuizEventUpdate {
	_u.mutation.ResetHeartsLeft()
	_u.mutation.SetHeartsLeft(v)
	return _u
}

// SetNillableHeartsLeft sets the "hearts_left" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableHeartsLeft(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetHeartsLeft(*v)
	}
	return _u
}

// AddHeartsLeft adds value to the "hearts_left" field.
func (_u *QuizEventUpdate) AddHeartsLeft(v int) *QuizEventUpdate {
	_u.mutation.AddHeartsLeft(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *QuizEventUpdate) SetBestStreak(v int) *QuizEventUpdate {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableBestStreak(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *QuizEventUpdate) AddBestStreak(v int) *QuizEventUpdate {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *QuizEventUpdate) SetTimeSpentSecs(v int) *QuizEventUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableTimeSpentSecs(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *QuizEventUpdate) AddTimeSpentSecs(v int) *QuizEventUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetExhausted sets the "exhausted" field.
func (_u *QuizEventUpdate) SetExhausted(v bool) *QuizEventUpdate {
	_u.mutation.SetExhausted(v)
	return _u
}

// SetNillableExhausted sets the "exhausted" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableExhausted(v *bool) *QuizEventUpdate {
	if v != nil {
		_u.SetExhausted(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizEventUpdate) SetPassed(v bool) *QuizEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillablePassed(v *bool) *QuizEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizEventUpdate) SetAnswers(v []schema.AnswerSummary) *QuizEventUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *QuizEventUpdate) AppendAnswers(v []schema.AnswerSummary) *QuizEventUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *QuizEventUpdate) ClearAnswers() *QuizEventUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.LessonSlug(); ok {
		if err := quizevent.LessonSlugValidator(v); err != nil {
			return &ValidationError{Name: "lesson_slug", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.lesson_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LessonSlug(); ok {
		_spec.SetField(quizevent.FieldLessonSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HeartsLeft(); ok {
		_spec.SetField(quizevent.FieldHeartsLeft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartsLeft(); ok {
		_spec.AddField(quizevent.FieldHeartsLeft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(quizevent.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(quizevent.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(quizevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(quizevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Exhausted(); ok {
		_spec.SetField(quizevent.FieldExhausted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizevent.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(quizevent.FieldAnswers, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetLessonSlug sets the "lesson_slug" field.
func (_u *QuizEventUpdateOne) SetLessonSlug(v string) *QuizEventUpdateOne {
	_u.mutation.SetLessonSlug(v)
	return _u
}

// SetNillableLessonSlug sets the "lesson_slug" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableLessonSlug(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetLessonSlug(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *QuizEventUpdateOne) SetAttemptID(v string) *QuizEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAttemptID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizEventUpdateOne) SetScore(v int) *QuizEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableScore(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizEventUpdateOne) AddScore(v int) *QuizEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizEventUpdateOne) SetTotalQuestions(v int) *QuizEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableTotalQuestions(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizEventUpdateOne) AddTotalQuestions(v int) *QuizEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizEventUpdateOne) SetCorrectAnswers(v int) *QuizEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableCorrectAnswers(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizEventUpdateOne) AddCorrectAnswers(v int) *QuizEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetHeartsLeft sets the "hearts_left" field.
func (_u *QuizEventUpdateOne) SetHeartsLeft(v int) *QuizEventUpdateOne {
	_u.mutation.ResetHeartsLeft()
	_u.mutation.SetHeartsLeft(v)
	return _u
}

// SetNillableHeartsLeft sets the "hearts_left" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableHeartsLeft(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetHeartsLeft(*v)
	}
	return _u
}

// AddHeartsLeft adds value to the "hearts_left" field.
func (_u *QuizEventUpdateOne) AddHeartsLeft(v int) *QuizEventUpdateOne {
	_u.mutation.AddHeartsLeft(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *QuizEventUpdateOne) SetBestStreak(v int) *QuizEventUpdateOne {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableBestStreak(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *QuizEventUpdateOne) AddBestStreak(v int) *QuizEventUpdateOne {
	_u.mutation.AddBestStreak(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *QuizEventUpdateOne) SetTimeSpentSecs(v int) *QuizEventUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableTimeSpentSecs(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *QuizEventUpdateOne) AddTimeSpentSecs(v int) *QuizEventUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetExhausted sets the "exhausted" field.
func (_u *QuizEventUpdateOne) SetExhausted(v bool) *QuizEventUpdateOne {
	_u.mutation.SetExhausted(v)
	return _u
}

// SetNillableExhausted sets the "exhausted" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableExhausted(v *bool) *QuizEventUpdateOne {
	if v != nil {
		_u.SetExhausted(*v)
	}
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizEventUpdateOne) SetPassed(v bool) *QuizEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillablePassed(v *bool) *QuizEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *QuizEventUpdateOne) SetAnswers(v []schema.AnswerSummary) *QuizEventUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *QuizEventUpdateOne) AppendAnswers(v []schema.AnswerSummary) *QuizEventUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *QuizEventUpdateOne) ClearAnswers() *QuizEventUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.LessonSlug(); ok {
		if err := quizevent.LessonSlugValidator(v); err != nil {
			return &ValidationError{Name: "lesson_slug", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.lesson_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := quizevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
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
	if value, ok := _u.mutation.LessonSlug(); ok {
		_spec.SetField(quizevent.FieldLessonSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(quizevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HeartsLeft(); ok {
		_spec.SetField(quizevent.FieldHeartsLeft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartsLeft(); ok {
		_spec.AddField(quizevent.FieldHeartsLeft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(quizevent.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(quizevent.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(quizevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(quizevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Exhausted(); ok {
		_spec.SetField(quizevent.FieldExhausted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(quizevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizevent.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(quizevent.FieldAnswers, field.TypeJSON)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
