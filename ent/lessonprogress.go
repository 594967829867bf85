// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/statlab/ent/lessonprogress"
)

// LessonProgress is the model entity for the LessonProgress schema.
type LessonProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Catalog lesson slug
	Slug string `json:"slug,omitempty"`
	// ViewedLesson holds the value of the "viewed_lesson" field.
	ViewedLesson bool `json:"viewed_lesson,omitempty"`
	// ViewedSummary holds the value of the "viewed_summary" field.
	ViewedSummary bool `json:"viewed_summary,omitempty"`
	// QuizAttempted holds the value of the "quiz_attempted" field.
	QuizAttempted bool `json:"quiz_attempted,omitempty"`
	// Latest quiz score 0-100; unset until a quiz is submitted
	Score *int `json:"score,omitempty"`
	// Pass verdict pinned at submission time
	Passed *bool `json:"passed,omitempty"`
	// Last flow step reached: lesson, summary, quiz, result
	LastStep string `json:"last_step,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldViewedLesson, lessonprogress.FieldViewedSummary, lessonprogress.FieldQuizAttempted, lessonprogress.FieldPassed:
			values[i] = new(sql.NullBool)
		case lessonprogress.FieldID, lessonprogress.FieldScore:
			values[i] = new(sql.NullInt64)
		case lessonprogress.FieldSlug, lessonprogress.FieldLastStep:
			values[i] = new(sql.NullString)
		case lessonprogress.FieldCompletedAt, lessonprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonProgress fields.
func (_m *LessonProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonprogress.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case lessonprogress.FieldViewedLesson:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field viewed_lesson", values[i])
			} else if value.Valid {
				_m.ViewedLesson = value.Bool
			}
		case lessonprogress.FieldViewedSummary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field viewed_summary", values[i])
			} else if value.Valid {
				_m.ViewedSummary = value.Bool
			}
		case lessonprogress.FieldQuizAttempted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_attempted", values[i])
			} else if value.Valid {
				_m.QuizAttempted = value.Bool
			}
		case lessonprogress.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(int)
				*_m.Score = int(value.Int64)
			}
		case lessonprogress.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = new(bool)
				*_m.Passed = value.Bool
			}
		case lessonprogress.FieldLastStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_step", values[i])
			} else if value.Valid {
				_m.LastStep = value.String
			}
		case lessonprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case lessonprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonProgress.
// This includes values selected through modifiers, order, etc.
func (_m *LessonProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonProgress.
// Note that you need to call LessonProgress.Unwrap() before calling this method if this LessonProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonProgress) Update() *LessonProgressUpdateOne {
	return NewLessonProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonProgress) Unwrap() *LessonProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonProgress) String() string {
	var builder strings.Builder
	builder.WriteString("LessonProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("viewed_lesson=")
	builder.WriteString(fmt.Sprintf("%v", _m.ViewedLesson))
	builder.WriteString(", ")
	builder.WriteString("viewed_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.ViewedSummary))
	builder.WriteString(", ")
	builder.WriteString("quiz_attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizAttempted))
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Passed; v != nil {
		builder.WriteString("passed=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("last_step=")
	builder.WriteString(_m.LastStep)
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonProgresses is a parsable slice of LessonProgress.
type LessonProgresses []*LessonProgress
