// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonprogress type in the database.
	Label = "lesson_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldViewedLesson holds the string denoting the viewed_lesson field in the database.
	FieldViewedLesson = "viewed_lesson"
	// FieldViewedSummary holds the string denoting the viewed_summary field in the database.
	FieldViewedSummary = "viewed_summary"
	// FieldQuizAttempted holds the string denoting the quiz_attempted field in the database.
	FieldQuizAttempted = "quiz_attempted"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldLastStep holds the string denoting the last_step field in the database.
	FieldLastStep = "last_step"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the lessonprogress in the database.
	Table = "lesson_progresses"
)

// Columns holds all SQL columns for lessonprogress fields.
var Columns = []string{
	FieldID,
	FieldSlug,
	FieldViewedLesson,
	FieldViewedSummary,
	FieldQuizAttempted,
	FieldScore,
	FieldPassed,
	FieldLastStep,
	FieldCompletedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultViewedLesson holds the default value on creation for the "viewed_lesson" field.
	DefaultViewedLesson bool
	// DefaultViewedSummary holds the default value on creation for the "viewed_summary" field.
	DefaultViewedSummary bool
	// DefaultQuizAttempted holds the default value on creation for the "quiz_attempted" field.
	DefaultQuizAttempted bool
	// DefaultLastStep holds the default value on creation for the "last_step" field.
	DefaultLastStep string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LessonProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByViewedLesson orders the results by the viewed_lesson field.
func ByViewedLesson(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewedLesson, opts...).ToFunc()
}

// ByViewedSummary orders the results by the viewed_summary field.
func ByViewedSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewedSummary, opts...).ToFunc()
}

// ByQuizAttempted orders the results by the quiz_attempted field.
func ByQuizAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizAttempted, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByLastStep orders the results by the last_step field.
func ByLastStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStep, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
