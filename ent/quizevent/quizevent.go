// Code generated by ent, DO NOT EDIT.

package quizevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizevent type in the database.
	Label = "quiz_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLessonSlug holds the string denoting the lesson_slug field in the database.
	FieldLessonSlug = "lesson_slug"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldHeartsLeft holds the string denoting the hearts_left field in the database.
	FieldHeartsLeft = "hearts_left"
	// FieldBestStreak holds the string denoting the best_streak field in the database.
	FieldBestStreak = "best_streak"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// FieldExhausted holds the string denoting the exhausted field in the database.
	FieldExhausted = "exhausted"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// Table holds the table name of the quizevent in the database.
	Table = "quiz_events"
)

// Columns holds all SQL columns for quizevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLessonSlug,
	FieldAttemptID,
	FieldScore,
	FieldTotalQuestions,
	FieldCorrectAnswers,
	FieldHeartsLeft,
	FieldBestStreak,
	FieldTimeSpentSecs,
	FieldExhausted,
	FieldPassed,
	FieldAnswers,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LessonSlugValidator is a validator for the "lesson_slug" field. It is called by the builders before save.
	LessonSlugValidator func(string) error
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// DefaultHeartsLeft holds the default value on creation for the "hearts_left" field.
	DefaultHeartsLeft int
	// DefaultBestStreak holds the default value on creation for the "best_streak" field.
	DefaultBestStreak int
	// DefaultTimeSpentSecs holds the default value on creation for the "time_spent_secs" field.
	DefaultTimeSpentSecs int
	// DefaultExhausted holds the default value on creation for the "exhausted" field.
	DefaultExhausted bool
)

// OrderOption defines the ordering options for the QuizEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLessonSlug orders the results by the lesson_slug field.
func ByLessonSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonSlug, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByHeartsLeft orders the results by the hearts_left field.
func ByHeartsLeft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartsLeft, opts...).ToFunc()
}

// ByBestStreak orders the results by the best_streak field.
func ByBestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestStreak, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}

// ByExhausted orders the results by the exhausted field.
func ByExhausted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExhausted, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}
