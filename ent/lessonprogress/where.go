// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/statlab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldID, id))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldSlug, v))
}

// ViewedLesson applies equality check predicate on the "viewed_lesson" field. It's identical to ViewedLessonEQ.
func ViewedLesson(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldViewedLesson, v))
}

// ViewedSummary applies equality check predicate on the "viewed_summary" field. It's identical to ViewedSummaryEQ.
func ViewedSummary(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldViewedSummary, v))
}

// QuizAttempted applies equality check predicate on the "quiz_attempted" field. It's identical to QuizAttemptedEQ.
func QuizAttempted(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuizAttempted, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldPassed, v))
}

// LastStep applies equality check predicate on the "last_step" field. It's identical to LastStepEQ.
func LastStep(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLastStep, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldSlug, v))
}

// ViewedLessonEQ applies the EQ predicate on the "viewed_lesson" field.
func ViewedLessonEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldViewedLesson, v))
}

// ViewedLessonNEQ applies the NEQ predicate on the "viewed_lesson" field.
func ViewedLessonNEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldViewedLesson, v))
}

// ViewedSummaryEQ applies the EQ predicate on the "viewed_summary" field.
func ViewedSummaryEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldViewedSummary, v))
}

// ViewedSummaryNEQ applies the NEQ predicate on the "viewed_summary" field.
func ViewedSummaryNEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldViewedSummary, v))
}

// QuizAttemptedEQ applies the EQ predicate on the "quiz_attempted" field.
func QuizAttemptedEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuizAttempted, v))
}

// QuizAttemptedNEQ applies the NEQ predicate on the "quiz_attempted" field.
func QuizAttemptedNEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldQuizAttempted, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldScore))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldPassed, v))
}

// PassedIsNil applies the IsNil predicate on the "passed" field.
func PassedIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldPassed))
}

// PassedNotNil applies the NotNil predicate on the "passed" field.
func PassedNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldPassed))
}

// LastStepEQ applies the EQ predicate on the "last_step" field.
func LastStepEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLastStep, v))
}

// LastStepNEQ applies the NEQ predicate on the "last_step" field.
func LastStepNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldLastStep, v))
}

// LastStepIn applies the In predicate on the "last_step" field.
func LastStepIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldLastStep, vs...))
}

// LastStepNotIn applies the NotIn predicate on the "last_step" field.
func LastStepNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldLastStep, vs...))
}

// LastStepGT applies the GT predicate on the "last_step" field.
func LastStepGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldLastStep, v))
}

// LastStepGTE applies the GTE predicate on the "last_step" field.
func LastStepGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldLastStep, v))
}

// LastStepLT applies the LT predicate on the "last_step" field.
func LastStepLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldLastStep, v))
}

// LastStepLTE applies the LTE predicate on the "last_step" field.
func LastStepLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldLastStep, v))
}

// LastStepContains applies the Contains predicate on the "last_step" field.
func LastStepContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldLastStep, v))
}

// LastStepHasPrefix applies the HasPrefix predicate on the "last_step" field.
func LastStepHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldLastStep, v))
}

// LastStepHasSuffix applies the HasSuffix predicate on the "last_step" field.
func LastStepHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldLastStep, v))
}

// LastStepEqualFold applies the EqualFold predicate on the "last_step" field.
func LastStepEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldLastStep, v))
}

// LastStepContainsFold applies the ContainsFold predicate on the "last_step" field.
func LastStepContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldLastStep, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.NotPredicates(p))
}
