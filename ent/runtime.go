// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/statlab/ent/lessonprogress"
	"github.com/abhisek/statlab/ent/llmrequestevent"
	"github.com/abhisek/statlab/ent/quizevent"
	"github.com/abhisek/statlab/ent/schema"
	"github.com/abhisek/statlab/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescSlug is the schema descriptor for slug field.
	lessonprogressDescSlug := lessonprogressFields[0].Descriptor()
	// lessonprogress.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	lessonprogress.SlugValidator = lessonprogressDescSlug.Validators[0].(func(string) error)
	// lessonprogressDescViewedLesson is the schema descriptor for viewed_lesson field.
	lessonprogressDescViewedLesson := lessonprogressFields[1].Descriptor()
	// lessonprogress.DefaultViewedLesson holds the default value on creation for the viewed_lesson field.
	lessonprogress.DefaultViewedLesson = lessonprogressDescViewedLesson.Default.(bool)
	// lessonprogressDescViewedSummary is the schema descriptor for viewed_summary field.
	lessonprogressDescViewedSummary := lessonprogressFields[2].Descriptor()
	// lessonprogress.DefaultViewedSummary holds the default value on creation for the viewed_summary field.
	lessonprogress.DefaultViewedSummary = lessonprogressDescViewedSummary.Default.(bool)
	// lessonprogressDescQuizAttempted is the schema descriptor for quiz_attempted field.
	lessonprogressDescQuizAttempted := lessonprogressFields[3].Descriptor()
	// lessonprogress.DefaultQuizAttempted holds the default value on creation for the quiz_attempted field.
	lessonprogress.DefaultQuizAttempted = lessonprogressDescQuizAttempted.Default.(bool)
	// lessonprogressDescLastStep is the schema descriptor for last_step field.
	lessonprogressDescLastStep := lessonprogressFields[6].Descriptor()
	// lessonprogress.DefaultLastStep holds the default value on creation for the last_step field.
	lessonprogress.DefaultLastStep = lessonprogressDescLastStep.Default.(string)
	// lessonprogressDescUpdatedAt is the schema descriptor for updated_at field.
	lessonprogressDescUpdatedAt := lessonprogressFields[8].Descriptor()
	// lessonprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonprogress.DefaultUpdatedAt = lessonprogressDescUpdatedAt.Default.(func() time.Time)
	// lessonprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonprogress.UpdateDefaultUpdatedAt = lessonprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescLessonSlug is the schema descriptor for lesson_slug field.
	quizeventDescLessonSlug := quizeventFields[0].Descriptor()
	// quizevent.LessonSlugValidator is a validator for the "lesson_slug" field. It is called by the builders before save.
	quizevent.LessonSlugValidator = quizeventDescLessonSlug.Validators[0].(func(string) error)
	// quizeventDescAttemptID is the schema descriptor for attempt_id field.
	quizeventDescAttemptID := quizeventFields[1].Descriptor()
	// quizevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizevent.AttemptIDValidator = quizeventDescAttemptID.Validators[0].(func(string) error)
	// quizeventDescHeartsLeft is the schema descriptor for hearts_left field.
	quizeventDescHeartsLeft := quizeventFields[5].Descriptor()
	// quizevent.DefaultHeartsLeft holds the default value on creation for the hearts_left field.
	quizevent.DefaultHeartsLeft = quizeventDescHeartsLeft.Default.(int)
	// quizeventDescBestStreak is the schema descriptor for best_streak field.
	quizeventDescBestStreak := quizeventFields[6].Descriptor()
	// quizevent.DefaultBestStreak holds the default value on creation for the best_streak field.
	quizevent.DefaultBestStreak = quizeventDescBestStreak.Default.(int)
	// quizeventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	quizeventDescTimeSpentSecs := quizeventFields[7].Descriptor()
	// quizevent.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	quizevent.DefaultTimeSpentSecs = quizeventDescTimeSpentSecs.Default.(int)
	// quizeventDescExhausted is the schema descriptor for exhausted field.
	quizeventDescExhausted := quizeventFields[8].Descriptor()
	// quizevent.DefaultExhausted holds the default value on creation for the exhausted field.
	quizevent.DefaultExhausted = quizeventDescExhausted.Default.(bool)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescLessonSlug is the schema descriptor for lesson_slug field.
	xpeventDescLessonSlug := xpeventFields[0].Descriptor()
	// xpevent.LessonSlugValidator is a validator for the "lesson_slug" field. It is called by the builders before save.
	xpevent.LessonSlugValidator = xpeventDescLessonSlug.Validators[0].(func(string) error)
	// xpeventDescAttemptID is the schema descriptor for attempt_id field.
	xpeventDescAttemptID := xpeventFields[1].Descriptor()
	// xpevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	xpevent.AttemptIDValidator = xpeventDescAttemptID.Validators[0].(func(string) error)
	// xpeventDescTier is the schema descriptor for tier field.
	xpeventDescTier := xpeventFields[2].Descriptor()
	// xpevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	xpevent.TierValidator = xpeventDescTier.Validators[0].(func(string) error)
	// xpeventDescAmount is the schema descriptor for amount field.
	xpeventDescAmount := xpeventFields[3].Descriptor()
	// xpevent.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	xpevent.AmountValidator = xpeventDescAmount.Validators[0].(func(int) error)
}
