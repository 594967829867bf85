// Package flow drives one lesson through its four steps: slide deck, summary,
// quiz, result. The controller is pure state: no UI imports, loading exposed
// as data, and every transition guarded by the progress gates. Screens call
// into it from the update loop; content fetches run off-loop and resolve
// through ApplyContent, which becomes a no-op once the controller is torn
// down.
package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/statlab/internal/api"
	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/scoring"
	"github.com/abhisek/statlab/internal/slides"
	"github.com/abhisek/statlab/internal/store"
)

// Phase is the controller's current step in the lesson flow.
type Phase int

const (
	PhaseLoading Phase = iota // content fetch in flight
	PhaseLesson               // slide deck
	PhaseSummary              // recap before the quiz
	PhaseQuiz                 // hearts-gated quiz attempt
	PhaseResult               // tier, XP, retry/advance
)

// Step maps a phase to its progress step; PhaseLoading has none.
func (p Phase) Step() (progress.Step, bool) {
	switch p {
	case PhaseLesson:
		return progress.StepLesson, true
	case PhaseSummary:
		return progress.StepSummary, true
	case PhaseQuiz:
		return progress.StepQuiz, true
	case PhaseResult:
		return progress.StepResult, true
	}
	return "", false
}

// ContentClient is the backend surface the controller consumes. *api.Client
// satisfies it; tests inject fakes.
type ContentClient interface {
	Lesson(ctx context.Context, id string) (*api.LessonRecord, error)
	QuizQuestions(ctx context.Context, lessonID string) ([]json.RawMessage, error)
	SubmitQuiz(ctx context.Context, lessonID string, answers []api.AnswerSubmission) (*api.SubmissionResult, error)
	CompleteLesson(ctx context.Context, lessonID string, report api.CompletionReport) error
}

// EventSink records quiz and XP events. store.EventRepo satisfies it.
type EventSink interface {
	AppendQuiz(ctx context.Context, data store.QuizEventData) error
	AppendXP(ctx context.Context, data store.XPEventData) error
}

// ErrStepOrder is returned when a transition is requested out of order, e.g.
// starting the quiz straight from the slide deck.
var ErrStepOrder = errors.New("flow: step not reachable yet")

// ErrClosed is returned by transitions on a torn-down controller.
var ErrClosed = errors.New("flow: controller closed")

// Controller owns the runtime state of one lesson flow.
type Controller struct {
	lesson   catalog.Lesson
	client   ContentClient
	progress *progress.Service
	events   EventSink
	quizCfg  quiz.Config

	phase   Phase
	offline bool
	closed  bool

	deck     []slides.Slide
	slideIdx int

	engine    *quiz.Engine
	questions []quiz.Question
	attemptID string

	result  quiz.Result
	outcome scoring.Outcome

	newID func() string
}

// New creates a controller for lesson, opening in the loading phase. events
// may be nil when no database is available; event logging is then skipped.
func New(lesson catalog.Lesson, client ContentClient, svc *progress.Service, events EventSink, quizCfg quiz.Config) *Controller {
	return &Controller{
		lesson:   lesson,
		client:   client,
		progress: svc,
		events:   events,
		quizCfg:  quizCfg,
		phase:    PhaseLoading,
		newID:    uuid.NewString,
	}
}

// Lesson returns the catalog entry this flow is running.
func (c *Controller) Lesson() catalog.Lesson { return c.lesson }

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Offline reports whether canned content was substituted for the backend.
// Screens render it as a banner; it never blocks the flow.
func (c *Controller) Offline() bool { return c.offline }

// StepProgress returns the display percentage for the current phase:
// 25/50/75/100 across lesson/summary/quiz/result, 0 while loading.
func (c *Controller) StepProgress() int {
	step, ok := c.phase.Step()
	if !ok {
		return 0
	}
	return progress.StepProgress(step)
}

// CanJump reports whether the progress gates allow entering step for this
// lesson, independent of the controller's current phase. A summary jump
// before the deck was completed fails here.
func (c *Controller) CanJump(ctx context.Context, step progress.Step) (bool, error) {
	p, err := c.progress.Get(ctx, c.lesson.Slug)
	if err != nil {
		return false, err
	}
	return progress.CanAdvanceToStep(step, p), nil
}

// Teardown closes the controller. Later ApplyContent calls and transitions
// are no-ops, so in-flight fetches can resolve harmlessly.
func (c *Controller) Teardown() {
	c.closed = true
}

// Deck returns the generated slide deck. Empty until content is applied.
func (c *Controller) Deck() []slides.Slide { return c.deck }

// SlideIndex returns the current slide position.
func (c *Controller) SlideIndex() int { return c.slideIdx }

// CurrentSlide returns the slide under the cursor.
func (c *Controller) CurrentSlide() (slides.Slide, bool) {
	if c.slideIdx < 0 || c.slideIdx >= len(c.deck) {
		return slides.Slide{}, false
	}
	return c.deck[c.slideIdx], true
}

// NextSlide advances the deck cursor. Returns false at the last slide.
func (c *Controller) NextSlide() bool {
	if c.slideIdx+1 >= len(c.deck) {
		return false
	}
	c.slideIdx++
	return true
}

// PrevSlide moves the deck cursor back. Returns false at the first slide.
func (c *Controller) PrevSlide() bool {
	if c.slideIdx <= 0 {
		return false
	}
	c.slideIdx--
	return true
}

// DeckCompleted reports whether the cursor sits on the terminal slide.
func (c *Controller) DeckCompleted() bool {
	return len(c.deck) > 0 && c.slideIdx == len(c.deck)-1
}

// FinishLesson leaves the deck for the summary. The viewed-lesson mark is
// persisted best-effort: a storage error is returned for the banner but the
// transition still happens.
func (c *Controller) FinishLesson(ctx context.Context) error {
	if c.closed {
		return ErrClosed
	}
	if c.phase != PhaseLesson {
		return ErrStepOrder
	}
	c.phase = PhaseSummary
	if _, err := c.progress.MarkLessonViewed(ctx, c.lesson.Slug); err != nil {
		return fmt.Errorf("record lesson viewed: %w", err)
	}
	return nil
}

// StartQuiz leaves the summary for a fresh quiz attempt.
func (c *Controller) StartQuiz(ctx context.Context) error {
	if c.closed {
		return ErrClosed
	}
	if c.phase != PhaseSummary {
		return ErrStepOrder
	}
	c.engine = quiz.NewEngine(c.questions, c.quizCfg)
	c.attemptID = c.newID()
	c.phase = PhaseQuiz
	if _, err := c.progress.MarkSummaryViewed(ctx, c.lesson.Slug); err != nil {
		return fmt.Errorf("record summary viewed: %w", err)
	}
	return nil
}

// Engine returns the active quiz engine. Nil outside the quiz and result
// phases.
func (c *Controller) Engine() *quiz.Engine { return c.engine }

// AttemptID returns the UUID of the current quiz attempt.
func (c *Controller) AttemptID() string { return c.attemptID }

// FinishQuiz evaluates the attempt and moves to the result phase. It pins
// score and pass verdict in progress, appends the quiz and XP events, and
// reports the attempt to the backend best-effort (backend failures are
// dropped; local state is the source of truth).
func (c *Controller) FinishQuiz(ctx context.Context) (scoring.Outcome, error) {
	if c.closed {
		return scoring.Outcome{}, ErrClosed
	}
	if c.phase != PhaseQuiz || c.engine == nil {
		return scoring.Outcome{}, ErrStepOrder
	}
	if !c.engine.Done() {
		return scoring.Outcome{}, ErrStepOrder
	}

	c.result = c.engine.Evaluate()
	c.outcome = scoring.Score(c.result, c.progress.PassThreshold())
	c.phase = PhaseResult

	var firstErr error
	if _, err := c.progress.MarkQuizAttempted(ctx, c.lesson.Slug, c.result); err != nil {
		firstErr = fmt.Errorf("record quiz attempt: %w", err)
	}
	if err := c.appendEvents(ctx); err != nil && firstErr == nil {
		firstErr = err
	}

	c.reportToBackend(ctx)

	return c.outcome, firstErr
}

// Result returns the evaluated quiz result. Zero before the result phase.
func (c *Controller) Result() quiz.Result { return c.result }

// Outcome returns the scored outcome. Zero before the result phase.
func (c *Controller) Outcome() scoring.Outcome { return c.outcome }

// Retry resets the attempt for another run of the same quiz: full hearts,
// cleared counters, fresh attempt ID and clock.
func (c *Controller) Retry() error {
	if c.closed {
		return ErrClosed
	}
	if c.phase != PhaseResult || c.engine == nil || !c.engine.CanRetry() {
		return ErrStepOrder
	}
	c.engine.Reset()
	c.attemptID = c.newID()
	c.result = quiz.Result{}
	c.outcome = scoring.Outcome{}
	c.phase = PhaseQuiz
	return nil
}

// CanAdvance reports whether the result screen may hand off to the next
// lesson: a next lesson exists and this one has earned credit.
func (c *Controller) CanAdvance(ctx context.Context) (bool, error) {
	return c.progress.CanAdvanceToNextLesson(ctx, c.lesson.Slug)
}

// Successor creates a fresh controller for another lesson, reusing this
// controller's backend wiring and quiz configuration.
func (c *Controller) Successor(lesson catalog.Lesson) *Controller {
	return New(lesson, c.client, c.progress, c.events, c.quizCfg)
}

// NextLesson returns the catalog entry after this one.
func (c *Controller) NextLesson() (catalog.Lesson, bool) {
	return catalog.Next(c.lesson.Slug)
}

func (c *Controller) appendEvents(ctx context.Context) error {
	if c.events == nil {
		return nil
	}

	data := store.QuizEventData{
		LessonSlug:     c.lesson.Slug,
		AttemptID:      c.attemptID,
		Score:          c.result.Score,
		TotalQuestions: c.result.TotalQuestions,
		CorrectAnswers: c.result.CorrectAnswers,
		HeartsLeft:     c.result.HeartsLeft,
		BestStreak:     c.result.BestStreak,
		TimeSpentSecs:  c.result.TimeSpent,
		Exhausted:      c.result.Exhausted,
		Passed:         c.outcome.Passed,
	}
	for _, a := range c.result.Answers {
		data.Answers = append(data.Answers, store.AnswerData{
			QuestionID: a.QuestionID,
			Correct:    a.IsCorrect,
		})
	}
	if err := c.events.AppendQuiz(ctx, data); err != nil {
		return fmt.Errorf("append quiz event: %w", err)
	}

	if c.outcome.XPAwarded > 0 {
		err := c.events.AppendXP(ctx, store.XPEventData{
			LessonSlug: c.lesson.Slug,
			AttemptID:  c.attemptID,
			Tier:       string(c.outcome.Tier),
			Amount:     c.outcome.XPAwarded,
		})
		if err != nil {
			return fmt.Errorf("append xp event: %w", err)
		}
	}
	return nil
}

// reportToBackend pushes the attempt upstream. Failures are intentionally
// dropped: the backend copy is advisory, local progress already holds the
// truth, and an unreachable backend must not break the result screen.
func (c *Controller) reportToBackend(ctx context.Context) {
	if c.client == nil || c.offline {
		return
	}

	answers := make([]api.AnswerSubmission, 0, len(c.result.Answers))
	for _, a := range c.result.Answers {
		answers = append(answers, api.AnswerSubmission{
			QuestionID: a.QuestionID,
			Answer:     a.UserAnswer,
		})
	}
	_, _ = c.client.SubmitQuiz(ctx, c.lesson.Slug, answers)

	_ = c.client.CompleteLesson(ctx, c.lesson.Slug, api.CompletionReport{
		Score:            c.result.Score,
		TimeSpentSeconds: c.result.TimeSpent,
	})
}
