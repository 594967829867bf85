package flow

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/statlab/internal/api"
	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/slides"
	"github.com/abhisek/statlab/internal/store"
)

type fakeClient struct {
	lesson      *api.LessonRecord
	lessonErr   error
	questions   []json.RawMessage
	questionErr error
	submitted   int
	completed   int
}

func (f *fakeClient) Lesson(ctx context.Context, id string) (*api.LessonRecord, error) {
	return f.lesson, f.lessonErr
}

func (f *fakeClient) QuizQuestions(ctx context.Context, lessonID string) ([]json.RawMessage, error) {
	return f.questions, f.questionErr
}

func (f *fakeClient) SubmitQuiz(ctx context.Context, lessonID string, answers []api.AnswerSubmission) (*api.SubmissionResult, error) {
	f.submitted++
	return &api.SubmissionResult{}, nil
}

func (f *fakeClient) CompleteLesson(ctx context.Context, lessonID string, report api.CompletionReport) error {
	f.completed++
	return nil
}

type fakeEvents struct {
	quizzes []store.QuizEventData
	xp      []store.XPEventData
}

func (f *fakeEvents) AppendQuiz(ctx context.Context, data store.QuizEventData) error {
	f.quizzes = append(f.quizzes, data)
	return nil
}

func (f *fakeEvents) AppendXP(ctx context.Context, data store.XPEventData) error {
	f.xp = append(f.xp, data)
	return nil
}

func onlineClient() *fakeClient {
	return &fakeClient{
		lesson: &api.LessonRecord{
			ID:    "mean-median-mode",
			Title: "Mean, Median & Mode",
			Sections: []api.Section{
				{Type: "concept", Title: "Center", Content: "The mean averages all values."},
				{Type: "example", Title: "Example", Content: "For example, the mean of 2 and 4 is 3."},
			},
		},
		questions: []json.RawMessage{
			json.RawMessage(`{"id":"q1","question":"Mean of 2 and 4?","options":["2","3","4"],"correct_answer":1}`),
			json.RawMessage(`{"id":"q2","question":"The median resists outliers.","type":"true_false","correct_answer":true}`),
			json.RawMessage(`{"id":"q3","question":"Most frequent value is the ____","type":"fill_blank","correct_answer":"mode"}`),
		},
	}
}

func newController(t *testing.T, client ContentClient, events EventSink) *Controller {
	t.Helper()
	lesson, ok := catalog.Get("mean-median-mode")
	if !ok {
		t.Fatal("catalog lesson missing")
	}
	svc := progress.NewService(progress.NewMemoryStore(), progress.DefaultConfig())
	return New(lesson, client, svc, events, quiz.DefaultConfig())
}

func loadController(t *testing.T, c *Controller) {
	t.Helper()
	c.ApplyContent(c.FetchContent(context.Background()))
	if c.Phase() != PhaseLesson {
		t.Fatalf("phase after load = %d, want PhaseLesson", c.Phase())
	}
}

func walkDeck(t *testing.T, c *Controller) {
	t.Helper()
	for c.NextSlide() {
	}
	if !c.DeckCompleted() {
		t.Fatal("deck not completed after walking all slides")
	}
}

func TestFlowOpensAtLessonStep(t *testing.T) {
	c := newController(t, onlineClient(), &fakeEvents{})
	if c.Phase() != PhaseLoading {
		t.Fatalf("initial phase = %d, want PhaseLoading", c.Phase())
	}
	loadController(t, c)

	if c.Offline() {
		t.Error("offline flag set with a healthy backend")
	}
	if slide, ok := c.CurrentSlide(); !ok || slide.Type != slides.SlideIntro {
		t.Errorf("first slide = %+v, want intro", slide)
	}
	if got := c.StepProgress(); got != 25 {
		t.Errorf("step progress = %d, want 25", got)
	}
}

func TestFullPassThroughAwardsXPAndCredit(t *testing.T) {
	client := onlineClient()
	events := &fakeEvents{}
	c := newController(t, client, events)
	loadController(t, c)
	ctx := context.Background()

	walkDeck(t, c)
	if err := c.FinishLesson(ctx); err != nil {
		t.Fatalf("finish lesson: %v", err)
	}
	if c.Phase() != PhaseSummary {
		t.Fatalf("phase = %d, want PhaseSummary", c.Phase())
	}
	if len(c.SummaryPoints()) == 0 {
		t.Error("summary has no points")
	}

	if err := c.StartQuiz(ctx); err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	if c.AttemptID() == "" {
		t.Error("attempt id not assigned")
	}

	e := c.Engine()
	answers := []quiz.Answer{{Index: 1}, {Bool: true}, {Text: "mode"}}
	for _, a := range answers {
		if !e.Submit(a) {
			t.Fatalf("submit rejected for %+v", a)
		}
		e.Advance()
	}

	outcome, err := c.FinishQuiz(ctx)
	if err != nil {
		t.Fatalf("finish quiz: %v", err)
	}
	if c.Phase() != PhaseResult {
		t.Fatalf("phase = %d, want PhaseResult", c.Phase())
	}
	if c.Result().Score != 100 {
		t.Errorf("score = %d, want 100", c.Result().Score)
	}
	if !outcome.Passed {
		t.Error("perfect attempt not passed")
	}
	if outcome.XPAwarded <= 0 {
		t.Errorf("xp = %d, want > 0", outcome.XPAwarded)
	}

	if len(events.quizzes) != 1 || len(events.xp) != 1 {
		t.Fatalf("events = %d quiz, %d xp; want 1 and 1", len(events.quizzes), len(events.xp))
	}
	if events.quizzes[0].AttemptID != c.AttemptID() || events.xp[0].AttemptID != c.AttemptID() {
		t.Error("events not keyed to the attempt id")
	}
	if client.submitted != 1 || client.completed != 1 {
		t.Errorf("backend reports = %d submit, %d complete; want 1 and 1", client.submitted, client.completed)
	}

	ok, err := c.CanAdvance(ctx)
	if err != nil {
		t.Fatalf("can advance: %v", err)
	}
	if !ok {
		t.Error("cannot advance after an attempted quiz")
	}
	next, found := c.NextLesson()
	if !found || next.Order != c.Lesson().Order+1 {
		t.Errorf("next lesson = %+v", next)
	}
}

func TestQuizCannotStartFromDeck(t *testing.T) {
	c := newController(t, onlineClient(), &fakeEvents{})
	loadController(t, c)
	ctx := context.Background()

	if err := c.StartQuiz(ctx); err != ErrStepOrder {
		t.Fatalf("StartQuiz from lesson phase: err = %v, want ErrStepOrder", err)
	}

	// The gate agrees: without a completed deck the summary is unreachable.
	ok, err := c.CanJump(ctx, progress.StepSummary)
	if err != nil {
		t.Fatalf("can jump: %v", err)
	}
	if ok {
		t.Error("summary reachable before the deck was completed")
	}
}

func TestFinishQuizRequiresTerminalEngine(t *testing.T) {
	c := newController(t, onlineClient(), &fakeEvents{})
	loadController(t, c)
	ctx := context.Background()

	walkDeck(t, c)
	if err := c.FinishLesson(ctx); err != nil {
		t.Fatalf("finish lesson: %v", err)
	}
	if err := c.StartQuiz(ctx); err != nil {
		t.Fatalf("start quiz: %v", err)
	}

	if _, err := c.FinishQuiz(ctx); err != ErrStepOrder {
		t.Fatalf("finish with questions pending: err = %v, want ErrStepOrder", err)
	}
}

func TestExhaustionYieldsPartialResult(t *testing.T) {
	events := &fakeEvents{}
	lesson, _ := catalog.Get("mean-median-mode")
	svc := progress.NewService(progress.NewMemoryStore(), progress.DefaultConfig())
	c := New(lesson, onlineClient(), svc, events, quiz.Config{Hearts: 1, AllowRetry: true})
	loadController(t, c)
	ctx := context.Background()

	walkDeck(t, c)
	if err := c.FinishLesson(ctx); err != nil {
		t.Fatalf("finish lesson: %v", err)
	}
	if err := c.StartQuiz(ctx); err != nil {
		t.Fatalf("start quiz: %v", err)
	}

	// One wrong answer burns the only heart.
	c.Engine().Submit(quiz.Answer{Index: 0})
	if !c.Engine().Exhausted() {
		t.Fatal("engine not exhausted after losing the last heart")
	}

	outcome, err := c.FinishQuiz(ctx)
	if err != nil {
		t.Fatalf("finish quiz: %v", err)
	}
	res := c.Result()
	if !res.Exhausted {
		t.Error("result not marked exhausted")
	}
	if res.TotalQuestions != 1 {
		t.Errorf("total questions = %d, want 1 (attempted only)", res.TotalQuestions)
	}
	if outcome.Passed {
		t.Error("exhausted zero-score attempt marked passed")
	}

	// The attempt still counts for the soft lock.
	p, err := svc.Get(ctx, "mean-median-mode")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if !p.QuizAttempted {
		t.Error("exhausted attempt not recorded")
	}
}

func TestRetryResetsAttempt(t *testing.T) {
	c := newController(t, onlineClient(), &fakeEvents{})
	loadController(t, c)
	ctx := context.Background()

	walkDeck(t, c)
	if err := c.FinishLesson(ctx); err != nil {
		t.Fatalf("finish lesson: %v", err)
	}
	if err := c.StartQuiz(ctx); err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	firstAttempt := c.AttemptID()

	e := c.Engine()
	for i := 0; i < 3; i++ {
		e.Submit(quiz.Answer{Index: 2, Bool: false, Text: "wrong"})
		e.Advance()
	}
	if _, err := c.FinishQuiz(ctx); err != nil {
		t.Fatalf("finish quiz: %v", err)
	}

	if err := c.Retry(); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if c.Phase() != PhaseQuiz {
		t.Fatalf("phase after retry = %d, want PhaseQuiz", c.Phase())
	}
	if c.AttemptID() == firstAttempt {
		t.Error("retry reused the attempt id")
	}
	e = c.Engine()
	if e.Hearts() != quiz.DefaultConfig().Hearts || e.Index() != 0 {
		t.Errorf("engine not reset: hearts=%d index=%d", e.Hearts(), e.Index())
	}
}

func TestOfflineFallback(t *testing.T) {
	client := &fakeClient{lessonErr: api.ErrUnavailable, questionErr: api.ErrUnavailable}
	c := newController(t, client, &fakeEvents{})
	loadController(t, c)

	if !c.Offline() {
		t.Fatal("offline flag not set with an unreachable backend")
	}
	if len(c.Deck()) < 2 {
		t.Errorf("offline deck too short: %d", len(c.Deck()))
	}
	if first, _ := c.CurrentSlide(); first.Type != slides.SlideIntro {
		t.Errorf("first offline slide = %s, want intro", first.Type)
	}

	// Offline attempts are not reported upstream.
	ctx := context.Background()
	walkDeck(t, c)
	if err := c.FinishLesson(ctx); err != nil {
		t.Fatalf("finish lesson: %v", err)
	}
	if err := c.StartQuiz(ctx); err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	e := c.Engine()
	for {
		q, ok := e.Current()
		if !ok {
			break
		}
		e.Submit(quiz.Answer{Index: q.CorrectIndex, Bool: q.CorrectBool, Text: q.CorrectText})
		if !e.Advance() {
			break
		}
	}
	if _, err := c.FinishQuiz(ctx); err != nil {
		t.Fatalf("finish quiz: %v", err)
	}
	if client.submitted != 0 || client.completed != 0 {
		t.Errorf("offline attempt reported upstream: %d submit, %d complete", client.submitted, client.completed)
	}
}

func TestTeardownMakesResolutionsNoOps(t *testing.T) {
	c := newController(t, onlineClient(), &fakeEvents{})
	content := c.FetchContent(context.Background())

	c.Teardown()
	c.ApplyContent(content)

	if c.Phase() != PhaseLoading {
		t.Errorf("phase = %d, want PhaseLoading after teardown", c.Phase())
	}
	if len(c.Deck()) != 0 {
		t.Error("content applied after teardown")
	}
	if err := c.FinishLesson(context.Background()); err != ErrClosed {
		t.Errorf("FinishLesson after teardown: err = %v, want ErrClosed", err)
	}
}
