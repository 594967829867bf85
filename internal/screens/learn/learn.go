package learn

import (
	"context"
	"sort"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/statlab/internal/api"
	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/flow"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/router"
	"github.com/abhisek/statlab/internal/screen"
	"github.com/abhisek/statlab/internal/store"
	"github.com/abhisek/statlab/internal/tutor"
	"github.com/abhisek/statlab/internal/ui/components"
	"github.com/abhisek/statlab/internal/ui/layout"
)

const explainPollInterval = 200 * time.Millisecond

// LearnScreen drives one lesson from slide deck through summary and quiz to
// the result, backed by a flow.Controller.
type LearnScreen struct {
	ctrl     *flow.Controller
	tutorSvc *tutor.Service

	questions []quiz.Question // by engine order, kept for tutor lookups

	// quiz input state
	mcSelected    int
	input         components.TextInput
	matchKeys     []string
	matchValues   []string
	matchAssign   map[string]string
	matchKeyIdx   int
	showFeedback  bool
	lastCorrect   bool
	feedbackQ     quiz.Question // question the feedback overlay refers to
	scoring       bool

	// result state
	canAdvance  bool
	missed      []quiz.AnswerRecord
	missedIdx   int
	explanation *tutor.Explanation
	explaining  bool

	showQuitConfirm bool
	errMsg          string
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.EscHandler = (*LearnScreen)(nil)

// New creates a LearnScreen for the lesson. tutorSvc may be nil; the
// explanation feature is simply hidden then.
func New(lesson catalog.Lesson, client *api.Client, progressSvc *progress.Service, events store.EventRepo, tutorSvc *tutor.Service, quizCfg quiz.Config) *LearnScreen {
	var cc flow.ContentClient
	if client != nil {
		cc = client
	}
	var sink flow.EventSink
	if events != nil {
		sink = events
	}
	return &LearnScreen{
		ctrl:     flow.New(lesson, cc, progressSvc, sink, quizCfg),
		tutorSvc: tutorSvc,
	}
}

func (s *LearnScreen) Init() tea.Cmd {
	ctrl := s.ctrl
	return func() tea.Msg {
		return contentReadyMsg{Content: ctrl.FetchContent(context.Background())}
	}
}

func (s *LearnScreen) Title() string {
	return s.ctrl.Lesson().Title
}

// HandlesEsc claims the Esc key so leaving mid-lesson goes through the quit
// confirmation instead of an immediate pop.
func (s *LearnScreen) HandlesEsc() bool {
	return true
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lesson"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	switch s.ctrl.Phase() {
	case flow.PhaseLesson:
		return []layout.KeyHint{
			{Key: "←→", Description: "Slides"},
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Leave"},
		}
	case flow.PhaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start quiz"},
			{Key: "Esc", Description: "Leave"},
		}
	case flow.PhaseQuiz:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	case flow.PhaseResult:
		hints := []layout.KeyHint{}
		if s.ctrl.Engine() != nil && s.ctrl.Engine().CanRetry() {
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry"})
		}
		if s.canAdvance {
			hints = append(hints, layout.KeyHint{Key: "N", Description: "Next lesson"})
		}
		if s.tutorSvc != nil && len(s.missed) > 0 {
			hints = append(hints, layout.KeyHint{Key: "E", Description: "Explain"})
		}
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
		return hints
	}
	return nil
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contentReadyMsg:
		s.questions = msg.Content.Questions
		s.ctrl.ApplyContent(msg.Content)
		return s, nil

	case quizScoredMsg:
		s.scoring = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.canAdvance = msg.CanAdvance
		s.collectMissed()
		return s, nil

	case explainPollMsg:
		if s.tutorSvc == nil || !s.explaining {
			return s, nil
		}
		if expl, ok := s.tutorSvc.ConsumeExplanation(); ok {
			s.explanation = expl
			s.explaining = false
			return s, nil
		}
		return s, pollExplainCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the text input when it is the active control.
	if s.ctrl.Phase() == flow.PhaseQuiz && !s.showFeedback && s.activeQuestionType() == quiz.TypeFill {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			return s.leave()
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		if s.ctrl.Phase() == flow.PhaseResult {
			return s.leave()
		}
		s.showQuitConfirm = true
		return s, nil
	}

	switch s.ctrl.Phase() {
	case flow.PhaseLesson:
		return s.handleLessonKey(key)
	case flow.PhaseSummary:
		if key == "enter" {
			return s.startQuiz()
		}
	case flow.PhaseQuiz:
		return s.handleQuizKey(msg)
	case flow.PhaseResult:
		return s.handleResultKey(key)
	}
	return s, nil
}

// leave tears the flow down and pops back to the caller.
func (s *LearnScreen) leave() (screen.Screen, tea.Cmd) {
	s.ctrl.Teardown()
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *LearnScreen) handleLessonKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "left", "h":
		s.ctrl.PrevSlide()
	case "right", "l":
		s.ctrl.NextSlide()
	case "enter", " ":
		if s.ctrl.DeckCompleted() {
			if err := s.ctrl.FinishLesson(context.Background()); err != nil {
				s.errMsg = err.Error()
			}
			return s, nil
		}
		s.ctrl.NextSlide()
	}
	return s, nil
}

func (s *LearnScreen) startQuiz() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.StartQuiz(context.Background()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""
	s.prepareQuestion()
	return s, s.inputInitCmd()
}

// inputInitCmd focuses the text input when the current question needs one.
func (s *LearnScreen) inputInitCmd() tea.Cmd {
	if s.activeQuestionType() == quiz.TypeFill {
		return s.input.Init()
	}
	return nil
}

// prepareQuestion resets the input state for the engine's current question,
// skipping any question that cannot actually be asked.
func (s *LearnScreen) prepareQuestion() {
	engine := s.ctrl.Engine()
	if engine == nil {
		return
	}
	for {
		q, ok := engine.Current()
		if !ok {
			return
		}
		if q.Answerable() {
			break
		}
		engine.Skip()
	}
	q, ok := engine.Current()
	if !ok {
		return
	}

	s.mcSelected = 0
	s.showFeedback = false

	switch q.Type {
	case quiz.TypeFill:
		s.input = components.NewTextInput("Type your answer...", false, 40)
	case quiz.TypeMatch:
		s.matchKeys = sortedKeys(q.CorrectPairs)
		s.matchValues = shuffledValues(q.CorrectPairs)
		s.matchAssign = make(map[string]string)
		s.matchKeyIdx = 0
	}
}

func (s *LearnScreen) activeQuestionType() quiz.QuestionType {
	engine := s.ctrl.Engine()
	if engine == nil {
		return ""
	}
	q, ok := engine.Current()
	if !ok {
		return ""
	}
	return q.Type
}

func (s *LearnScreen) handleQuizKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	engine := s.ctrl.Engine()
	if engine == nil {
		return s, nil
	}

	if s.scoring {
		return s, nil
	}

	// Feedback overlay: any key advances.
	if s.showFeedback {
		s.showFeedback = false
		if engine.Done() {
			return s.finishQuiz()
		}
		engine.Advance()
		s.prepareQuestion()
		if engine.Done() {
			return s.finishQuiz()
		}
		return s, s.inputInitCmd()
	}

	q, ok := engine.Current()
	if !ok {
		if engine.Done() {
			return s.finishQuiz()
		}
		return s, nil
	}

	key := msg.String()

	switch q.Type {
	case quiz.TypeMCQ:
		return s.handleChoiceKey(key, len(q.Choices), func() quiz.Answer {
			return quiz.Answer{Index: s.mcSelected}
		})
	case quiz.TypeTF:
		return s.handleChoiceKey(key, 2, func() quiz.Answer {
			return quiz.Answer{Bool: s.mcSelected == 0}
		})
	case quiz.TypeFill:
		if key == "enter" {
			if s.input.Value() == "" {
				return s, nil
			}
			return s.submit(quiz.Answer{Text: s.input.Value()})
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	case quiz.TypeMatch:
		return s.handleMatchKey(key)
	}
	return s, nil
}

// handleChoiceKey covers mcq and tf selection: arrows move, number keys and
// enter submit.
func (s *LearnScreen) handleChoiceKey(key string, n int, answer func() quiz.Answer) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.mcSelected > 0 {
			s.mcSelected--
		}
	case "down", "j":
		if s.mcSelected < n-1 {
			s.mcSelected++
		}
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < n {
			s.mcSelected = idx
			return s.submit(answer())
		}
	case "enter":
		return s.submit(answer())
	}
	return s, nil
}

// handleMatchKey assigns values to keys one at a time: arrows pick a value,
// enter locks it for the current key, and the final enter submits the pairs.
func (s *LearnScreen) handleMatchKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "up", "k":
		if s.mcSelected > 0 {
			s.mcSelected--
		}
	case "down", "j":
		if s.mcSelected < len(s.matchValues)-1 {
			s.mcSelected++
		}
	case "enter":
		if s.matchKeyIdx < len(s.matchKeys) {
			k := s.matchKeys[s.matchKeyIdx]
			s.matchAssign[k] = s.matchValues[s.mcSelected]
			s.matchKeyIdx++
			s.mcSelected = 0
		}
		if s.matchKeyIdx >= len(s.matchKeys) {
			pairs := make(map[string]string, len(s.matchAssign))
			for k, v := range s.matchAssign {
				pairs[k] = v
			}
			return s.submit(quiz.Answer{Pairs: pairs})
		}
	}
	return s, nil
}

func (s *LearnScreen) submit(a quiz.Answer) (screen.Screen, tea.Cmd) {
	engine := s.ctrl.Engine()
	if engine == nil {
		return s, nil
	}
	// Capture before Submit: the engine stops serving the question once the
	// attempt turns terminal, but the feedback overlay still shows it.
	s.feedbackQ, _ = engine.Current()
	s.lastCorrect = engine.Submit(a)
	s.showFeedback = true
	return s, nil
}

// finishQuiz scores the attempt off the update loop; the controller also
// records events and reports upstream in the same pass.
func (s *LearnScreen) finishQuiz() (screen.Screen, tea.Cmd) {
	s.scoring = true
	ctrl := s.ctrl
	return s, func() tea.Msg {
		ctx := context.Background()
		outcome, err := ctrl.FinishQuiz(ctx)
		canAdvance, _ := ctrl.CanAdvance(ctx)
		return quizScoredMsg{Outcome: outcome, CanAdvance: canAdvance, Err: err}
	}
}

// collectMissed indexes the incorrect answers for the result screen.
func (s *LearnScreen) collectMissed() {
	s.missed = nil
	s.missedIdx = 0
	s.explanation = nil
	for _, a := range s.ctrl.Result().Answers {
		if !a.IsCorrect {
			s.missed = append(s.missed, a)
		}
	}
}

func (s *LearnScreen) handleResultKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "r", "R":
		if err := s.ctrl.Retry(); err == nil {
			s.errMsg = ""
			s.explanation = nil
			s.explaining = false
			s.prepareQuestion()
			return s, s.inputInitCmd()
		}
	case "n", "N":
		if !s.canAdvance {
			return s, nil
		}
		next, ok := s.ctrl.NextLesson()
		if !ok {
			return s, nil
		}
		return s.advanceTo(next)
	case "up", "k":
		if s.missedIdx > 0 {
			s.missedIdx--
			s.explanation = nil
		}
	case "down", "j":
		if s.missedIdx < len(s.missed)-1 {
			s.missedIdx++
			s.explanation = nil
		}
	case "e", "E":
		return s, s.requestExplanation()
	case "enter":
		return s.leave()
	}
	return s, nil
}

// advanceTo swaps this screen for a fresh one on the next lesson.
func (s *LearnScreen) advanceTo(next catalog.Lesson) (screen.Screen, tea.Cmd) {
	s.ctrl.Teardown()
	replacement := &LearnScreen{
		ctrl:     s.ctrl.Successor(next),
		tutorSvc: s.tutorSvc,
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: replacement}
	}
}

// requestExplanation asks the tutor about the selected missed question.
func (s *LearnScreen) requestExplanation() tea.Cmd {
	if s.tutorSvc == nil || s.explaining || len(s.missed) == 0 {
		return nil
	}
	rec := s.missed[s.missedIdx]
	q, ok := s.questionByID(rec.QuestionID)
	if !ok {
		return nil
	}
	s.explanation = nil
	s.explaining = true
	s.tutorSvc.RequestExplanation(context.Background(), tutor.Input{
		LessonTitle:   s.ctrl.Lesson().Title,
		Stem:          q.Stem,
		LearnerAnswer: rec.UserAnswer,
		CorrectAnswer: rec.CorrectAnswer,
		ContentNote:   q.Explanation,
	})
	return pollExplainCmd()
}

func (s *LearnScreen) questionByID(id string) (quiz.Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return quiz.Question{}, false
}

func pollExplainCmd() tea.Cmd {
	return tea.Tick(explainPollInterval, func(t time.Time) tea.Msg {
		return explainPollMsg(t)
	})
}

func sortedKeys(pairs map[string]string) []string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// shuffledValues returns the pair values in a deterministic scrambled order:
// sorted by value, which detaches them from key order without needing a
// random source in the view layer.
func shuffledValues(pairs map[string]string) []string {
	vals := make([]string, 0, len(pairs))
	for _, v := range pairs {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals
}
