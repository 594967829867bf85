package quiz

import (
	"testing"
	"time"
)

func fiveQuestions() []Question {
	return []Question{
		{ID: "q1", Type: TypeMCQ, Stem: "Which is the median of 1, 3, 5?", Choices: []string{"1", "3", "5"}, CorrectIndex: 1},
		{ID: "q2", Type: TypeTF, Stem: "The mean is robust to outliers.", CorrectBool: false},
		{ID: "q3", Type: TypeFill, Stem: "The square root of variance is the standard ____.", CorrectText: "deviation"},
		{ID: "q4", Type: TypeMCQ, Stem: "P(heads) for a fair coin?", Choices: []string{"0.25", "0.5", "1"}, CorrectIndex: 1},
		{ID: "q5", Type: TypeTF, Stem: "A sample is a subset of a population.", CorrectBool: true},
	}
}

func correctAnswers() []Answer {
	return []Answer{
		{Index: 1},
		{Bool: false},
		{Text: "deviation"},
		{Index: 1},
		{Bool: true},
	}
}

func runQuiz(t *testing.T, e *Engine, answers []Answer) Result {
	t.Helper()
	for _, a := range answers {
		if _, ok := e.Current(); !ok {
			break
		}
		e.Submit(a)
		if e.Done() {
			break
		}
		e.Advance()
	}
	return e.Evaluate()
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		a    Answer
		want bool
	}{
		{"mcq correct index", Question{Type: TypeMCQ, Choices: []string{"a", "b"}, CorrectIndex: 1}, Answer{Index: 1}, true},
		{"mcq wrong index", Question{Type: TypeMCQ, Choices: []string{"a", "b"}, CorrectIndex: 1}, Answer{Index: 0}, false},
		{"tf correct", Question{Type: TypeTF, CorrectBool: true}, Answer{Bool: true}, true},
		{"tf wrong", Question{Type: TypeTF, CorrectBool: true}, Answer{Bool: false}, false},
		{"fill exact", Question{Type: TypeFill, CorrectText: "median"}, Answer{Text: "median"}, true},
		{"fill case and space", Question{Type: TypeFill, CorrectText: "median"}, Answer{Text: "  MEDIAN  "}, true},
		{"fill wrong", Question{Type: TypeFill, CorrectText: "median"}, Answer{Text: "mean"}, false},
		{"match correct", Question{Type: TypeMatch, CorrectPairs: map[string]string{"mean": "center", "sd": "spread"}},
			Answer{Pairs: map[string]string{"mean": "center", "sd": "spread"}}, true},
		{"match one off", Question{Type: TypeMatch, CorrectPairs: map[string]string{"mean": "center", "sd": "spread"}},
			Answer{Pairs: map[string]string{"mean": "spread", "sd": "center"}}, false},
		{"match missing pair", Question{Type: TypeMatch, CorrectPairs: map[string]string{"mean": "center", "sd": "spread"}},
			Answer{Pairs: map[string]string{"mean": "center"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.q, tt.a); got != tt.want {
				t.Errorf("CheckAnswer = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllCorrect(t *testing.T) {
	e := NewEngine(fiveQuestions(), DefaultConfig())
	result := runQuiz(t, e, correctAnswers())

	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}
	if result.TotalQuestions != 5 || result.CorrectAnswers != 5 {
		t.Errorf("totals = %d/%d, want 5/5", result.CorrectAnswers, result.TotalQuestions)
	}
	if result.HeartsLeft != 5 {
		t.Errorf("HeartsLeft = %d, want untouched 5", result.HeartsLeft)
	}
	if result.BestStreak != 5 {
		t.Errorf("BestStreak = %d, want 5", result.BestStreak)
	}
	if result.Exhausted {
		t.Error("Exhausted should be false")
	}
}

func TestThreeOfFive(t *testing.T) {
	answers := correctAnswers()
	answers[1].Bool = true // wrong
	answers[3].Index = 0   // wrong

	e := NewEngine(fiveQuestions(), DefaultConfig())
	result := runQuiz(t, e, answers)

	if result.Score != 60 {
		t.Errorf("Score = %d, want 60", result.Score)
	}
	if result.HeartsLeft != 3 {
		t.Errorf("HeartsLeft = %d, want 3", result.HeartsLeft)
	}
	if result.TotalQuestions != 5 || result.CorrectAnswers != 3 {
		t.Errorf("totals = %d/%d, want 3/5", result.CorrectAnswers, result.TotalQuestions)
	}
}

func TestHeartsExhaustionTerminatesEarly(t *testing.T) {
	e := NewEngine(fiveQuestions(), Config{Hearts: 2, AllowRetry: true})

	e.Submit(Answer{Index: 0}) // wrong
	if !e.Advance() {
		t.Fatal("attempt should continue with one heart left")
	}
	e.Submit(Answer{Bool: true}) // wrong

	if !e.Done() || !e.Exhausted() {
		t.Fatal("attempt should be terminal after two misses with two hearts")
	}

	result := e.Evaluate()
	if result.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2 (attempted only)", result.TotalQuestions)
	}
	if result.HeartsLeft != 0 {
		t.Errorf("HeartsLeft = %d, want 0", result.HeartsLeft)
	}
	if !result.Exhausted {
		t.Error("result should be marked exhausted")
	}
	if !e.CanRetry() {
		t.Error("retry should be on offer")
	}
}

func TestHeartsNeverGoNegative(t *testing.T) {
	q := fiveQuestions()
	e := NewEngine(q, Config{Hearts: 1})

	for i := 0; i < 10; i++ {
		e.Submit(Answer{Index: 99})
		e.Advance()
	}
	if e.Hearts() != 0 {
		t.Errorf("Hearts = %d, want floor 0", e.Hearts())
	}
}

func TestStreakTracking(t *testing.T) {
	answers := correctAnswers()
	answers[2].Text = "wrong" // breaks the streak at question 3

	e := NewEngine(fiveQuestions(), DefaultConfig())
	for i, a := range answers {
		e.Submit(a)
		switch i {
		case 1:
			if e.Streak() != 2 {
				t.Errorf("streak after q2 = %d, want 2", e.Streak())
			}
		case 2:
			if e.Streak() != 0 {
				t.Errorf("streak after miss = %d, want 0", e.Streak())
			}
		}
		e.Advance()
	}
	if e.BestStreak() != 2 {
		t.Errorf("BestStreak = %d, want 2", e.BestStreak())
	}
}

func TestScoringIsIdempotentUnderReplay(t *testing.T) {
	answers := correctAnswers()
	answers[0].Index = 2
	answers[4].Bool = false

	var scores []int
	for i := 0; i < 3; i++ {
		e := NewEngine(fiveQuestions(), DefaultConfig())
		scores = append(scores, runQuiz(t, e, answers).Score)
	}
	if scores[0] != scores[1] || scores[1] != scores[2] {
		t.Errorf("replay produced differing scores: %v", scores)
	}
}

func TestDoubleSubmitIsNoop(t *testing.T) {
	e := NewEngine(fiveQuestions(), DefaultConfig())
	e.Submit(Answer{Index: 1})
	if e.Submit(Answer{Index: 0}) {
		t.Error("second submit should be rejected")
	}
	if len(e.Answers()) != 1 {
		t.Errorf("answer log has %d entries, want 1", len(e.Answers()))
	}
}

func TestReset(t *testing.T) {
	e := NewEngine(fiveQuestions(), Config{Hearts: 2, AllowRetry: true})
	e.Submit(Answer{Index: 0})
	e.Advance()
	e.Submit(Answer{Bool: true})
	if !e.Exhausted() {
		t.Fatal("setup: should be exhausted")
	}

	e.Reset()

	if e.Hearts() != 2 || e.Index() != 0 || e.Streak() != 0 || len(e.Answers()) != 0 {
		t.Errorf("reset incomplete: hearts=%d idx=%d streak=%d answers=%d",
			e.Hearts(), e.Index(), e.Streak(), len(e.Answers()))
	}
	if e.Done() {
		t.Error("reset attempt should not be done")
	}
}

func TestSkipUnanswerableQuestion(t *testing.T) {
	qs := fiveQuestions()
	qs[0] = Question{ID: "broken", Type: TypeMCQ, Stem: "no choices arrived"}
	e := NewEngine(qs, DefaultConfig())

	q, _ := e.Current()
	if q.Answerable() {
		t.Fatal("setup: question should be unanswerable")
	}
	e.Skip()

	if e.Total() != 4 {
		t.Errorf("Total = %d, want 4 after skip", e.Total())
	}
	q, ok := e.Current()
	if !ok || q.ID != "q2" {
		t.Errorf("current after skip = %q, %v", q.ID, ok)
	}
	if e.Hearts() != 5 {
		t.Errorf("skip cost a heart: %d", e.Hearts())
	}
}

func TestTimeSpentNeverNegative(t *testing.T) {
	e := NewEngine(fiveQuestions(), DefaultConfig())
	// Simulate a clock that jumped backwards.
	start := time.Now()
	e.started = start.Add(time.Hour)
	e.now = func() time.Time { return start }

	if got := e.Evaluate().TimeSpent; got != 0 {
		t.Errorf("TimeSpent = %d, want clamped 0", got)
	}
}

func TestAnswerLogMatchesTotals(t *testing.T) {
	answers := correctAnswers()
	answers[1].Bool = true

	e := NewEngine(fiveQuestions(), DefaultConfig())
	result := runQuiz(t, e, answers)

	correct, incorrect := 0, 0
	for _, r := range result.Answers {
		if r.IsCorrect {
			correct++
		} else {
			incorrect++
		}
	}
	if correct+incorrect != result.TotalQuestions {
		t.Errorf("answers %d+%d != total %d", correct, incorrect, result.TotalQuestions)
	}
	if correct != result.CorrectAnswers {
		t.Errorf("log correct = %d, result = %d", correct, result.CorrectAnswers)
	}
}
