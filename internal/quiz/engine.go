package quiz

import (
	"math"
	"strings"
	"time"
)

// Config tunes one quiz attempt.
type Config struct {
	Hearts     int  // life budget per attempt
	AllowRetry bool // whether exhaustion offers a full reset
}

// DefaultConfig matches the product defaults: five hearts, retry allowed.
func DefaultConfig() Config {
	return Config{Hearts: 5, AllowRetry: true}
}

// Engine drives one quiz attempt. Not safe for concurrent use; exactly one
// attempt runs per lesson viewer.
type Engine struct {
	questions []Question
	cfg       Config

	idx        int
	hearts     int
	correct    int
	streak     int
	bestStreak int
	answered   bool // current question has a submitted answer
	answers    []AnswerRecord
	started    time.Time

	now func() time.Time
}

// NewEngine creates an Engine over the given questions. The attempt clock
// starts immediately.
func NewEngine(questions []Question, cfg Config) *Engine {
	if cfg.Hearts <= 0 {
		cfg.Hearts = DefaultConfig().Hearts
	}
	e := &Engine{
		questions: questions,
		cfg:       cfg,
		hearts:    cfg.Hearts,
		now:       time.Now,
	}
	e.started = e.now()
	return e
}

// CheckAnswer reports whether answer is correct for the question, using the
// per-type rule: mcq compares choice indices, tf compares booleans, fill
// compares trimmed case-insensitive text, match compares mappings pairwise.
func CheckAnswer(q Question, a Answer) bool {
	switch q.Type {
	case TypeMCQ:
		return a.Index == q.CorrectIndex
	case TypeTF:
		return a.Bool == q.CorrectBool
	case TypeFill:
		return strings.EqualFold(strings.TrimSpace(a.Text), strings.TrimSpace(q.CorrectText))
	case TypeMatch:
		if len(a.Pairs) != len(q.CorrectPairs) {
			return false
		}
		for k, want := range q.CorrectPairs {
			if a.Pairs[k] != want {
				return false
			}
		}
		return true
	}
	return false
}

// Current returns the active question. ok is false once the attempt has no
// further question to show.
func (e *Engine) Current() (Question, bool) {
	if e.Done() || e.idx >= len(e.questions) {
		return Question{}, false
	}
	return e.questions[e.idx], true
}

// Submit records an answer for the current question, updating hearts,
// streaks, and the answer log. Submitting twice for the same question or
// after termination is a no-op returning false.
func (e *Engine) Submit(a Answer) bool {
	q, ok := e.Current()
	if !ok || e.answered {
		return false
	}

	correct := CheckAnswer(q, a)
	e.answered = true
	e.answers = append(e.answers, AnswerRecord{
		QuestionID:    q.ID,
		UserAnswer:    a.text(q),
		CorrectAnswer: q.CorrectAnswerText(),
		IsCorrect:     correct,
	})

	if correct {
		e.correct++
		e.streak++
		if e.streak > e.bestStreak {
			e.bestStreak = e.streak
		}
	} else {
		if e.hearts > 0 {
			e.hearts--
		}
		e.streak = 0
	}
	return correct
}

// Advance moves to the next question after a submission. Returns false when
// the attempt is over instead.
func (e *Engine) Advance() bool {
	if !e.answered || e.Done() {
		return false
	}
	e.answered = false
	e.idx++
	return e.idx < len(e.questions)
}

// Skip drops an unanswerable question (e.g. an mcq that arrived with no
// choices) without touching hearts or counters.
func (e *Engine) Skip() {
	if e.Done() || e.idx >= len(e.questions) {
		return
	}
	e.questions = append(e.questions[:e.idx], e.questions[e.idx+1:]...)
	e.answered = false
}

// Done reports whether the attempt is terminal: hearts exhausted, or the
// last question answered.
func (e *Engine) Done() bool {
	if e.hearts == 0 || len(e.questions) == 0 {
		return true
	}
	if e.idx >= len(e.questions) {
		return true
	}
	return e.idx == len(e.questions)-1 && e.answered
}

// Exhausted reports whether the attempt ended by running out of hearts.
func (e *Engine) Exhausted() bool {
	return e.hearts == 0
}

// CanRetry reports whether a full reset is on offer after exhaustion.
func (e *Engine) CanRetry() bool {
	return e.cfg.AllowRetry
}

// Hearts returns the remaining life budget.
func (e *Engine) Hearts() int { return e.hearts }

// MaxHearts returns the configured life budget for the attempt.
func (e *Engine) MaxHearts() int { return e.cfg.Hearts }

// Streak returns the current consecutive-correct run.
func (e *Engine) Streak() int { return e.streak }

// BestStreak returns the attempt's longest consecutive-correct run.
func (e *Engine) BestStreak() int { return e.bestStreak }

// Index returns the zero-based position of the current question.
func (e *Engine) Index() int { return e.idx }

// Total returns the number of questions in the attempt.
func (e *Engine) Total() int { return len(e.questions) }

// Answers returns a copy of the answer log so far.
func (e *Engine) Answers() []AnswerRecord {
	out := make([]AnswerRecord, len(e.answers))
	copy(out, e.answers)
	return out
}

// Evaluate produces the attempt's Result. Only meaningful once Done; on
// exhaustion the result is partial and counts only attempted questions.
func (e *Engine) Evaluate() Result {
	total := len(e.questions)
	exhausted := e.hearts == 0 && len(e.answers) < total
	if exhausted {
		total = len(e.answers)
	}

	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(e.correct) / float64(total)))
	}

	elapsed := int(e.now().Sub(e.started).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}

	return Result{
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: e.correct,
		TimeSpent:      elapsed,
		Answers:        e.Answers(),
		HeartsLeft:     e.hearts,
		BestStreak:     e.bestStreak,
		Exhausted:      exhausted,
	}
}

// Reset restores the attempt to question one with full hearts, clearing
// counters and the answer log. The attempt clock restarts.
func (e *Engine) Reset() {
	e.idx = 0
	e.hearts = e.cfg.Hearts
	e.correct = 0
	e.streak = 0
	e.bestStreak = 0
	e.answered = false
	e.answers = nil
	e.started = e.now()
}
