package store

import (
	"context"
	"time"
)

// AnswerData is the per-question outcome recorded with a quiz event.
type AnswerData struct {
	QuestionID string
	Correct    bool
	TimeMs     int64
}

// QuizEventData captures one quiz submission.
type QuizEventData struct {
	LessonSlug     string
	AttemptID      string
	Score          int
	TotalQuestions int
	CorrectAnswers int
	HeartsLeft     int
	BestStreak     int
	TimeSpentSecs  int
	Exhausted      bool
	Passed         bool
	Answers        []AnswerData
}

// QuizAttempt is a stored quiz event with its timestamp, as read back for
// history views.
type QuizAttempt struct {
	QuizEventData
	Timestamp time.Time
}

// XPEventData captures one XP award.
type XPEventData struct {
	LessonSlug string
	AttemptID  string
	Tier       string
	Amount     int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsageStats aggregates LLM request events by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates LLM request events by model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and read access to domain events. Events are
// append-only; progress resets leave them in place as history.
type EventRepo interface {
	// AppendQuiz records a quiz submission.
	AppendQuiz(ctx context.Context, data QuizEventData) error

	// AppendXP records an XP award.
	AppendXP(ctx context.Context, data XPEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// TotalXP returns the sum of all XP awards.
	TotalXP(ctx context.Context) (int, error)

	// AttemptCount returns the number of quiz submissions for a lesson.
	AttemptCount(ctx context.Context, lessonSlug string) (int, error)

	// RecentAttempts returns the most recent quiz submissions, newest first.
	RecentAttempts(ctx context.Context, limit int) ([]QuizAttempt, error)

	// LLMUsageByPurpose aggregates LLM request events per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates LLM request events per served model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
