package learn

import (
	"time"

	"github.com/abhisek/statlab/internal/flow"
	"github.com/abhisek/statlab/internal/scoring"
)

// contentReadyMsg is sent when lesson content has been fetched.
type contentReadyMsg struct {
	Content flow.Content
}

// quizScoredMsg is sent when the finished quiz has been scored and recorded.
type quizScoredMsg struct {
	Outcome    scoring.Outcome
	CanAdvance bool
	Err        error
}

// explainPollMsg drives polling for a pending tutor explanation.
type explainPollMsg time.Time
