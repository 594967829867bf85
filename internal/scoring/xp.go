package scoring

import (
	"math"

	"github.com/abhisek/statlab/internal/quiz"
)

// BaseXPPerCorrect is the XP value of one correct answer before the tier
// multiplier applies.
const BaseXPPerCorrect = 10

// XP computes the XP award for a number of correct answers under a tier.
func XP(baseXPPerCorrect, correctAnswers int, tier Tier) int {
	if baseXPPerCorrect <= 0 {
		baseXPPerCorrect = BaseXPPerCorrect
	}
	if correctAnswers < 0 {
		correctAnswers = 0
	}
	return int(math.Round(float64(baseXPPerCorrect) * float64(correctAnswers) * tier.Multiplier))
}

// Outcome bundles everything the result screen shows for one quiz attempt.
type Outcome struct {
	Tier      TierID
	Name      string
	Message   string
	Tips      []string
	XPAwarded int
	Passed    bool
}

// Score derives the full outcome for a quiz result against a pass threshold.
func Score(result quiz.Result, passThreshold int) Outcome {
	tier := Classify(result.Score)
	return Outcome{
		Tier:      tier.ID,
		Name:      tier.Name,
		Message:   tier.Message,
		Tips:      tier.Tips,
		XPAwarded: XP(BaseXPPerCorrect, result.CorrectAnswers, tier),
		Passed:    result.Score >= passThreshold,
	}
}
