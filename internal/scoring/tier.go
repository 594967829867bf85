// Package scoring derives a performance tier, XP award, and feedback tips
// from a quiz result. Classification is a pure function of accuracy so
// identical scores always produce identical tiers.
package scoring

// TierID identifies a performance band.
type TierID string

const (
	TierPerfect      TierID = "perfect"
	TierOutstanding  TierID = "outstanding"
	TierGreat        TierID = "great"
	TierGood         TierID = "good"
	TierKeepTrying   TierID = "keep-trying"
	TierGettingThere TierID = "getting-there"
	TierTryAgain     TierID = "try-again"
)

// Tier is one performance band with its message, tips, and XP multiplier.
type Tier struct {
	ID         TierID
	Name       string
	Message    string
	Tips       []string
	Multiplier float64
}

// tiers is ordered highest first; Classify returns the first band whose
// lower bound the accuracy clears. Bands: 100 exact, then ten-point bands
// down to 70, two five-point-ish bands through the 50s and 60s, and one
// catch-all below 50.
var tiers = []struct {
	min  int
	tier Tier
}{
	{100, Tier{
		ID:         TierPerfect,
		Name:       "PERFECT",
		Message:    "Flawless! Every single answer correct.",
		Multiplier: 2.0,
		Tips: []string{
			"You own this topic — the next lesson is unlocked.",
			"Try explaining the idea to someone else; teaching cements it.",
		},
	}},
	{90, Tier{
		ID:         TierOutstanding,
		Name:       "OUTSTANDING",
		Message:    "Excellent work — you clearly get this.",
		Multiplier: 1.5,
		Tips: []string{
			"Review the one you missed before moving on.",
			"A perfect retry doubles your XP multiplier.",
		},
	}},
	{80, Tier{
		ID:         TierGreat,
		Name:       "GREAT",
		Message:    "Strong result. A couple of rough edges left.",
		Multiplier: 1.2,
		Tips: []string{
			"Reread the slides for the questions you missed.",
			"Check the explanations — they point at the exact gap.",
		},
	}},
	{70, Tier{
		ID:         TierGood,
		Name:       "GOOD",
		Message:    "Solid pass. The core idea is landing.",
		Multiplier: 1.0,
		Tips: []string{
			"Skim the summary once more to tighten things up.",
			"Retry later to push your score into the next band.",
		},
	}},
	{60, Tier{
		ID:         TierKeepTrying,
		Name:       "KEEP TRYING",
		Message:    "Getting close — more than half the way there.",
		Multiplier: 0.7,
		Tips: []string{
			"Go back through the formula slides slowly.",
			"Work the examples by hand before retrying.",
		},
	}},
	{50, Tier{
		ID:         TierGettingThere,
		Name:       "GETTING THERE",
		Message:    "A start, but the concept hasn't clicked yet.",
		Multiplier: 0.5,
		Tips: []string{
			"Reopen the lesson and read it end to end.",
			"Use the hints — they are free on a retry.",
		},
	}},
	{0, Tier{
		ID:         TierTryAgain,
		Name:       "TRY AGAIN",
		Message:    "Tough round. Everyone has them — reset and go again.",
		Multiplier: 0.3,
		Tips: []string{
			"Revisit the lesson before retrying the quiz.",
			"Slow down: read every choice before answering.",
		},
	}},
}

// Classify maps a 0-100 accuracy onto its performance tier. Out-of-range
// input is clamped.
func Classify(accuracy int) Tier {
	if accuracy > 100 {
		accuracy = 100
	}
	if accuracy < 0 {
		accuracy = 0
	}
	for _, band := range tiers {
		if accuracy >= band.min {
			return band.tier
		}
	}
	return tiers[len(tiers)-1].tier
}
