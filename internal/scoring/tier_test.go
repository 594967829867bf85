package scoring

import (
	"testing"

	"github.com/abhisek/statlab/internal/quiz"
)

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		accuracy int
		want     TierID
		mult     float64
	}{
		{100, TierPerfect, 2.0},
		{99, TierOutstanding, 1.5},
		{90, TierOutstanding, 1.5},
		{89, TierGreat, 1.2},
		{80, TierGreat, 1.2},
		{79, TierGood, 1.0},
		{70, TierGood, 1.0},
		{69, TierKeepTrying, 0.7},
		{60, TierKeepTrying, 0.7},
		{59, TierGettingThere, 0.5},
		{50, TierGettingThere, 0.5},
		{49, TierTryAgain, 0.3},
		{45, TierTryAgain, 0.3},
		{0, TierTryAgain, 0.3},
	}
	for _, tt := range tests {
		got := Classify(tt.accuracy)
		if got.ID != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.accuracy, got.ID, tt.want)
		}
		if got.Multiplier != tt.mult {
			t.Errorf("Classify(%d) multiplier = %v, want %v", tt.accuracy, got.Multiplier, tt.mult)
		}
	}
}

func TestClassifyClampsOutOfRange(t *testing.T) {
	if Classify(150).ID != TierPerfect {
		t.Error("accuracy above 100 should clamp to perfect")
	}
	if Classify(-5).ID != TierTryAgain {
		t.Error("negative accuracy should clamp to lowest tier")
	}
}

func TestClassifyIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		a, b := Classify(73), Classify(73)
		if a.ID != b.ID || a.Message != b.Message || a.Multiplier != b.Multiplier {
			t.Fatal("classification is not deterministic")
		}
		if len(a.Tips) != len(b.Tips) {
			t.Fatal("tip list varies between calls")
		}
	}
}

func TestTiersCarryMessagesAndTips(t *testing.T) {
	for _, band := range tiers {
		if band.tier.Message == "" {
			t.Errorf("tier %q has no message", band.tier.ID)
		}
		if len(band.tier.Tips) == 0 {
			t.Errorf("tier %q has no tips", band.tier.ID)
		}
	}
}

func TestXP(t *testing.T) {
	tests := []struct {
		name    string
		base    int
		correct int
		tier    Tier
		want    int
	}{
		{"perfect five", 10, 5, Classify(100), 100},
		{"good four", 10, 4, Classify(75), 40},
		{"lowest band", 10, 2, Classify(40), 6},
		{"zero correct", 10, 0, Classify(0), 0},
		{"default base", 0, 5, Classify(100), 100},
		{"negative correct clamps", 10, -3, Classify(100), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XP(tt.base, tt.correct, tt.tier); got != tt.want {
				t.Errorf("XP = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreOutcome(t *testing.T) {
	result := quiz.Result{Score: 60, TotalQuestions: 5, CorrectAnswers: 3}
	out := Score(result, 70)

	if out.Name != "KEEP TRYING" {
		t.Errorf("Name = %q, want KEEP TRYING", out.Name)
	}
	if out.Passed {
		t.Error("60 should not pass a 70 threshold")
	}
	if out.XPAwarded != 21 { // 10 * 3 * 0.7
		t.Errorf("XPAwarded = %d, want 21", out.XPAwarded)
	}

	out = Score(quiz.Result{Score: 100, TotalQuestions: 5, CorrectAnswers: 5}, 70)
	if out.Tier != TierPerfect || !out.Passed || out.XPAwarded != 100 {
		t.Errorf("perfect outcome = %+v", out)
	}
}
