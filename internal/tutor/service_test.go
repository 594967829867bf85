package tutor

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/statlab/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	return json.RawMessage(`{
		"why_wrong": "The mean was confused with the median; 77 is the average, not the middle value.",
		"why_right": "Sorting the values first puts 35 in the middle. The median is defined by position, so the outlier at 250 cannot move it.",
		"study_tip": "Sort a small dataset by hand and circle the middle value before computing anything."
	}`)
}

func testInput() Input {
	return Input{
		LessonTitle:   "Mean, Median & Mode",
		Stem:          "What is the median of {30, 32, 35, 38, 250}?",
		LearnerAnswer: "77",
		CorrectAnswer: "35",
		ContentNote:   "The median resists outliers.",
	}
}

func consumeWithin(t *testing.T, svc *Service, d time.Duration) (*Explanation, bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if expl, ok := svc.ConsumeExplanation(); ok {
			return expl, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	expl, ok := consumeWithin(t, svc, 5*time.Second)
	if !ok {
		t.Fatal("no explanation produced")
	}
	if expl.WhyRight == "" || expl.StudyTip == "" {
		t.Errorf("incomplete explanation: %+v", expl)
	}

	// The prompt carries the question, both answers, and the content note.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"median", "77", "35", "resists outliers"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != ExplanationSchema {
		t.Error("request not bound to the explanation schema")
	}
}

func TestService_ConsumeBeforeReady(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, ok := svc.ConsumeExplanation(); ok {
		t.Fatal("consume reported ready before any request")
	}
}

func TestService_ProviderFailureYieldsNothing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	if _, ok := consumeWithin(t, svc, time.Second); ok {
		t.Fatal("failed generation reported an explanation")
	}
}

func TestService_NewRequestReplacesPending(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validExplanationJSON()},
		llm.MockResponse{Content: json.RawMessage(`{
			"why_wrong": "second",
			"why_right": "second",
			"study_tip": "second"
		}`)},
	)
	svc := NewService(mock, DefaultConfig())
	ctx := t.Context()

	svc.RequestExplanation(ctx, testInput())
	if _, ok := consumeWithin(t, svc, 5*time.Second); !ok {
		t.Fatal("first explanation never arrived")
	}

	svc.RequestExplanation(ctx, testInput())
	expl, ok := consumeWithin(t, svc, 5*time.Second)
	if !ok {
		t.Fatal("second explanation never arrived")
	}
	if expl.StudyTip != "second" {
		t.Errorf("study tip = %q, want the second response", expl.StudyTip)
	}
}
