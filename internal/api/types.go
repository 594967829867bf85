package api

import "encoding/json"

// Section is one block of lesson content as authored in the backend.
type Section struct {
	Type    string
	Title   string
	Content string
}

// LessonRecord is a lesson fetched from the content backend, reduced to the
// fields the flow engine consumes. Sections is nil when the backend payload
// was missing or malformed; callers treat that as "use the fallback deck".
type LessonRecord struct {
	ID       string
	Title    string
	Sections []Section
}

// AnswerSubmission is one answered question reported to the backend.
type AnswerSubmission struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// SubmissionResult is the backend's verdict on a quiz submission.
type SubmissionResult struct {
	Score   float64           `json:"score"` // 0-1 fraction
	Passed  bool              `json:"passed"`
	Results []json.RawMessage `json:"results"`
}

// CompletionReport is the best-effort lesson completion notification.
type CompletionReport struct {
	Score            int `json:"score"`
	TimeSpentSeconds int `json:"timeSpentSeconds"`
}

// lessonPayload mirrors the backend lesson shape. Content arrives either as
// an embedded object or as a JSON string under content_json.
type lessonPayload struct {
	ID          json.Number     `json:"id"`
	Title       string          `json:"title"`
	ContentJSON json.RawMessage `json:"content_json"`
}

// contentPayload is the parsed content_json value.
type contentPayload struct {
	Sections []sectionPayload `json:"sections"`
}

// sectionPayload tolerates the field-name variants observed in backend data.
type sectionPayload struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Heading string `json:"heading"`
	Content string `json:"content"`
	Body    string `json:"body"`
	Text    string `json:"text"`
}

func (s sectionPayload) title() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Heading
}

func (s sectionPayload) content() string {
	switch {
	case s.Content != "":
		return s.Content
	case s.Body != "":
		return s.Body
	default:
		return s.Text
	}
}
