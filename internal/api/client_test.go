package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithHTTPClient(srv.URL, srv.Client())
}

func TestLesson_WellFormed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lessons/mean-median-mode", r.URL.Path)
		w.Write([]byte(`{
			"id": 7,
			"title": "Mean, Median & Mode",
			"content_json": {"sections": [
				{"type": "concept", "title": "The Mean", "content": "Add them up, divide by n."},
				{"type": "example", "heading": "Worked Example", "body": "Data: 2, 4, 6."}
			]}
		}`))
	})

	rec, err := c.Lesson(context.Background(), "mean-median-mode")
	require.NoError(t, err)
	assert.Equal(t, "7", rec.ID)
	assert.Equal(t, "Mean, Median & Mode", rec.Title)
	require.Len(t, rec.Sections, 2)
	assert.Equal(t, "The Mean", rec.Sections[0].Title)
	// Field-name variants resolve to the same shape.
	assert.Equal(t, "Worked Example", rec.Sections[1].Title)
	assert.Equal(t, "Data: 2, 4, 6.", rec.Sections[1].Content)
}

func TestLesson_DoubleEncodedContent(t *testing.T) {
	inner, _ := json.Marshal(map[string]any{
		"sections": []map[string]string{{"type": "intro", "title": "Hi", "content": "Welcome."}},
	})
	payload, _ := json.Marshal(map[string]any{
		"title":        "Lesson",
		"content_json": string(inner),
	})

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	})

	rec, err := c.Lesson(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, rec.Sections, 1)
	assert.Equal(t, "Welcome.", rec.Sections[0].Content)
}

func TestLesson_MalformedPayloadIsNotAnError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>gateway error</html>"},
		{"wrong shape", `[1,2,3]`},
		{"empty object", `{}`},
		{"sections not array", `{"title":"x","content_json":{"sections":42}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			rec, err := c.Lesson(context.Background(), "broken")
			require.NoError(t, err)
			assert.Nil(t, rec.Sections)
		})
	}
}

func TestLesson_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	rec, err := c.Lesson(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, "ghost", rec.ID)
	assert.Nil(t, rec.Sections)
}

func TestLesson_ServerErrorIsUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.Lesson(context.Background(), "x")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestQuizQuestions_BareArrayAndWrapped(t *testing.T) {
	bare := `[{"id":"q1","stem":"?"},{"id":"q2","stem":"??"}]`
	wrapped := `{"questions":[{"id":"q1","stem":"?"}]}`

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bare))
	})
	list, err := c.QuizQuestions(context.Background(), "l1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	c = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(wrapped))
	})
	list, err = c.QuizQuestions(context.Background(), "l1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestQuizQuestions_MalformedYieldsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": "nope"}`))
	})
	list, err := c.QuizQuestions(context.Background(), "l1")
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestSubmitQuiz(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/quiz-submission/l1", r.URL.Path)

		var answers []AnswerSubmission
		require.NoError(t, json.NewDecoder(r.Body).Decode(&answers))
		assert.Len(t, answers, 2)

		w.Write([]byte(`{"score": 0.5, "passed": false, "results": []}`))
	})

	result, err := c.SubmitQuiz(context.Background(), "l1", []AnswerSubmission{
		{QuestionID: "q1", Answer: "0"},
		{QuestionID: "q2", Answer: "true"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.5, result.Score)
	assert.False(t, result.Passed)
}

func TestCompleteLesson_RejectedIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	err := c.CompleteLesson(context.Background(), "l1", CompletionReport{Score: 80, TimeSpentSeconds: 120})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}
