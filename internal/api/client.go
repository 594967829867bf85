// Package api is the HTTP client for the lesson-content backend.
//
// The backend is a black box: statlab only depends on four endpoints and
// tolerates loose payload shapes. Transport failures map to ErrUnavailable so
// callers can switch to the canned offline content; malformed payloads are
// not errors at all, they degrade to zero-value records that trigger the
// slide pipeline's fallback path.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnavailable indicates the backend could not be reached or answered with
// a server error. Callers fall back to offline content.
var ErrUnavailable = errors.New("content backend unavailable")

// DefaultTimeout bounds every backend call.
const DefaultTimeout = 10 * time.Second

// Client talks to the content backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// NewWithHTTPClient creates a Client with a caller-supplied http.Client.
// Used by tests to point at an httptest server.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Lesson fetches the lesson record for id. A missing lesson or a malformed
// payload yields a record with nil Sections rather than an error.
func (c *Client) Lesson(ctx context.Context, id string) (*LessonRecord, error) {
	body, status, err := c.get(ctx, "/lessons/"+id)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return &LessonRecord{ID: id}, nil
	}

	if err := validateLessonPayload(body); err != nil {
		return &LessonRecord{ID: id}, nil
	}

	var payload lessonPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return &LessonRecord{ID: id}, nil
	}

	rec := &LessonRecord{ID: id, Title: payload.Title}
	if payload.ID != "" {
		rec.ID = payload.ID.String()
	}
	rec.Sections = parseSections(payload.ContentJSON)
	return rec, nil
}

// parseSections decodes content_json, which arrives either as an object or
// as a JSON-encoded string containing one.
func parseSections(raw json.RawMessage) []Section {
	if len(raw) == 0 {
		return nil
	}

	data := []byte(raw)
	// Double-encoded variant: content_json is a string holding JSON.
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil
		}
		data = []byte(inner)
	}

	var content contentPayload
	if err := json.Unmarshal(data, &content); err != nil {
		return nil
	}

	var sections []Section
	for _, s := range content.Sections {
		text := s.content()
		title := s.title()
		if text == "" && title == "" {
			continue
		}
		sections = append(sections, Section{Type: s.Type, Title: title, Content: text})
	}
	return sections
}

// QuizQuestions fetches the question pool for a lesson. Each element is the
// raw question object; normalization into typed questions happens in the
// quiz package. The response may be a bare array or wrapped in {questions}.
func (c *Client) QuizQuestions(ctx context.Context, lessonID string) ([]json.RawMessage, error) {
	body, status, err := c.get(ctx, "/quiz-questions/"+lessonID)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	if err := validateQuestionList(body); err != nil {
		return nil, nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, nil
	}
	return wrapped.Questions, nil
}

// SubmitQuiz posts the learner's answers for server-side scoring.
func (c *Client) SubmitQuiz(ctx context.Context, lessonID string, answers []AnswerSubmission) (*SubmissionResult, error) {
	body, err := c.post(ctx, "/quiz-submission/"+lessonID, answers)
	if err != nil {
		return nil, err
	}

	var result SubmissionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode submission result: %w", err)
	}
	return &result, nil
}

// CompleteLesson reports a finished lesson. Best-effort: callers log and
// ignore the error.
func (c *Client) CompleteLesson(ctx context.Context, lessonID string, report CompletionReport) error {
	_, err := c.post(ctx, "/lesson-completion/"+lessonID, report)
	return err
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, 0, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	return body, resp.StatusCode, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("backend rejected %s: status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
