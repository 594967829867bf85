package flow

import (
	"context"
	"encoding/json"

	"github.com/abhisek/statlab/internal/api"
	"github.com/abhisek/statlab/internal/offline"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/slides"
)

// Content is the resolved material for one lesson flow. It is produced by
// FetchContent off the update loop and handed back through ApplyContent.
type Content struct {
	Deck      []slides.Slide
	Questions []quiz.Question
	Offline   bool
}

// FetchContent loads the lesson and its quiz from the backend, substituting
// canned material when the backend is unreachable or returns nothing usable.
// It never fails: the flow always has something to teach.
func (c *Controller) FetchContent(ctx context.Context) Content {
	var content Content

	var rec *api.LessonRecord
	var err error
	if c.client != nil {
		rec, err = c.client.Lesson(ctx, c.lesson.Slug)
	}
	if err != nil || rec == nil {
		rec = offline.Lesson(c.lesson)
		content.Offline = true
	}
	content.Deck = slides.Generate(c.lesson.Slug, rec, c.lesson.Title)

	var raw []json.RawMessage
	if c.client != nil {
		raw, err = c.client.QuizQuestions(ctx, c.lesson.Slug)
	}
	questions := quiz.Normalize(raw)
	if err != nil || len(questions) == 0 {
		questions = offline.Questions(c.lesson)
		content.Offline = true
	}
	content.Questions = questions

	return content
}

// ApplyContent installs fetched content and opens the flow at the slide
// deck. The flow always opens at the lesson step, whatever progress says.
// No-op once the controller is torn down.
func (c *Controller) ApplyContent(content Content) {
	if c.closed {
		return
	}
	c.deck = content.Deck
	c.questions = content.Questions
	c.offline = content.Offline
	c.slideIdx = 0
	c.phase = PhaseLesson
}

// SummaryPoints derives the recap shown between the deck and the quiz: the
// catalog summary followed by the headings of the content slides.
func (c *Controller) SummaryPoints() []string {
	points := make([]string, 0, len(c.deck)+1)
	if c.lesson.Summary != "" {
		points = append(points, c.lesson.Summary)
	}
	for _, s := range c.deck {
		if s.Type == slides.SlideIntro || s.Type == slides.SlideCompletion {
			continue
		}
		if s.Title != "" {
			points = append(points, s.Title)
		}
	}
	return points
}
