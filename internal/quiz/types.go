// Package quiz scores quiz attempts against a hearts budget.
//
// Questions arrive from the content backend in loose shapes and are
// normalized at the boundary into the tagged Question union. The Engine is a
// per-attempt state machine: submit an answer, advance, repeat until the
// last question is answered or hearts run out.
package quiz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// QuestionType tags the question variant.
type QuestionType string

const (
	TypeMCQ   QuestionType = "mcq"
	TypeTF    QuestionType = "tf"
	TypeFill  QuestionType = "fill"
	TypeMatch QuestionType = "match"
)

// Question is one scored item. Which answer field applies is keyed by Type.
type Question struct {
	ID           string
	Type         QuestionType
	Stem         string
	Choices      []string          // mcq
	CorrectIndex int               // mcq
	CorrectBool  bool              // tf
	CorrectText  string            // fill
	CorrectPairs map[string]string // match
	Explanation  string
	Hint         string
	Difficulty   string
}

// Answerable reports whether the question can actually be asked. An mcq with
// fewer than two choices is skippable, not fatal.
func (q Question) Answerable() bool {
	if strings.TrimSpace(q.Stem) == "" {
		return false
	}
	switch q.Type {
	case TypeMCQ:
		return len(q.Choices) >= 2
	case TypeMatch:
		return len(q.CorrectPairs) > 0
	case TypeTF, TypeFill:
		return true
	}
	return false
}

// CorrectAnswerText renders the canonical answer for display and submission.
func (q Question) CorrectAnswerText() string {
	switch q.Type {
	case TypeMCQ:
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Choices) {
			return q.Choices[q.CorrectIndex]
		}
		return strconv.Itoa(q.CorrectIndex)
	case TypeTF:
		return strconv.FormatBool(q.CorrectBool)
	case TypeFill:
		return q.CorrectText
	case TypeMatch:
		return formatPairs(q.CorrectPairs)
	}
	return ""
}

// Answer is a learner's response. Which field applies is keyed by the
// question's Type.
type Answer struct {
	Index int               // mcq: selected choice index
	Bool  bool              // tf
	Text  string            // fill
	Pairs map[string]string // match
}

// text renders the answer for the log and backend submission.
func (a Answer) text(q Question) string {
	switch q.Type {
	case TypeMCQ:
		if a.Index >= 0 && a.Index < len(q.Choices) {
			return q.Choices[a.Index]
		}
		return strconv.Itoa(a.Index)
	case TypeTF:
		return strconv.FormatBool(a.Bool)
	case TypeFill:
		return strings.TrimSpace(a.Text)
	case TypeMatch:
		return formatPairs(a.Pairs)
	}
	return ""
}

func formatPairs(pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, pairs[k]))
	}
	return strings.Join(parts, "; ")
}

// AnswerRecord is one entry in the attempt's answer log.
type AnswerRecord struct {
	QuestionID    string
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// Result is the immutable outcome of one quiz attempt. On hearts exhaustion
// TotalQuestions counts only the questions attempted before the attempt
// terminated.
type Result struct {
	Score          int // 0-100
	TotalQuestions int
	CorrectAnswers int
	TimeSpent      int // wall-clock seconds, never negative
	Answers        []AnswerRecord
	HeartsLeft     int
	BestStreak     int
	Exhausted      bool
}
