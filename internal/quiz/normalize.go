package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Backend question payloads are loosely typed: field names, answer encodings,
// and type labels all vary between backend versions. Normalize converts each
// raw object into the tagged Question union, substituting explicit fallback
// values instead of leaving optional fields to chance downstream.

// rawQuestion tolerates every observed field-name variant.
type rawQuestion struct {
	ID json.RawMessage `json:"id"`

	Type         string `json:"type"`
	QuestionType string `json:"question_type"`

	Stem     string `json:"stem"`
	Question string `json:"question"`
	Text     string `json:"text"`
	Prompt   string `json:"prompt"`

	Options []json.RawMessage `json:"options"`
	Choices []json.RawMessage `json:"choices"`

	CorrectAnswer      json.RawMessage `json:"correct_answer"`
	CorrectAnswerCamel json.RawMessage `json:"correctAnswer"`
	AnswerField        json.RawMessage `json:"answer"`

	Pairs map[string]string `json:"pairs"`

	Explanation string          `json:"explanation"`
	Hint        string          `json:"hint"`
	Difficulty  json.RawMessage `json:"difficulty"`
}

// Normalize converts raw backend question objects into typed questions.
// Objects that cannot yield an askable question (no stem, undecodable) are
// dropped; mcq questions are padded to at least two choices with generic
// placeholders.
func Normalize(raw []json.RawMessage) []Question {
	var out []Question
	for i, r := range raw {
		q, ok := normalizeOne(i, r)
		if !ok {
			continue
		}
		out = append(out, q)
	}
	return out
}

func normalizeOne(index int, raw json.RawMessage) (Question, bool) {
	var rq rawQuestion
	if err := json.Unmarshal(raw, &rq); err != nil {
		return Question{}, false
	}

	stem := firstNonEmpty(rq.Stem, rq.Question, rq.Text, rq.Prompt)
	if strings.TrimSpace(stem) == "" {
		return Question{}, false
	}

	choices := decodeStrings(rq.Options)
	if len(choices) == 0 {
		choices = decodeStrings(rq.Choices)
	}
	correct := firstRaw(rq.CorrectAnswer, rq.CorrectAnswerCamel, rq.AnswerField)

	q := Question{
		ID:          decodeID(rq.ID, index),
		Type:        normalizeType(rq, choices, correct),
		Stem:        strings.TrimSpace(stem),
		Explanation: strings.TrimSpace(rq.Explanation),
		Hint:        strings.TrimSpace(rq.Hint),
		Difficulty:  decodeScalar(rq.Difficulty),
	}

	switch q.Type {
	case TypeMCQ:
		q.Choices = padChoices(choices)
		q.CorrectIndex = resolveCorrectIndex(correct, q.Choices)
	case TypeTF:
		q.CorrectBool = decodeBool(correct)
	case TypeFill:
		q.CorrectText = decodeScalar(correct)
	case TypeMatch:
		q.CorrectPairs = rq.Pairs
	}

	return q, true
}

// normalizeType maps the backend's type label onto the tagged union, or
// infers a type from the payload shape when the label is missing or unknown.
func normalizeType(rq rawQuestion, choices []string, correct json.RawMessage) QuestionType {
	label := firstNonEmpty(rq.Type, rq.QuestionType)
	switch strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(label, "-", "_"), " ", "_")) {
	case "mcq", "multiple_choice", "choice", "single_choice":
		return TypeMCQ
	case "tf", "true_false", "truefalse", "boolean", "bool":
		return TypeTF
	case "fill", "fill_blank", "fill_in_the_blank", "short_answer", "text_input":
		return TypeFill
	case "match", "matching":
		return TypeMatch
	}

	// Shape inference for unlabeled questions.
	switch {
	case len(rq.Pairs) > 0:
		return TypeMatch
	case len(choices) > 0:
		return TypeMCQ
	case isBoolJSON(correct):
		return TypeTF
	default:
		return TypeFill
	}
}

// padChoices pads an mcq out to the two-choice minimum with generic
// placeholder options.
func padChoices(choices []string) []string {
	for len(choices) < 2 {
		choices = append(choices, fmt.Sprintf("Option %c", 'A'+len(choices)))
	}
	return choices
}

// resolveCorrectIndex maps the correct-answer encoding (index number, index
// string, or choice text) onto a choice index, defaulting to 0.
func resolveCorrectIndex(correct json.RawMessage, choices []string) int {
	if len(correct) == 0 {
		return 0
	}

	var n int
	if err := json.Unmarshal(correct, &n); err == nil {
		if n >= 0 && n < len(choices) {
			return n
		}
		return 0
	}

	var s string
	if err := json.Unmarshal(correct, &s); err != nil {
		return 0
	}
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < len(choices) {
		return n
	}
	for i, c := range choices {
		if strings.EqualFold(strings.TrimSpace(c), s) {
			return i
		}
	}
	return 0
}

func decodeBool(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(decodeScalar(raw))) {
	case "true", "t", "yes", "1":
		return true
	}
	return false
}

// decodeScalar renders a JSON scalar (string, number, bool) as a string.
func decodeScalar(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

func decodeStrings(raw []json.RawMessage) []string {
	var out []string
	for _, r := range raw {
		if s := decodeScalar(r); strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func decodeID(raw json.RawMessage, index int) string {
	if s := decodeScalar(raw); s != "" {
		return s
	}
	return fmt.Sprintf("q%d", index+1)
}

func isBoolJSON(raw json.RawMessage) bool {
	var b bool
	return json.Unmarshal(raw, &b) == nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstRaw(vals ...json.RawMessage) json.RawMessage {
	for _, v := range vals {
		if len(v) > 0 && string(v) != "null" {
			return v
		}
	}
	return nil
}
