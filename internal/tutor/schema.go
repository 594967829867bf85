package tutor

import "github.com/abhisek/statlab/internal/llm"

// ExplanationSchema defines the JSON schema for missed-question explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "missed-question-explanation",
	Description: "An explanation of why a quiz answer was wrong and how to get it right",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"why_wrong": map[string]any{
				"type":        "string",
				"description": "What the learner's answer got wrong (1-2 sentences, no scolding)",
			},
			"why_right": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is correct (2-3 sentences)",
			},
			"study_tip": map[string]any{
				"type":        "string",
				"description": "One concrete thing to review or practice (1 sentence)",
			},
		},
		"required":             []any{"why_wrong", "why_right", "study_tip"},
		"additionalProperties": false,
	},
}
