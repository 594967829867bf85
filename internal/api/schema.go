package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Boundary schemas are deliberately permissive: they pin down only the
// structure the parsers rely on (objects where objects are expected), not
// field names, which vary between backend versions.

var lessonSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string"},
	},
}

var questionListSchemaDef = map[string]any{
	"anyOf": []any{
		map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object"},
		},
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "object"},
				},
			},
			"required": []any{"questions"},
		},
	},
}

var schemaCache sync.Map // map[string]*jsonschema.Schema

// validatePayload checks raw JSON against a named schema definition.
func validatePayload(name string, def map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, def)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("payload %q failed validation: %w", name, err)
	}
	return nil
}

func validateLessonPayload(raw []byte) error {
	return validatePayload("lesson", lessonSchemaDef, raw)
}

func validateQuestionList(raw []byte) error {
	return validatePayload("question-list", questionListSchemaDef, raw)
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value, not a typed map.
	// Round-trip through encoding/json to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
