package curriculum

import "github.com/abhisek/studiq/internal/llm"

// CurriculumSchema defines the JSON schema for full-curriculum generation.
var CurriculumSchema = &llm.Schema{
	Name:        "curriculum",
	Description: "A study curriculum broken into sections, each with a list of topics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sections": map[string]any{
				"type":        "array",
				"description": "Logical sections of the subject, in study order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "Short section name",
						},
						"topics": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "4-6 cohesive topics within the section",
						},
					},
					"required":             []any{"name", "topics"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"sections"},
		"additionalProperties": false,
	},
}
