package notes

import "github.com/abhisek/lexiz/internal/llm"

// Schema is the structured output requested from the model.
var Schema = &llm.Schema{
	Name:        "study-notes",
	Description: "Example sentences and memory tips for missed French words",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"notes": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term": map[string]any{
							"type":        "string",
							"description": "The French word exactly as given",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "The Korean translation exactly as given",
						},
						"example": map[string]any{
							"type":        "string",
							"description": "A short, everyday French sentence using the word",
						},
						"example_translation": map[string]any{
							"type":        "string",
							"description": "The Korean translation of the example sentence",
						},
						"tip": map[string]any{
							"type":        "string",
							"description": "A one-sentence memory tip written in Korean",
						},
					},
					"required":             []any{"term", "translation", "example", "example_translation", "tip"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"notes"},
		"additionalProperties": false,
	},
}
