package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Errorf("resolveModel(gemini-flash) = %q", got)
	}
	if got := resolveModel("gemini-2.5-pro", geminiModels); got != "gemini-2.5-pro" {
		t.Errorf("resolveModel(gemini-2.5-pro) = %q, want pass-through", got)
	}
}

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"notes": map[string]any{
				"type":     "array",
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term":    map[string]any{"type": "string"},
						"example": map[string]any{"type": "string"},
					},
					"required": []string{"term", "example"},
				},
			},
			"tone": map[string]any{"type": "string", "enum": []any{"formal", "casual"}},
		},
		"required": []any{"notes"},
	}

	s := geminiSchema(def)

	if s.Type != genai.TypeObject {
		t.Fatalf("Type = %s, want OBJECT", s.Type)
	}
	notes := s.Properties["notes"]
	if notes.Type != genai.TypeArray {
		t.Fatalf("notes.Type = %s, want ARRAY", notes.Type)
	}
	if notes.MaxItems == nil || *notes.MaxItems != 5 {
		t.Errorf("notes.MaxItems = %v, want 5", notes.MaxItems)
	}
	if len(notes.Items.Required) != 2 {
		t.Errorf("items required = %v, want 2 entries", notes.Items.Required)
	}
	if len(s.Properties["tone"].Enum) != 2 {
		t.Errorf("tone enum = %v", s.Properties["tone"].Enum)
	}
	if len(s.Required) != 1 {
		t.Errorf("Required = %v", s.Required)
	}
}
