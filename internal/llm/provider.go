// Package llm is a small provider-neutral layer over hosted language
// models. Every request asks for JSON matching a schema and every
// response is validated before it is returned.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured output.
type Provider interface {
	// Generate sends req and returns its output. When req.Schema is set
	// the content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64 // 0 leaves the provider default
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt is shorthand for a single-turn conversation.
func UserPrompt(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Schema names a JSON Schema. Name doubles as the compile cache key, so
// it must be unique per definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string // "end" or "max_tokens"
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

const (
	stopEnd       = "end"
	stopMaxTokens = "max_tokens"
)

// finish validates content and assembles the response shared by every
// backend.
func finish(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if stop == stopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through unchanged.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose labels requests made with ctx for the request log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
