package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for language-model interaction.
// Consumers call Generate with a Request and receive the backend's
// response content, which is usually — but not always — JSON.
type Provider interface {
	// Generate sends a prompt to the backend and returns its response.
	// The request's Schema field, when set, instructs the provider to
	// return JSON conforming to that schema via its native structured
	// output mechanism, validated before return. When nil, Content is
	// whatever text the model produced; call sites apply their own
	// parse-and-repair policy.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the backend.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. Most Watershed call sites
	// send a single user message; the simulation step engine sends the
	// accumulated decision history as context.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When nil, the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
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

// Schema defines the JSON structure expected from the backend.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "scenario-list".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the backend's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
