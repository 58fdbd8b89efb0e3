package llmprovider

import "context"

// Provider defines the interface for LLM providers.
// A Provider performs exactly one upstream call per GenerateContent; retry
// and fallback belong to Manager.
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "anthropic", "gemini")
	Name() string

	// Model returns the default model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	// Model overrides the provider default when non-empty
	Model             string
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role string // "user", "assistant"
	Text string
}

// UserPrompt builds a single-turn request carrying prompt as the user message.
func UserPrompt(prompt string) []Message {
	return []Message{{Role: "user", Text: prompt}}
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	// Estimated is true when the counts come from the local tokenizer
	// rather than the provider.
	Estimated bool
}
