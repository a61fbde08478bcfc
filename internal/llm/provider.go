package llm

import "context"

// Provider is the abstraction over the external text-generation service.
// The quiz service treats every Provider response as untrusted free text.
type Provider interface {
	// Generate sends one prompt to the model and returns its raw text
	// response. One outbound call per invocation; no retries, no caching.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// Prompt is the user instruction. Quiz generation is single-turn, so
	// there is no conversation history.
	Prompt string

	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int

	// Temperature controls randomness, range 0.0 - 1.0.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Content is the raw text returned by the model. It is expected, but
	// not guaranteed, to contain one JSON array of questions.
	Content string

	// Model is the actual model that served the request.
	Model string

	// Usage reports token consumption for this request.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
