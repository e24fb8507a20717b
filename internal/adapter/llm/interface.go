// Package llm provides chat clients for the supported language-model providers.
package llm

import "context"

// ChatClient runs a single-turn prompt against a language model.
type ChatClient interface {
	// Invoke sends prompt as one user message and returns the reply text.
	Invoke(ctx context.Context, prompt string) (string, error)

	// Provider returns the provider name the client was built for.
	Provider() string

	// Model returns the model identifier sent with each request.
	Model() string
}

// Ensure every client implements ChatClient.
var (
	_ ChatClient = (*OpenAIClient)(nil)
	_ ChatClient = (*AnthropicClient)(nil)
	_ ChatClient = (*OllamaClient)(nil)
	_ ChatClient = (*MockClient)(nil)
)
