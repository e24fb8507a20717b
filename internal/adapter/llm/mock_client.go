package llm

import (
	"context"
	"fmt"
)

// MockClient echoes the prompt back; used for tests and offline runs.
type MockClient struct {
	provider string
	model    string
}

// NewMockClient creates a new mock LLM client.
func NewMockClient(provider, model string) *MockClient {
	return &MockClient{provider: provider, model: model}
}

func (m *MockClient) Provider() string { return m.provider }

func (m *MockClient) Model() string { return m.model }

// Invoke returns the prompt wrapped in a mock marker.
func (m *MockClient) Invoke(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("[MOCK] %s", prompt), nil
}
