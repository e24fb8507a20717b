package llm

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/xiaot623/gogo/agent/internal/domain"
	"github.com/xiaot623/gogo/agent/internal/logger"
)

// ModeMock selects the echoing MockClient.
const ModeMock = "MOCK"

// ErrUnsupportedProvider is matched by errors.Is for unknown provider names.
var ErrUnsupportedProvider = errors.New("unsupported provider")

// UnsupportedProviderError names the provider that was rejected.
type UnsupportedProviderError struct {
	Provider string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider: %s", e.Provider)
}

func (e *UnsupportedProviderError) Is(target error) bool {
	return target == ErrUnsupportedProvider
}

// Options carries everything a provider client needs. Credentials are
// passed in explicitly rather than read from the environment.
type Options struct {
	Provider string
	Model    string
	Mode     string

	OpenAIAPIKey       string
	OpenAIBaseURL      string
	AnthropicAPIKey    string
	AnthropicBaseURL   string
	AnthropicMaxTokens int
	OllamaBaseURL      string

	// Timeout bounds each call; zero means no bound.
	Timeout time.Duration

	// HTTPClient overrides the transport used by every provider.
	HTTPClient *http.Client
}

// Factory builds a ChatClient from Options.
type Factory func(opts Options) (ChatClient, error)

// NewChatClient maps a provider name to its client. The name must match
// exactly; anything else fails with an UnsupportedProviderError.
func NewChatClient(opts Options) (ChatClient, error) {
	switch opts.Provider {
	case domain.ProviderOpenAI, domain.ProviderAnthropic, domain.ProviderOllama:
	default:
		return nil, &UnsupportedProviderError{Provider: opts.Provider}
	}

	if opts.Mode == ModeMock {
		logger.Log.Infof("AGENT_MODE=%s detected, using mock LLM client for %s", ModeMock, opts.Provider)
		return NewMockClient(opts.Provider, opts.Model), nil
	}

	switch opts.Provider {
	case domain.ProviderOpenAI:
		return NewOpenAIClient(opts), nil
	case domain.ProviderAnthropic:
		return NewAnthropicClient(opts), nil
	default:
		return NewOllamaClient(opts), nil
	}
}

func (o Options) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return &http.Client{Timeout: o.Timeout}
}
