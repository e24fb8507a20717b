package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

const defaultAnthropicMaxTokens = 1024

// AnthropicClient calls the Anthropic messages API.
type AnthropicClient struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicClient creates a client for the hosted Anthropic API.
func NewAnthropicClient(opts Options) *AnthropicClient {
	reqOpts := []anthropicopt.RequestOption{
		anthropicopt.WithAPIKey(opts.AnthropicAPIKey),
		anthropicopt.WithMaxRetries(0),
		anthropicopt.WithHTTPClient(opts.httpClient()),
	}
	if opts.AnthropicBaseURL != "" {
		reqOpts = append(reqOpts, anthropicopt.WithBaseURL(opts.AnthropicBaseURL))
	}

	maxTokens := opts.AnthropicMaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	return &AnthropicClient{
		client:    anthropic.NewClient(reqOpts...),
		model:     opts.Model,
		maxTokens: int64(maxTokens),
	}
}

func (c *AnthropicClient) Provider() string { return domain.ProviderAnthropic }

func (c *AnthropicClient) Model() string { return c.model }

// Invoke sends a single user message and joins the text blocks of the reply.
func (c *AnthropicClient) Invoke(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		sb.WriteString(block.Text)
	}
	return sb.String(), nil
}
