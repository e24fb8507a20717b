package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

// OpenAIClient calls the OpenAI chat completions API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a client for the hosted OpenAI API.
func NewOpenAIClient(opts Options) *OpenAIClient {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.OpenAIAPIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(opts.httpClient()),
	}
	if opts.OpenAIBaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.OpenAIBaseURL))
	}

	return &OpenAIClient{
		client: openai.NewClient(reqOpts...),
		model:  opts.Model,
	}
}

func (c *OpenAIClient) Provider() string { return domain.ProviderOpenAI }

func (c *OpenAIClient) Model() string { return c.model }

// Invoke sends a single user message.
func (c *OpenAIClient) Invoke(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("openai chat completion: no choices returned")
	}
	return completion.Choices[0].Message.Content, nil
}
