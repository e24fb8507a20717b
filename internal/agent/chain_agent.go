package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xiaot623/gogo/agent/internal/adapter/llm"
	"github.com/xiaot623/gogo/agent/internal/domain"
	"github.com/xiaot623/gogo/agent/internal/logger"
	"github.com/xiaot623/gogo/agent/internal/metrics"
)

const (
	// DefaultPromptTemplate wraps the user's message before it is sent.
	DefaultPromptTemplate = "You are a helpful assistant. Reply to the following:\n\n{message}"

	// ErrorMarker prefixes the result of a task whose provider call failed.
	ErrorMarker = "[Error executing task]"
)

// ChainAgent runs every task through a single-turn prompt chain.
type ChainAgent struct {
	cfg   domain.AgentConfig
	chain *Chain
}

// NewChainAgent builds the chain around client.
func NewChainAgent(cfg domain.AgentConfig, client llm.ChatClient) (*ChainAgent, error) {
	prompt, err := NewPromptTemplate(DefaultPromptTemplate, "message")
	if err != nil {
		return nil, err
	}

	return &ChainAgent{
		cfg: cfg.Normalized(),
		chain: &Chain{
			Prompt: prompt,
			LLM:    client,
			Parser: StrOutputParser,
		},
	}, nil
}

func (a *ChainAgent) Config() domain.AgentConfig { return a.cfg }

// ExecuteTask runs the prompt through the chain. Provider failures do not
// fail the task: they come back as a result string carrying ErrorMarker.
func (a *ChainAgent) ExecuteTask(ctx context.Context, task *domain.TaskRequest) (string, error) {
	out, err := a.chain.Invoke(ctx, map[string]string{"message": task.Prompt})
	if err != nil {
		metrics.IncProviderError(a.chain.LLM.Provider())
		logger.Log.WithFields(logrus.Fields{
			"task_id":  task.TaskID,
			"provider": a.chain.LLM.Provider(),
		}).Warnf("Task execution failed: %v", err)
		return fmt.Sprintf("%s %v", ErrorMarker, err), nil
	}
	return strings.TrimSpace(out), nil
}
