package agent

import (
	"errors"
	"fmt"

	"github.com/xiaot623/gogo/agent/internal/adapter/llm"
	"github.com/xiaot623/gogo/agent/internal/domain"
)

// ErrInvalidFramework is returned for framework names New does not know.
var ErrInvalidFramework = errors.New("invalid agent framework")

var (
	errNoCrewAI  = errors.New("NO SUPPORT FOR CREWAI YET")
	errNoAutoGen = errors.New("NO SUPPORT FOR AUTOGEN YET")
)

// ClientFactory builds the chat client for a provider and model.
type ClientFactory func(provider, model string) (llm.ChatClient, error)

// New creates the agent for cfg.Framework.
//
// "crewai" and "autogen" yield an *Unavailable failure value rather than an
// error; callers should check Failure before serving.
func New(cfg domain.AgentConfig, clients ClientFactory) (Agent, error) {
	switch cfg.Framework {
	case domain.FrameworkLangChain:
		client, err := clients(cfg.LLMProvider, cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		return NewChainAgent(cfg, client)
	case domain.FrameworkCrewAI:
		return &Unavailable{cfg: cfg.Normalized(), reason: errNoCrewAI}, nil
	case domain.FrameworkAutoGen:
		return &Unavailable{cfg: cfg.Normalized(), reason: errNoAutoGen}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFramework, cfg.Framework)
	}
}
