// Package service implements the agent's HTTP-exposed operations.
package service

import (
	"github.com/xiaot623/gogo/agent/internal/agent"
	"github.com/xiaot623/gogo/agent/internal/repository"
	"github.com/xiaot623/gogo/agent/policy"
)

// Service wraps an Agent with health, facts and task processing.
type Service struct {
	agent        agent.Agent
	store        store.Store
	policyEngine *policy.Engine
}

// New creates a Service. store and policyEngine may be nil.
func New(a agent.Agent, store store.Store, policyEngine *policy.Engine) *Service {
	return &Service{
		agent:        a,
		store:        store,
		policyEngine: policyEngine,
	}
}

// AgentID returns the configured agent id.
func (s *Service) AgentID() string {
	return s.agent.Config().AgentID
}

// JournalEnabled reports whether executed tasks are being recorded.
func (s *Service) JournalEnabled() bool {
	return s.store != nil
}
