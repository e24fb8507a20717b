package service

import (
	"fmt"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

// Health returns the agent identity and full configuration.
func (s *Service) Health() domain.HealthStatus {
	cfg := s.agent.Config().Normalized()
	return domain.HealthStatus{
		Status:  "healthy",
		AgentID: cfg.AgentID,
		Config:  cfg,
	}
}

// AgentFacts returns the capability descriptor for discovery.
func (s *Service) AgentFacts() domain.AgentFacts {
	cfg := s.agent.Config().Normalized()
	return domain.AgentFacts{
		AgentID:     cfg.AgentID,
		Name:        fmt.Sprintf("Agent %s", cfg.AgentID),
		Description: fmt.Sprintf("%s agent using %s", cfg.Framework, cfg.LLMModel),
		Version:     "1.0.0",
		Endpoints: domain.FactsEndpoints{
			Health:  domain.EndpointURL(cfg.PublicIP, "/health"),
			Task:    domain.EndpointURL(cfg.PublicIP, "/task"),
			APIDocs: domain.EndpointURL(cfg.PublicIP, "/docs"),
		},
		Capabilities: cfg.Capabilities,
		Protocols:    []string{"HTTP", "REST"},
		LLMConfig: domain.FactsLLMConfig{
			Provider:  cfg.LLMProvider,
			Model:     cfg.LLMModel,
			Framework: cfg.Framework,
		},
		Location: domain.FactsLocation{
			Region:        "whatever",
			CloudProvider: "aws",
		},
		Metadata: cfg.Metadata,
		Status:   "active",
	}
}
