package domain

import "fmt"

// FactsPort is the port advertised in AgentFacts endpoint URLs.
const FactsPort = 8080

// AgentConfig identifies an agent instance and its model selection.
type AgentConfig struct {
	AgentID      string         `json:"agent_id" yaml:"agent_id"`
	PublicIP     string         `json:"public_ip" yaml:"public_ip"`
	LLMProvider  string         `json:"llm_provider" yaml:"llm_provider"`
	LLMModel     string         `json:"llm_model" yaml:"llm_model"`
	Framework    string         `json:"framework" yaml:"framework"`
	Capabilities []string       `json:"capabilities" yaml:"capabilities"`
	Metadata     map[string]any `json:"metadata" yaml:"metadata"`
}

// Normalized returns a copy with nil collections replaced by empty ones so
// they serialize as [] and {}.
func (c AgentConfig) Normalized() AgentConfig {
	out := c
	out.Capabilities = make([]string, len(c.Capabilities))
	copy(out.Capabilities, c.Capabilities)
	out.Metadata = make(map[string]any, len(c.Metadata))
	for k, v := range c.Metadata {
		out.Metadata[k] = v
	}
	return out
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string      `json:"status"`
	AgentID string      `json:"agent_id"`
	Config  AgentConfig `json:"config"`
}

// AgentFacts is the capability descriptor served at /agentfacts.json.
type AgentFacts struct {
	AgentID      string         `json:"agent_id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Version      string         `json:"version"`
	Endpoints    FactsEndpoints `json:"endpoints"`
	Capabilities []string       `json:"capabilities"`
	Protocols    []string       `json:"protocols"`
	LLMConfig    FactsLLMConfig `json:"llm_config"`
	Location     FactsLocation  `json:"location"`
	Metadata     map[string]any `json:"metadata"`
	Status       string         `json:"status"`
}

// FactsEndpoints lists the URLs other systems use to reach the agent.
type FactsEndpoints struct {
	Health  string `json:"health"`
	Task    string `json:"task"`
	APIDocs string `json:"api_docs"`
}

// FactsLLMConfig describes the backing model.
type FactsLLMConfig struct {
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	Framework string `json:"framework"`
}

// FactsLocation is a static placement block.
type FactsLocation struct {
	Region        string `json:"region"`
	CloudProvider string `json:"cloud_provider"`
}

// EndpointURL builds http://<public_ip>:8080<path>.
func EndpointURL(publicIP, path string) string {
	return fmt.Sprintf("http://%s:%d%s", publicIP, FactsPort, path)
}
