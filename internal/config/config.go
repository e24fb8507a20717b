// Package config provides configuration for the agent server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

// PublicIPAuto asks the server to discover its public address at startup.
const PublicIPAuto = "auto"

// Config holds the agent server configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Agent identity and model selection
	Agent domain.AgentConfig

	// Provider credentials
	OpenAIAPIKey       string
	OpenAIBaseURL      string
	AnthropicAPIKey    string
	AnthropicMaxTokens int
	OllamaBaseURL      string

	// LLMTimeout bounds each provider call; zero means no bound.
	LLMTimeout time.Duration

	// Mode selects MOCK to echo prompts instead of calling a provider.
	Mode string

	// Optional components
	JournalDSN  string
	PolicyFile  string
	PublicIPURL string

	// WebSocket settings
	WSPingInterval   time.Duration
	WSWriteTimeout   time.Duration
	WSReadTimeout    time.Duration
	WSMaxMessageSize int64

	// Logging
	LogLevel  string
	LogFormat string
}

// fileConfig is the YAML file layout.
type fileConfig struct {
	Agent *domain.AgentConfig `yaml:"agent"`
}

// Load loads configuration from environment variables, then overlays the
// agent section of AGENT_CONFIG_FILE if set.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		Agent: domain.AgentConfig{
			AgentID:      getEnv("AGENT_ID", "agent-1"),
			PublicIP:     getEnv("PUBLIC_IP", "127.0.0.0"),
			LLMProvider:  getEnv("LLM_PROVIDER", domain.ProviderAnthropic),
			LLMModel:     getEnv("LLM_MODEL", "claude-3-5-haiku-latest"),
			Framework:    getEnv("AGENT_FRAMEWORK", domain.FrameworkLangChain),
			Capabilities: getEnvList("AGENT_CAPABILITIES", []string{"chat"}),
			Metadata:     map[string]any{},
		},
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", ""),
		AnthropicAPIKey:    getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicMaxTokens: getEnvInt("ANTHROPIC_MAX_TOKENS", 1024),
		OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		LLMTimeout:         time.Duration(getEnvInt("LLM_TIMEOUT_MS", 0)) * time.Millisecond,
		Mode:               getEnv("AGENT_MODE", ""),
		JournalDSN:         getEnv("TASK_JOURNAL_DSN", ""),
		PolicyFile:         getEnv("TASK_POLICY_FILE", ""),
		PublicIPURL:        getEnv("PUBLIC_IP_URL", "https://api.ipify.org"),
		WSPingInterval:     time.Duration(getEnvInt("WS_PING_INTERVAL_MS", 30000)) * time.Millisecond,
		WSWriteTimeout:     time.Duration(getEnvInt("WS_WRITE_TIMEOUT_MS", 10000)) * time.Millisecond,
		WSReadTimeout:      time.Duration(getEnvInt("WS_READ_TIMEOUT_MS", 60000)) * time.Millisecond,
		WSMaxMessageSize:   int64(getEnvInt("WS_MAX_MESSAGE_SIZE", 65536)),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}

	if path := getEnv("AGENT_CONFIG_FILE", ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// loadFile overlays non-empty agent fields from a YAML file.
func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if fc.Agent == nil {
		return nil
	}

	a := fc.Agent
	if a.AgentID != "" {
		c.Agent.AgentID = a.AgentID
	}
	if a.PublicIP != "" {
		c.Agent.PublicIP = a.PublicIP
	}
	if a.LLMProvider != "" {
		c.Agent.LLMProvider = a.LLMProvider
	}
	if a.LLMModel != "" {
		c.Agent.LLMModel = a.LLMModel
	}
	if a.Framework != "" {
		c.Agent.Framework = a.Framework
	}
	if a.Capabilities != nil {
		c.Agent.Capabilities = a.Capabilities
	}
	if a.Metadata != nil {
		c.Agent.Metadata = a.Metadata
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
