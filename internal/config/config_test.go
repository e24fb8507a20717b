package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "AGENT_ID", "PUBLIC_IP", "LLM_PROVIDER", "LLM_MODEL",
		"AGENT_FRAMEWORK", "AGENT_CAPABILITIES", "LLM_TIMEOUT_MS",
		"OLLAMA_BASE_URL", "AGENT_CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "agent-1", cfg.Agent.AgentID)
	assert.Equal(t, "anthropic", cfg.Agent.LLMProvider)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Agent.LLMModel)
	assert.Equal(t, "langchain", cfg.Agent.Framework)
	assert.Equal(t, []string{"chat"}, cfg.Agent.Capabilities)
	assert.Equal(t, time.Duration(0), cfg.LLMTimeout)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaBaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("AGENT_ID", "agent-7")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("AGENT_CAPABILITIES", "chat, summarize ,")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT_MS", "1500")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "agent-7", cfg.Agent.AgentID)
	assert.Equal(t, "openai", cfg.Agent.LLMProvider)
	assert.Equal(t, []string{"chat", "summarize"}, cfg.Agent.Capabilities)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, 1500*time.Millisecond, cfg.LLMTimeout)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
}

func TestLoadFileOverlay(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "agent.yaml")
	content := `agent:
  agent_id: file-agent
  llm_provider: ollama
  llm_model: llama3
  capabilities: [chat, code]
  metadata:
    team: research
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("AGENT_CONFIG_FILE", path)
	t.Setenv("PUBLIC_IP", "203.0.113.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file-agent", cfg.Agent.AgentID)
	assert.Equal(t, "ollama", cfg.Agent.LLMProvider)
	assert.Equal(t, "llama3", cfg.Agent.LLMModel)
	assert.Equal(t, "203.0.113.5", cfg.Agent.PublicIP)
	assert.Equal(t, "langchain", cfg.Agent.Framework)
	assert.Equal(t, []string{"chat", "code"}, cfg.Agent.Capabilities)
	assert.Equal(t, "research", cfg.Agent.Metadata["team"])
}

func TestLoadFileMissing(t *testing.T) {
	t.Setenv("AGENT_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("agent: [unclosed"), 0o600))
	t.Setenv("AGENT_CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}
