package main

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/gogo/agent/internal/adapter/llm"
	"github.com/xiaot623/gogo/agent/internal/agent"
	"github.com/xiaot623/gogo/agent/internal/config"
	"github.com/xiaot623/gogo/agent/internal/domain"
	"github.com/xiaot623/gogo/agent/internal/service"
	handler "github.com/xiaot623/gogo/agent/internal/transport/http"
	"github.com/xiaot623/gogo/agent/internal/transport/ws"
)

func newTestAgentServer(t *testing.T, framework string) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Agent: domain.AgentConfig{
			AgentID:      "agent-cli",
			PublicIP:     "192.0.2.1",
			LLMProvider:  domain.ProviderOllama,
			LLMModel:     "llama3",
			Framework:    framework,
			Capabilities: []string{"chat"},
		},
		WSPingInterval:   time.Second,
		WSWriteTimeout:   time.Second,
		WSReadTimeout:    5 * time.Second,
		WSMaxMessageSize: 65536,
	}

	a, err := agent.New(cfg.Agent, func(provider, model string) (llm.ChatClient, error) {
		return llm.NewChatClient(llm.Options{Provider: provider, Model: model, Mode: llm.ModeMock})
	})
	require.NoError(t, err)

	svc := service.New(a, nil, nil)
	server := httptest.NewServer(handler.NewServer(svc, ws.NewServer(cfg, svc)))
	t.Cleanup(server.Close)
	return server
}

func TestClientHealthAndFacts(t *testing.T) {
	server := newTestAgentServer(t, domain.FrameworkLangChain)
	client := NewClient(server.URL+"/", 0)

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "agent-cli", status.AgentID)

	facts, err := client.Facts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Agent agent-cli", facts.Name)
	assert.Equal(t, "http://192.0.2.1:8080/task", facts.Endpoints.Task)
}

func TestClientSubmitTask(t *testing.T) {
	server := newTestAgentServer(t, domain.FrameworkLangChain)
	client := NewClient(server.URL, 0)

	resp, err := client.SubmitTask(context.Background(), &domain.TaskRequest{
		TaskID:   "cli-1",
		Prompt:   "ping",
		Priority: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "cli-1", resp.TaskID)
	assert.Equal(t, domain.TaskStatusCompleted, resp.Status)
	assert.Contains(t, resp.Result, "ping")
}

func TestClientSubmitTaskHardFailure(t *testing.T) {
	server := newTestAgentServer(t, domain.FrameworkCrewAI)
	client := NewClient(server.URL, 0)

	_, err := client.SubmitTask(context.Background(), &domain.TaskRequest{Prompt: "ping"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "NO SUPPORT FOR CREWAI YET")
}

func TestChatClient(t *testing.T) {
	server := newTestAgentServer(t, domain.FrameworkLangChain)

	chat, err := DialChat(server.URL)
	require.NoError(t, err)
	defer chat.Close()

	requestID, err := chat.SendTask(&domain.TaskRequest{TaskID: "c1", Prompt: "hello there", Priority: 1})
	require.NoError(t, err)

	reply, err := chat.ReadReply()
	require.NoError(t, err)
	assert.Equal(t, requestID, reply.RequestID)
	require.NoError(t, reply.Err)
	assert.Contains(t, reply.Result, "hello there")
}

func TestWSURL(t *testing.T) {
	assert.Equal(t, "ws://localhost:8080/ws", wsURL("http://localhost:8080"))
	assert.Equal(t, "wss://agent.example.com/ws", wsURL("https://agent.example.com/"))
}
