package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/gogo/agent/internal/adapter/llm"
	"github.com/xiaot623/gogo/agent/internal/agent"
	"github.com/xiaot623/gogo/agent/internal/domain"
	store "github.com/xiaot623/gogo/agent/internal/repository"
	"github.com/xiaot623/gogo/agent/internal/service"
	"github.com/xiaot623/gogo/agent/tests/helpers"
)

type echoClient struct{ err error }

func (c echoClient) Invoke(ctx context.Context, prompt string) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return prompt, nil
}
func (echoClient) Provider() string { return "openai" }
func (echoClient) Model() string    { return "gpt-4o-mini" }

func testConfig() domain.AgentConfig {
	return domain.AgentConfig{
		AgentID:      "agent-1",
		PublicIP:     "203.0.113.10",
		LLMProvider:  "openai",
		LLMModel:     "gpt-4o-mini",
		Framework:    "langchain",
		Capabilities: []string{"chat"},
	}
}

func newTestServer(t *testing.T, client llm.ChatClient, db store.Store) *echo.Echo {
	t.Helper()

	a, err := agent.New(testConfig(), func(provider, model string) (llm.ChatClient, error) {
		return client, nil
	})
	require.NoError(t, err)
	return NewServer(service.New(a, db, nil), nil)
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	rec := doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "agent-1", body["agent_id"])

	cfg, ok := body["config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "203.0.113.10", cfg["public_ip"])
	assert.Equal(t, map[string]interface{}{}, cfg["metadata"])
}

func TestAgentFacts(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	rec := doRequest(e, http.MethodGet, "/agentfacts.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var facts domain.AgentFacts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &facts))
	assert.Equal(t, "http://203.0.113.10:8080/health", facts.Endpoints.Health)
	assert.Equal(t, "http://203.0.113.10:8080/task", facts.Endpoints.Task)
	assert.Equal(t, "http://203.0.113.10:8080/docs", facts.Endpoints.APIDocs)
	assert.Equal(t, "langchain agent using gpt-4o-mini", facts.Description)
}

func TestProcessTaskEcho(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	rec := doRequest(e, http.MethodPost, "/task", `{"prompt": "hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "default", resp.TaskID)
	assert.Equal(t, "agent-1", resp.AgentID)
	assert.Equal(t, domain.TaskStatusCompleted, resp.Status)
	assert.Contains(t, resp.Result, "hello")
	assert.Equal(t, 0.0, resp.ExecutionTime)
}

func TestProcessTaskKeepsTaskID(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	rec := doRequest(e, http.MethodPost, "/task", `{"task_id":"job-42","prompt":"hi","priority":3,"context":{"a":1}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "job-42", resp.TaskID)
}

func TestProcessTaskSoftFailure(t *testing.T) {
	e := newTestServer(t, echoClient{err: errors.New("provider down")}, nil)

	rec := doRequest(e, http.MethodPost, "/task", `{"prompt": "hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.TaskStatusCompleted, resp.Status)
	assert.Contains(t, resp.Result, agent.ErrorMarker)
	assert.Contains(t, resp.Result, "provider down")
}

func TestProcessTaskHardFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Framework = "autogen"
	a, err := agent.New(cfg, nil)
	require.NoError(t, err)
	e := NewServer(service.New(a, nil, nil), nil)

	rec := doRequest(e, http.MethodPost, "/task", `{"prompt": "hello"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NO SUPPORT FOR AUTOGEN YET", body.Detail)
}

func TestProcessTaskShapeFailures(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing prompt", `{"task_id":"t1"}`},
		{"bad priority", `{"prompt":"x","priority":"high"}`},
		{"not json", `{prompt`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, http.MethodPost, "/task", tt.body)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body domain.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Detail)
		})
	}

	rec := doRequest(e, http.MethodPost, "/task", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProcessTaskMissingPromptDetail(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	rec := doRequest(e, http.MethodPost, "/task", `{"task_id":"t1"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.ErrPromptRequired.Error(), body.Detail)
}

func doRawRequest(e *echo.Echo, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/task", bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestProcessTaskIgnoresContentType(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	for _, contentType := range []string{"", echo.MIMEApplicationForm, echo.MIMETextPlain} {
		t.Run("content-type="+contentType, func(t *testing.T) {
			rec := doRawRequest(e, contentType, `{"prompt":"hello"}`)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp domain.TaskResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, domain.DefaultTaskID, resp.TaskID)
			assert.Contains(t, resp.Result, "hello")
		})
	}
}

func TestProcessTaskFormBodyRejected(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	rec := doRawRequest(e, echo.MIMEApplicationForm, "prompt=hello&task_id=x")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Detail)
}

func TestProcessTaskEmptyBodyDetail(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	rec := doRawRequest(e, echo.MIMEApplicationJSON, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, domain.ErrPromptRequired.Error(), body.Detail)
}

func TestDocs(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	rec := doRequest(e, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/docs/index.html", rec.Header().Get(echo.HeaderLocation))

	rec = doRequest(e, http.MethodGet, "/docs/index.html", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/docs/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/task"`)
	assert.Contains(t, rec.Body.String(), `"/agentfacts.json"`)
}

func TestListTasksDisabled(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)

	rec := doRequest(e, http.MethodGet, "/tasks", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTasks(t *testing.T) {
	db := helpers.NewTestSQLiteStore(t)
	e := newTestServer(t, echoClient{}, db)

	for _, body := range []string{`{"task_id":"a","prompt":"1"}`, `{"task_id":"b","prompt":"2"}`} {
		rec := doRequest(e, http.MethodPost, "/task", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(e, http.MethodGet, "/tasks?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tasks []domain.TaskRecord `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tasks, 1)

	rec = doRequest(e, http.MethodGet, "/tasks?task_id=a", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tasks, 1)
	assert.Equal(t, "a", body.Tasks[0].TaskID)

	rec = doRequest(e, http.MethodGet, "/tasks?limit=-3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	e := newTestServer(t, echoClient{}, nil)
	doRequest(e, http.MethodPost, "/task", `{"prompt":"count me"}`)

	rec := doRequest(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "agent_tasks_total")
}

func TestHealthHandlerDirect(t *testing.T) {
	e := echo.New()
	a, err := agent.NewChainAgent(testConfig(), echoClient{})
	require.NoError(t, err)
	h := NewHandler(service.New(a, nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
