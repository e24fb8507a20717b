package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/xiaot623/gogo/agent/internal/domain"
	"github.com/xiaot623/gogo/agent/internal/transport/ws"
)

// Client talks to an agent's HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the agent at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*domain.HealthStatus, error) {
	var out domain.HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Facts calls GET /agentfacts.json.
func (c *Client) Facts(ctx context.Context) (*domain.AgentFacts, error) {
	var out domain.AgentFacts
	if err := c.do(ctx, http.MethodGet, "/agentfacts.json", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitTask calls POST /task.
func (c *Client) SubmitTask(ctx context.Context, req *domain.TaskRequest) (*domain.TaskResponse, error) {
	var out domain.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/task", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp domain.ErrorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Detail != "" {
			return fmt.Errorf("agent returned %d: %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("agent returned %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// ChatClient submits tasks over the agent's websocket.
type ChatClient struct {
	conn *websocket.Conn
}

// DialChat connects to the /ws endpoint of the agent at baseURL.
func DialChat(baseURL string) (*ChatClient, error) {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(baseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	return &ChatClient{conn: conn}, nil
}

// Close closes the connection.
func (c *ChatClient) Close() error {
	return c.conn.Close()
}

// SendTask sends one task frame and returns its request id.
func (c *ChatClient) SendTask(req *domain.TaskRequest) (string, error) {
	task, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal task: %w", err)
	}

	requestID := "req_" + uuid.New().String()[:8]
	msg := ws.TaskMessage{
		BaseMessage: ws.BaseMessage{
			Type:      ws.TypeTask,
			Ts:        time.Now().UnixMilli(),
			RequestID: requestID,
		},
		Task: task,
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return "", fmt.Errorf("write task: %w", err)
	}
	return requestID, nil
}

// Reply is one server frame decoded for display.
type Reply struct {
	RequestID string
	Result    string
	Err       error
}

// ReadReply blocks for the next task_result or error frame.
func (c *ChatClient) ReadReply() (*Reply, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var base ws.BaseMessage
	if err := json.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}

	switch base.Type {
	case ws.TypeTaskResult:
		var msg ws.TaskResultMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("unmarshal task_result: %w", err)
		}
		reply := &Reply{RequestID: msg.RequestID}
		if msg.Response != nil {
			reply.Result = msg.Response.Result
		}
		return reply, nil
	case ws.TypeError:
		var msg ws.ErrorMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}
		return &Reply{RequestID: msg.RequestID, Err: fmt.Errorf("%s - %s", msg.Code, msg.Message)}, nil
	default:
		return nil, fmt.Errorf("unexpected message type: %s", base.Type)
	}
}

// wsURL maps http(s)://host to ws(s)://host/ws.
func wsURL(baseURL string) string {
	u := strings.TrimRight(baseURL, "/")
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + "/ws"
}
