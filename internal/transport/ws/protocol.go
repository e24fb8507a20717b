package ws

import (
	"encoding/json"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

// Message types from client to agent
const (
	TypeTask = "task"
)

// Message types from agent to client
const (
	TypeTaskResult = "task_result"
	TypeError      = "error"
)

// Error codes
const (
	ErrorCodeInvalidMessage = "invalid_message"
	ErrorCodeInvalidTask    = "invalid_task"
	ErrorCodeTaskFailed     = "task_failed"
)

// BaseMessage contains common fields for all messages.
type BaseMessage struct {
	Type      string `json:"type"`
	Ts        int64  `json:"ts"`
	RequestID string `json:"request_id,omitempty"`
}

// TaskMessage is sent by a client to submit a task.
type TaskMessage struct {
	BaseMessage
	Task json.RawMessage `json:"task"`
}

// TaskResultMessage carries the response to one TaskMessage.
type TaskResultMessage struct {
	BaseMessage
	Response *domain.TaskResponse `json:"response"`
}

// ErrorMessage reports a failed message.
type ErrorMessage struct {
	BaseMessage
	Code    string `json:"code"`
	Message string `json:"message"`
}
