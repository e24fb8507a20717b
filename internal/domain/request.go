package domain

import (
	"encoding/json"
	"errors"
)

const (
	// DefaultTaskID is used when a request omits task_id.
	DefaultTaskID = "default"
	// DefaultPriority is used when a request omits priority.
	DefaultPriority = 1
)

// ErrPromptRequired is returned when a task body has no prompt field.
var ErrPromptRequired = errors.New("prompt: field required")

// TaskRequest is a unit of work submitted to the agent.
type TaskRequest struct {
	TaskID   string         `json:"task_id"`
	Prompt   string         `json:"prompt"`
	Context  map[string]any `json:"context"`
	Priority int            `json:"priority"`
}

// UnmarshalJSON applies defaults for omitted fields and rejects bodies
// without a prompt.
func (r *TaskRequest) UnmarshalJSON(data []byte) error {
	type alias TaskRequest
	aux := struct {
		*alias
		Prompt *string `json:"prompt"`
	}{
		alias: &alias{TaskID: DefaultTaskID, Priority: DefaultPriority},
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Prompt == nil {
		return ErrPromptRequired
	}

	*r = TaskRequest(*aux.alias)
	r.Prompt = *aux.Prompt
	if r.Context == nil {
		r.Context = map[string]any{}
	}
	return nil
}

// TaskResponse is the result of executing a TaskRequest.
type TaskResponse struct {
	TaskID        string     `json:"task_id"`
	AgentID       string     `json:"agent_id"`
	Result        string     `json:"result"`
	Status        TaskStatus `json:"status"`
	ExecutionTime float64    `json:"execution_time"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
