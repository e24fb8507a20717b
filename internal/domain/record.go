package domain

import "time"

// TaskRecord is one executed task as stored in the journal.
type TaskRecord struct {
	RecordID   string       `json:"record_id"`
	TaskID     string       `json:"task_id"`
	AgentID    string       `json:"agent_id"`
	Prompt     string       `json:"prompt"`
	Result     string       `json:"result,omitempty"`
	Status     RecordStatus `json:"status"`
	Error      string       `json:"error,omitempty"`
	Priority   int          `json:"priority"`
	DurationMs int64        `json:"duration_ms"`
	CreatedAt  time.Time    `json:"created_at"`
}
