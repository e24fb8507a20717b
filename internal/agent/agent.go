// Package agent defines the task-executing agent contract and its
// implementations.
package agent

import (
	"context"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

// Agent executes tasks on behalf of the HTTP surface.
type Agent interface {
	// Config returns the immutable configuration the agent was built with.
	Config() domain.AgentConfig

	// ExecuteTask produces the textual result for one task or fails.
	ExecuteTask(ctx context.Context, task *domain.TaskRequest) (string, error)
}

// Failure reports whether a is a failure value returned by New in place of
// a working agent, and if so why.
func Failure(a Agent) error {
	if f, ok := a.(interface{ Failure() error }); ok {
		return f.Failure()
	}
	return nil
}
