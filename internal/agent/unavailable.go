package agent

import (
	"context"

	"github.com/xiaot623/gogo/agent/internal/domain"
)

// Unavailable stands in for a framework that has no implementation yet.
// New returns it with a nil error; every task it receives fails.
type Unavailable struct {
	cfg    domain.AgentConfig
	reason error
}

func (u *Unavailable) Config() domain.AgentConfig { return u.cfg }

// Failure returns the reason the framework is unavailable.
func (u *Unavailable) Failure() error { return u.reason }

func (u *Unavailable) ExecuteTask(ctx context.Context, task *domain.TaskRequest) (string, error) {
	return "", u.reason
}
