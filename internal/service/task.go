package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/xiaot623/gogo/agent/internal/domain"
	"github.com/xiaot623/gogo/agent/internal/logger"
	"github.com/xiaot623/gogo/agent/internal/metrics"
)

// ErrTaskBlocked is returned when the task policy rejects a task.
var ErrTaskBlocked = errors.New("task blocked by policy")

// ProcessTask runs one task through the agent. Any failure is returned to
// the caller; on success the text is wrapped into a completed TaskResponse.
// ExecutionTime is not measured and is always zero.
func (s *Service) ProcessTask(ctx context.Context, req *domain.TaskRequest) (*domain.TaskResponse, error) {
	start := time.Now()
	cfg := s.agent.Config()

	if err := s.checkPolicy(ctx, req); err != nil {
		status := domain.RecordStatusFailed
		if errors.Is(err, ErrTaskBlocked) {
			status = domain.RecordStatusBlocked
		}
		s.finish(ctx, req, "", status, err, start)
		return nil, err
	}

	result, err := s.agent.ExecuteTask(ctx, req)
	if err != nil {
		s.finish(ctx, req, "", domain.RecordStatusFailed, err, start)
		return nil, err
	}

	s.finish(ctx, req, result, domain.RecordStatusCompleted, nil, start)
	return &domain.TaskResponse{
		TaskID:        req.TaskID,
		AgentID:       cfg.AgentID,
		Result:        result,
		Status:        domain.TaskStatusCompleted,
		ExecutionTime: 0.0,
	}, nil
}

// ListTasks returns recent journal records, filtered by taskID when set.
func (s *Service) ListTasks(ctx context.Context, taskID string, limit int) ([]domain.TaskRecord, error) {
	if s.store == nil {
		return nil, errors.New("task journal is disabled")
	}
	if taskID != "" {
		return s.store.ListTasksByTaskID(ctx, taskID, limit)
	}
	return s.store.ListTasks(ctx, limit)
}

func (s *Service) checkPolicy(ctx context.Context, req *domain.TaskRequest) error {
	if s.policyEngine == nil {
		return nil
	}

	res, err := s.policyEngine.Evaluate(ctx, map[string]interface{}{
		"task_id":  req.TaskID,
		"agent_id": s.agent.Config().AgentID,
		"prompt":   req.Prompt,
		"priority": req.Priority,
		"context":  req.Context,
	})
	if err != nil {
		return err
	}
	if !res.Allowed() {
		if res.Reason != "" {
			return fmt.Errorf("%w: %s", ErrTaskBlocked, res.Reason)
		}
		return ErrTaskBlocked
	}
	return nil
}

func (s *Service) finish(ctx context.Context, req *domain.TaskRequest, result string, status domain.RecordStatus, taskErr error, start time.Time) {
	elapsed := time.Since(start)
	metrics.ObserveTask(string(status), elapsed)

	entry := logger.Log.WithFields(logrus.Fields{
		"task_id":     req.TaskID,
		"status":      status,
		"duration_ms": elapsed.Milliseconds(),
	})
	if taskErr != nil {
		entry.Warnf("Task failed: %v", taskErr)
	} else {
		entry.Info("Task completed")
	}

	if s.store == nil {
		return
	}

	record := &domain.TaskRecord{
		RecordID:   uuid.New().String(),
		TaskID:     req.TaskID,
		AgentID:    s.agent.Config().AgentID,
		Prompt:     req.Prompt,
		Result:     result,
		Status:     status,
		Priority:   req.Priority,
		DurationMs: elapsed.Milliseconds(),
		CreatedAt:  start,
	}
	if taskErr != nil {
		record.Error = taskErr.Error()
	}
	// The journal is best effort and must not change the task outcome.
	if err := s.store.RecordTask(context.WithoutCancel(ctx), record); err != nil {
		logger.Log.Errorf("Failed to record task %s: %v", req.TaskID, err)
	}
}
