// Package policy evaluates the task admission policy with OPA.
package policy

import (
	"context"
	"fmt"
	"os"

	"github.com/open-policy-agent/opa/v1/rego"
)

// Decisions a policy may return.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// Result is the outcome of evaluating a task.
type Result struct {
	Decision string
	Reason   string
}

// Allowed reports whether the task may run.
func (r Result) Allowed() bool { return r.Decision != DecisionBlock }

// NewEngine creates a new policy engine with the given policy content.
// The module must define data.task_policy.decision, either as a string or
// as an object {"decision": ..., "reason": ...}.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.task_policy.decision"),
		rego.Module("task_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// NewEngineFromFile loads the policy module at path, or DefaultPolicy when
// path is empty.
func NewEngineFromFile(ctx context.Context, path string) (*Engine, error) {
	if path == "" {
		return NewEngine(ctx, DefaultPolicy)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy: %w", err)
	}
	return NewEngine(ctx, string(raw))
}

// Evaluate checks the task policy.
// Input should be a map with keys: task_id, agent_id, prompt, priority, context.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (Result, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return Result{}, fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return Result{Decision: DecisionAllow, Reason: "default"}, nil
	}

	switch val := results[0].Expressions[0].Value.(type) {
	case string:
		return Result{Decision: val}, nil
	case map[string]interface{}:
		res := Result{Decision: DecisionAllow}
		if d, ok := val["decision"].(string); ok {
			res.Decision = d
		}
		if r, ok := val["reason"].(string); ok {
			res.Reason = r
		}
		return res, nil
	default:
		return Result{Decision: DecisionAllow, Reason: "unexpected return type"}, nil
	}
}

// DefaultPolicy admits every task.
const DefaultPolicy = `
package task_policy

default decision := "allow"
`
