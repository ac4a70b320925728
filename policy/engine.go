// Package policy evaluates which intents the current plan may execute.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.command_policy.decision"),
		rego.Module("command_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Input describes one command about to be executed.
type Input struct {
	Intent     string `json:"intent"`
	Plan       string `json:"plan"`
	Subscribed bool   `json:"subscribed"`
}

// Evaluate checks the command policy and returns the decision, one of
// "allow" or "block". A policy that yields nothing defaults to allow.
func (e *Engine) Evaluate(ctx context.Context, input Input) (string, error) {
	in := map[string]interface{}{
		"intent":     input.Intent,
		"plan":       input.Plan,
		"subscribed": input.Subscribed,
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(in))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return "allow", nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}

	return "allow", nil
}

// DefaultPolicy blocks device-control intents on the voz/chat plan, which
// sells conversation without app control.
const DefaultPolicy = `
package command_policy

import rego.v1

default decision := "allow"

device_control := {"play_media", "open_messaging_app", "toggle_silent_mode"}

decision := "block" if {
	input.plan == "basic"
	input.intent in device_control
}
`
