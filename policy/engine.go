// Package policy evaluates publish policy for authoring submissions.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.publish_policy.decision"),
		rego.Module("publish_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks the publish policy for a submission.
// Input is a map with keys: title, description, category, tags, creator_id.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (domain.PublishDecision, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The default policy always defines a decision.
		return domain.PublishDecisionAllow, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return domain.PublishDecision(s), nil
	}
	return domain.PublishDecisionAllow, nil
}

// DefaultPolicy is the default publish policy content.
const DefaultPolicy = `
package publish_policy

import rego.v1

default decision := "allow"

banned_tags := {"spam", "nsfw", "scam"}

# Block submissions carrying banned tags
decision := "block" if {
	some tag in input.tags
	tag in banned_tags
}

# Untagged, undescribed submissions go to manual review
decision := "review" if {
	input.description == ""
	count(input.tags) == 0
}
`
