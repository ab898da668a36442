package policy

import (
	"context"
	"testing"

	"github.com/divyanshsaxena002/SkillByte/internal/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(context.Background(), DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestDefaultPolicyAllows(t *testing.T) {
	engine := newTestEngine(t)

	decision, err := engine.Evaluate(context.Background(), map[string]interface{}{
		"title":       "CSS Grid basics",
		"description": "A quick tour",
		"category":    "Technology",
		"tags":        []string{"css", "web"},
		"creator_id":  "u_1",
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != domain.PublishDecisionAllow {
		t.Fatalf("expected allow, got %s", decision)
	}
}

func TestBannedTagBlocks(t *testing.T) {
	engine := newTestEngine(t)

	decision, err := engine.Evaluate(context.Background(), map[string]interface{}{
		"title":       "Totally legit",
		"description": "Click here",
		"category":    "Business",
		"tags":        []string{"finance", "scam"},
		"creator_id":  "u_1",
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != domain.PublishDecisionBlock {
		t.Fatalf("expected block, got %s", decision)
	}
}

func TestBareSubmissionGoesToReview(t *testing.T) {
	engine := newTestEngine(t)

	decision, err := engine.Evaluate(context.Background(), map[string]interface{}{
		"title":       "Untitled clip",
		"description": "",
		"category":    "Lifestyle",
		"tags":        []string{},
		"creator_id":  "u_1",
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != domain.PublishDecisionReview {
		t.Fatalf("expected review, got %s", decision)
	}
}
