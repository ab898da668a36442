// Package genai provides an abstraction for the hosted generation service.
package genai

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNoAPIKey is returned when no generation credential is configured.
// Callers degrade to fallback content; this never surfaces as a fault.
var ErrNoAPIKey = errors.New("generation API key not configured")

// Generator defines the interface for generation service operations.
type Generator interface {
	// GenerateText sends a prompt and returns plain text.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateObject sends a prompt with a structured-output schema and
	// returns the raw JSON object produced by the service.
	GenerateObject(ctx context.Context, prompt string, schemaName string, schema map[string]interface{}) (json.RawMessage, error)
}

// Ensure implementations satisfy the interface.
var (
	_ Generator = (*Client)(nil)
	_ Generator = (*MockClient)(nil)
)
