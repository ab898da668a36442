package genai

import (
	"context"
	"encoding/json"
	"fmt"
)

// MockClient is a mock implementation of Generator for local development
// and testing. It produces deterministic content without network access.
type MockClient struct{}

// NewMockClient creates a new mock generation client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// GenerateText returns a mock summary-style response.
func (m *MockClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return fmt.Sprintf("[MOCK] • Key point one\n• Key point two\n• Key point three\n(prompt: %s)", truncate(prompt, 80)), nil
}

// GenerateObject returns a mock object shaped like a quiz question. The
// mock ignores the schema beyond its name.
func (m *MockClient) GenerateObject(ctx context.Context, prompt string, schemaName string, schema map[string]interface{}) (json.RawMessage, error) {
	obj := map[string]interface{}{
		"question":           fmt.Sprintf("[MOCK] What is the main topic of this lesson? (%s)", schemaName),
		"options":            []string{"The topic in the title", "Something unrelated", "Nothing at all", "A secret"},
		"correctAnswerIndex": 0,
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mock object: %w", err)
	}
	return data, nil
}

// truncate shortens a string to at most n characters.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
