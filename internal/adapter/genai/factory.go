package genai

import (
	"log"
	"os"
	"time"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "SKILLBYTE_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewGenerator creates a generation client based on the SKILLBYTE_MODE
// environment variable. If SKILLBYTE_MODE=MOCK, returns a MockClient;
// otherwise returns a real Client.
func NewGenerator(baseURL, apiKey, model string, timeout time.Duration) Generator {
	if os.Getenv(EnvMode) == ModeMock {
		log.Println("SKILLBYTE_MODE=MOCK detected, using mock generation client")
		return NewMockClient()
	}
	return NewClient(baseURL, apiKey, model, timeout)
}
