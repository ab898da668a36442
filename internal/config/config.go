// Package config provides configuration for the SkillByte backend.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the backend configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Catalog database. Defaults to an in-memory SQLite database so all
	// catalog state lives and dies with the process.
	DatabaseURL string

	// Generation service (OpenAI-compatible endpoint)
	GenAIBaseURL string
	GenAIAPIKey  string
	GenAIModel   string
	GenAITimeout time.Duration

	// Simulated backend delay for login and media processing steps.
	// Stand-in for out-of-scope services.
	MockDelay time.Duration

	// Initial XP granted to a fresh session.
	InitialXP int

	// Streak day count seeded into a fresh session. A real streak service
	// is out of scope; the profile shows this value.
	InitialStreak int

	// WebSocket settings
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	PingInterval   time.Duration
	MaxMessageSize int64

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:    getEnv("DATABASE_URL", ":memory:"),
		GenAIBaseURL:   getEnv("GENAI_BASE_URL", "https://api.openai.com"),
		GenAIAPIKey:    getEnv("GENAI_API_KEY", ""),
		GenAIModel:     getEnv("GENAI_MODEL", "gpt-4o-mini"),
		GenAITimeout:   time.Duration(getEnvInt("GENAI_TIMEOUT_MS", 30000)) * time.Millisecond,
		MockDelay:      time.Duration(getEnvInt("MOCK_DELAY_MS", 1000)) * time.Millisecond,
		InitialXP:      getEnvInt("INITIAL_XP", 1250),
		InitialStreak:  getEnvInt("INITIAL_STREAK", 3),
		ReadTimeout:    time.Duration(getEnvInt("WS_READ_TIMEOUT_MS", 60000)) * time.Millisecond,
		WriteTimeout:   time.Duration(getEnvInt("WS_WRITE_TIMEOUT_MS", 10000)) * time.Millisecond,
		PingInterval:   time.Duration(getEnvInt("WS_PING_INTERVAL_MS", 30000)) * time.Millisecond,
		MaxMessageSize: int64(getEnvInt("WS_MAX_MESSAGE_SIZE", 4096)),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
