// Package config provides configuration for the assistant service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Remote completion backend. An empty API key disables the remote
	// backend for the whole process lifetime.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	LLMModel      string
	LLMTimeout    time.Duration

	// Trial settings
	TrialDuration     time.Duration
	CountdownInterval time.Duration

	// Simulated recognizer
	RecognizerDelay time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:          getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:       getEnv("DATABASE_URL", "file:voicemaster.db?cache=shared&mode=rwc"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		LLMModel:          getEnv("LLM_MODEL", "gpt-3.5-turbo"),
		LLMTimeout:        time.Duration(getEnvInt("LLM_TIMEOUT_MS", 30000)) * time.Millisecond,
		TrialDuration:     time.Duration(getEnvInt("TRIAL_DURATION_HOURS", 24)) * time.Hour,
		CountdownInterval: time.Duration(getEnvInt("COUNTDOWN_INTERVAL_MS", 1000)) * time.Millisecond,
		RecognizerDelay:   time.Duration(getEnvInt("RECOGNIZER_DELAY_MS", 2000)) * time.Millisecond,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
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
