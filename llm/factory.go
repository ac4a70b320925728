package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvVoiceMode is the environment variable name for mode selection.
	EnvVoiceMode = "VOICE_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewCompletionClient decides the remote backend once at startup. With
// VOICE_MODE=MOCK a MockClient is returned; with an empty API key the remote
// backend is disabled for the process lifetime and the caller gets nil,
// routing every command to the deterministic templates.
func NewCompletionClient(baseURL, apiKey string, timeout time.Duration) CompletionClient {
	if os.Getenv(EnvVoiceMode) == ModeMock {
		log.Println("VOICE_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}

	if apiKey == "" {
		log.Println("No completion API key configured, remote backend disabled")
		return nil
	}

	return NewClient(baseURL, apiKey, timeout)
}
