package llm

import (
	"testing"
	"time"
)

func TestNewCompletionClientWithoutKey(t *testing.T) {
	t.Setenv(EnvVoiceMode, "")

	client := NewCompletionClient("https://api.openai.com", "", time.Second)
	if client != nil {
		t.Fatalf("expected nil client without an API key, got %T", client)
	}
}

func TestNewCompletionClientWithKey(t *testing.T) {
	t.Setenv(EnvVoiceMode, "")

	client := NewCompletionClient("https://api.openai.com", "sk-test", time.Second)
	if _, ok := client.(*Client); !ok {
		t.Fatalf("expected *Client, got %T", client)
	}
}

func TestNewCompletionClientMockMode(t *testing.T) {
	t.Setenv(EnvVoiceMode, ModeMock)

	client := NewCompletionClient("", "", time.Second)
	if _, ok := client.(*MockClient); !ok {
		t.Fatalf("expected *MockClient, got %T", client)
	}
}
