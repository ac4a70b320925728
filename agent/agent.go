package agent

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/voicemaster/voicemaster/config"
	"github.com/voicemaster/voicemaster/domain"
	"github.com/voicemaster/voicemaster/llm"
)

const remoteConfidence = 0.9

// errEmptyCompletion marks a 2xx completion payload carrying no usable text.
var errEmptyCompletion = errors.New("completion returned no choices")

// Agent is the single entry point for command interpretation. It composes
// the normalizer, the classifier and the response backends. A nil completion
// client means the remote backend was disabled at startup.
type Agent struct {
	client      llm.CompletionClient
	model       string
	maxTokens   int
	temperature float64

	now func() time.Time
}

// New creates an agent. The backend decision is made here, once: client is
// either the configured remote client or nil for deterministic-only mode.
func New(client llm.CompletionClient, cfg *config.Config) *Agent {
	return &Agent{
		client:      client,
		model:       cfg.LLMModel,
		maxTokens:   150,
		temperature: 0.7,
		now:         time.Now,
	}
}

// ProcessCommand interprets one command and always returns a usable
// response. Remote backend failures are absorbed here: the deterministic
// backend answers for the same intent and the caller never sees an error.
func (a *Agent) ProcessCommand(ctx context.Context, cmd domain.Command) domain.AgentResponse {
	cleaned := Normalize(cmd.Text)
	intent := Classify(cleaned)

	if a.client == nil {
		return a.deterministicResponse(intent, cmd.Persona)
	}

	resp, err := a.remoteResponse(ctx, cleaned, intent, cmd.Persona)
	if err != nil {
		log.Printf("WARN: remote completion failed, using deterministic backend: %v", err)
		return a.deterministicResponse(intent, cmd.Persona)
	}
	return resp
}

// remoteResponse asks the completion backend for a persona-flavored reply.
// Any transport or payload problem is returned as a *domain.TransportError
// so ProcessCommand can take the deterministic branch.
func (a *Agent) remoteResponse(ctx context.Context, text string, intent domain.Intent, persona domain.Persona) (domain.AgentResponse, error) {
	profile := persona.Profile()

	req := &llm.ChatCompletionRequest{
		Model: a.model,
		Messages: []llm.ChatMessage{
			{Role: "system", Content: profile.SystemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: &a.temperature,
		MaxTokens:   &a.maxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return domain.AgentResponse{}, &domain.TransportError{Op: "chat completion", Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil || resp.Choices[0].Message.Content == "" {
		return domain.AgentResponse{}, &domain.TransportError{Op: "chat completion", Err: errEmptyCompletion}
	}

	return domain.AgentResponse{
		Text:        resp.Choices[0].Message.Content,
		Intent:      intent,
		Confidence:  remoteConfidence,
		ShouldSpeak: true,
	}, nil
}

// TestPersonaVoice returns one greeting from the persona's pool. No state is
// retained between calls.
func (a *Agent) TestPersonaVoice(persona domain.Persona) string {
	greetings := persona.Profile().Greetings
	return greetings[rand.Intn(len(greetings))]
}
