// Package llm provides the chat completion client used by the remote
// response backend.
package llm

import "context"

// CompletionClient defines the interface for chat completion operations.
type CompletionClient interface {
	// CreateChatCompletion sends a non-streaming chat completion request.
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
}

// Ensure Client implements CompletionClient interface.
var _ CompletionClient = (*Client)(nil)
