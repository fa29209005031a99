package outbound

import "context"

type CompletionRequest struct {
	SystemPrompt string
	Query        string
}

type ReplyGeneratorPort interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
