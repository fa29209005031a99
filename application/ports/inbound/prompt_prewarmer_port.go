package inbound

import (
	"context"

	"github.com/riyadominic123/ai-call/domain"
)

type PromptPrewarmerPort interface {
	// Prewarm returns the audio URL of every prompt that was synthesized,
	// keyed by prompt name, along with the failures of the rest.
	Prewarm(ctx context.Context, prompts []domain.Prompt) (map[string]string, error)
}
