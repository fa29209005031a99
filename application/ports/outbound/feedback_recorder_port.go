package outbound

import (
	"context"

	"github.com/riyadominic123/ai-call/domain"
)

type FeedbackRecorderPort interface {
	Record(ctx context.Context, entry domain.FeedbackEntry) error
}
