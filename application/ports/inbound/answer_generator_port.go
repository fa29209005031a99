package inbound

import "context"

type AnswerGeneratorPort interface {
	Answer(ctx context.Context, query string) (string, error)
}
