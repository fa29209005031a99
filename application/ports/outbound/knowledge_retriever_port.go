package outbound

import "context"

type KnowledgeRetrieverPort interface {
	Retrieve(ctx context.Context, query string, limit int) ([]string, error)
}
