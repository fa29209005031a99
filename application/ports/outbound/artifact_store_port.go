package outbound

import (
	"context"
	"io"

	"github.com/riyadominic123/ai-call/domain"
)

// ArtifactStorePort keeps synthesized audio until it is served. Open and Delete
// return domain.ErrArtifactNotFound for unknown names.
type ArtifactStorePort interface {
	Save(ctx context.Context, name string, content []byte) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.ArtifactInfo, error)
}
