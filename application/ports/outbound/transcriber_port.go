package outbound

import "context"

type TranscriberPort interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
