package outbound

import "context"

type RecordingFetcherPort interface {
	Fetch(ctx context.Context, recordingURL string) ([]byte, error)
}
