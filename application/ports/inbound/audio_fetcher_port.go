package inbound

import "context"

type AudioFetcherPort interface {
	// Fetch stores the call recording locally and returns its path. The caller
	// owns the file and must remove it.
	Fetch(ctx context.Context, callID string, recordingURL string) (string, error)
}
