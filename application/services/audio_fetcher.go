package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/domain"
)

type audioFetcher struct {
	logger           outbound.LoggerPort
	recordingFetcher outbound.RecordingFetcherPort
	uploadDir        string
}

func NewAudioFetcher(logger outbound.LoggerPort, recordingFetcher outbound.RecordingFetcherPort, uploadDir string) inbound.AudioFetcherPort {
	return &audioFetcher{
		logger:           logger,
		recordingFetcher: recordingFetcher,
		uploadDir:        uploadDir,
	}
}

func (a *audioFetcher) Fetch(ctx context.Context, callID string, recordingURL string) (string, error) {
	if callID == "" || filepath.Base(callID) != callID {
		return "", domain.NewStageError(domain.FetchFailed, fmt.Errorf("invalid call id %q", callID))
	}

	content, err := a.recordingFetcher.Fetch(ctx, recordingURL)
	if err != nil {
		return "", domain.NewStageError(domain.FetchFailed, err)
	}

	// Unique per run so an abandoned run cannot remove a newer run's recording.
	path := filepath.Join(a.uploadDir, callID+"_"+uuid.NewString()+"_recorded.wav")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		a.logger.ErrorWithFields(err, "Failed to store recording", map[string]interface{}{
			"call_sid": callID,
			"path":     path,
		})
		return "", domain.NewStageError(domain.FetchFailed, err)
	}

	a.logger.DebugWithFields("Recording stored", map[string]interface{}{
		"call_sid": callID,
		"path":     path,
		"bytes":    len(content),
	})
	return path, nil
}
