package adapters

import (
	"context"
	"net/http"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
)

type twilioRecordingFetcher struct {
	ContentFetcher
	logger       outbound.LoggerPort
	twilioConfig *config.TwilioConfig
}

func NewTwilioRecordingFetcher(contentFetcher ContentFetcher, twilioConfig *config.TwilioConfig,
	logger outbound.LoggerPort) outbound.RecordingFetcherPort {
	return &twilioRecordingFetcher{
		ContentFetcher: contentFetcher,
		logger:         logger,
		twilioConfig:   twilioConfig,
	}
}

// Fetch downloads a recording using the account credentials. Twilio serves the
// media URL without extension as WAV.
func (t *twilioRecordingFetcher) Fetch(ctx context.Context, recordingURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, recordingURL, nil)
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to create the recording request", map[string]interface{}{
			"URL": recordingURL,
		})
		return nil, err
	}
	req.SetBasicAuth(t.twilioConfig.AccountSID, t.twilioConfig.AuthToken)

	return t.FetchContent(req)
}
