package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
)

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type audioGenerator struct {
	ContentFetcher
	logger           outbound.LoggerPort
	elevenLabsConfig *config.ElevenLabsConfig
}

func NewAudioGenerator(contentFetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig,
	logger outbound.LoggerPort) outbound.AudioGeneratorPort {
	return &audioGenerator{
		ContentFetcher:   contentFetcher,
		logger:           logger,
		elevenLabsConfig: elevenLabsConfig,
	}
}

func (a *audioGenerator) Generate(ctx context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = a.elevenLabsConfig.VoiceID
	}

	httpReq, err := a.getRequest(ctx, req.Text, voiceID)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to construct the HTTP request for audio fetching", map[string]interface{}{
			"action": "Fetching Audio",
			"text":   req.Text,
		})
		return nil, err
	}

	return a.FetchContent(httpReq)
}

func (a *audioGenerator) getRequest(ctx context.Context, text string, voiceID string) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:    text,
		ModelId: a.elevenLabsConfig.ModelId,
		VoiceSettings: VoiceSettings{
			Stability:       a.elevenLabsConfig.Stability,
			SimilarityBoost: a.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		a.logger.Error(err, "Failed to marshal the request body for ElevenLabs API")
		return nil, err
	}

	url := strings.TrimRight(a.elevenLabsConfig.ApiUrl, "/") + "/" + voiceID
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to create the HTTP POST request", map[string]interface{}{
			"URL": url,
		})
		return nil, err
	}

	reqHeaders := map[string]string{
		"Accept":       "audio/mpeg",
		"xi-api-key":   a.elevenLabsConfig.ApiKey,
		"Content-Type": "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Add(key, value)
	}

	return req, nil
}
