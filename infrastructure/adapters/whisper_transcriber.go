package adapters

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
	"github.com/riyadominic123/ai-call/domain"
)

type whisperTranscriber struct {
	logger        outbound.LoggerPort
	client        *openai.Client
	whisperConfig *config.WhisperConfig
}

func NewWhisperTranscriber(whisperConfig *config.WhisperConfig, logger outbound.LoggerPort) outbound.TranscriberPort {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(whisperConfig.ApiKey),
		option.WithMaxRetries(0),
	}
	if whisperConfig.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(whisperConfig.BaseURL))
	}
	client := openai.NewClient(clientOpts...)

	return &whisperTranscriber{
		logger:        logger,
		client:        &client,
		whisperConfig: whisperConfig,
	}
}

func (w *whisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		w.logger.ErrorWithFields(err, "Failed to open recording for transcription", map[string]interface{}{
			"path": audioPath,
		})
		return "", err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			w.logger.Error(err, "Failed to close recording file")
		}
	}(file)

	params := openai.AudioTranscriptionNewParams{
		File:  io.Reader(file),
		Model: openai.AudioModel(w.whisperConfig.Model),
	}
	if w.whisperConfig.Language != "" {
		params.Language = openai.String(w.whisperConfig.Language)
	}

	transcription, err := w.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		w.logger.ErrorWithFields(err, "Failed to transcribe recording", map[string]interface{}{
			"path": audioPath,
		})
		return "", err
	}

	text := strings.TrimSpace(transcription.Text)
	if text == "" {
		return "", domain.ErrEmptyTranscript
	}
	return text, nil
}
