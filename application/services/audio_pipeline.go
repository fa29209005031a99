package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/domain"
)

var supportedUploadFormats = map[string]struct{}{
	".wav": {},
	".mp3": {},
	".ogg": {},
}

type audioPipeline struct {
	logger    outbound.LoggerPort
	stages    *PipelineStages
	uploadDir string
}

func NewAudioPipeline(logger outbound.LoggerPort, stages *PipelineStages, uploadDir string) inbound.AudioPipelinePort {
	return &audioPipeline{
		logger:    logger,
		stages:    stages,
		uploadDir: uploadDir,
	}
}

// Process runs the uploaded file through every stage inline. The reply is
// spoken in full.
func (a *audioPipeline) Process(ctx context.Context, params inbound.ProcessAudioParams) (*inbound.ProcessAudioResult, error) {
	ext := strings.ToLower(filepath.Ext(params.FileName))
	if _, ok := supportedUploadFormats[ext]; !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedAudioFormat, params.FileName)
	}

	id := uuid.NewString()
	uploadPath, err := a.storeUpload(id, ext, params.Content)
	if err != nil {
		return nil, err
	}

	transcript, err := a.stages.Transcribe(ctx, uploadPath)
	if removeErr := os.Remove(uploadPath); removeErr != nil {
		a.logger.ErrorWithFields(removeErr, "Failed to remove upload", map[string]interface{}{
			"path": uploadPath,
		})
	}
	if err != nil {
		return nil, err
	}

	reply, err := a.stages.Generate(ctx, transcript)
	if err != nil {
		return nil, err
	}

	audioName := "reply_" + id + ".mp3"
	audioURL, err := a.stages.Synthesize(ctx, reply, audioName)
	if err != nil {
		return nil, err
	}

	a.logger.InfoWithFields("Upload processed", map[string]interface{}{
		"file":       params.FileName,
		"audio_name": audioName,
	})
	return &inbound.ProcessAudioResult{
		Transcript: transcript,
		Reply:      reply,
		AudioName:  audioName,
		AudioURL:   audioURL,
	}, nil
}

func (a *audioPipeline) storeUpload(id string, ext string, content io.Reader) (string, error) {
	path := filepath.Join(a.uploadDir, "upload_"+id+ext)
	file, err := os.Create(path)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to create upload file", map[string]interface{}{
			"path": path,
		})
		return "", err
	}
	_, err = io.Copy(file, content)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		a.logger.ErrorWithFields(err, "Failed to store upload", map[string]interface{}{
			"path": path,
		})
		return "", err
	}
	return path, nil
}
