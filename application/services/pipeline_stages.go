package services

import (
	"context"
	"errors"
	"strings"

	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/domain"
)

// PipelineStages wraps the speech collaborators shared by the call runner and
// the upload path. Every failure comes back as a *domain.StageError.
type PipelineStages struct {
	logger          outbound.LoggerPort
	transcriber     outbound.TranscriberPort
	answerGenerator inbound.AnswerGeneratorPort
	audioGenerator  outbound.AudioGeneratorPort
	artifactStore   outbound.ArtifactStorePort
	publicURL       string
}

func NewPipelineStages(logger outbound.LoggerPort, transcriber outbound.TranscriberPort,
	answerGenerator inbound.AnswerGeneratorPort, audioGenerator outbound.AudioGeneratorPort,
	artifactStore outbound.ArtifactStorePort, publicURL string) *PipelineStages {
	return &PipelineStages{
		logger:          logger,
		transcriber:     transcriber,
		answerGenerator: answerGenerator,
		audioGenerator:  audioGenerator,
		artifactStore:   artifactStore,
		publicURL:       strings.TrimRight(publicURL, "/"),
	}
}

func (p *PipelineStages) Transcribe(ctx context.Context, audioPath string) (string, error) {
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err == nil && strings.TrimSpace(transcript) == "" {
		err = domain.ErrEmptyTranscript
	}
	if err != nil {
		p.logger.ErrorWithFields(err, "Transcription failed", map[string]interface{}{
			"path": audioPath,
		})
		return "", domain.NewStageError(domain.TranscriptionFailed, err)
	}
	return strings.TrimSpace(transcript), nil
}

func (p *PipelineStages) Generate(ctx context.Context, query string) (string, error) {
	reply, err := p.answerGenerator.Answer(ctx, query)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errors.New("generator returned an empty reply")
	}
	if err != nil {
		p.logger.Error(err, "Reply generation failed")
		return "", domain.NewStageError(domain.GenerationFailed, err)
	}
	return strings.TrimSpace(reply), nil
}

// Synthesize stores the spoken text under name and returns its public URL.
func (p *PipelineStages) Synthesize(ctx context.Context, text string, name string) (string, error) {
	audio, err := p.audioGenerator.Generate(ctx, outbound.GenerateAudioRequest{Text: text})
	if err == nil && len(audio) == 0 {
		err = errors.New("audio generator returned no audio")
	}
	if err == nil {
		err = p.artifactStore.Save(ctx, name, audio)
	}
	if err != nil {
		p.logger.ErrorWithFields(err, "Speech synthesis failed", map[string]interface{}{
			"name": name,
		})
		return "", domain.NewStageError(domain.SynthesisFailed, err)
	}
	return p.AudioURL(name), nil
}

func (p *PipelineStages) AudioURL(name string) string {
	return p.publicURL + "/audio/" + name
}
