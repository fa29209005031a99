package adapters

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
)

type pollyAudioGenerator struct {
	logger      outbound.LoggerPort
	pollySvc    *polly.Polly
	pollyConfig *config.PollyConfig
}

func NewPollyAudioGenerator(logger outbound.LoggerPort, pollySvc *polly.Polly, pollyConfig *config.PollyConfig) outbound.AudioGeneratorPort {
	return &pollyAudioGenerator{
		logger:      logger,
		pollySvc:    pollySvc,
		pollyConfig: pollyConfig,
	}
}

func (p *pollyAudioGenerator) Generate(ctx context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = p.pollyConfig.VoiceID
	}

	output, err := p.pollySvc.SynthesizeSpeechWithContext(ctx, &polly.SynthesizeSpeechInput{
		Engine:       aws.String(p.pollyConfig.Engine),
		OutputFormat: aws.String(polly.OutputFormatMp3),
		Text:         aws.String(req.Text),
		TextType:     aws.String(polly.TextTypeText),
		VoiceId:      aws.String(voiceID),
	})
	if err != nil {
		p.logger.ErrorWithFields(err, "Failed to synthesize speech with Polly", map[string]interface{}{
			"voice": voiceID,
		})
		return nil, err
	}
	defer func(stream io.ReadCloser) {
		err := stream.Close()
		if err != nil {
			p.logger.Error(err, "Failed to close the Polly audio stream")
		}
	}(output.AudioStream)

	audio, err := io.ReadAll(output.AudioStream)
	if err != nil {
		p.logger.Error(err, "Failed to read the Polly audio stream")
		return nil, err
	}

	return audio, nil
}
