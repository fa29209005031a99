package main

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
	"github.com/riyadominic123/ai-call/infrastructure/adapters"
	mockgenerator "github.com/riyadominic123/ai-call/mock"
)

func newTranscriber(router *gin.Engine, pipelineConfig *config.PipelineConfig, logger outbound.LoggerPort) (outbound.TranscriberPort, error) {
	if pipelineConfig.SttProvider == config.ProviderMock {
		turns, err := mockgenerator.Init(router, pipelineConfig.MockScriptFile, logger)
		if err != nil {
			return nil, err
		}
		return mockgenerator.NewScriptedTranscriber(turns, logger), nil
	}

	whisperConfig, err := config.GetWhisperConfig()
	if err != nil {
		return nil, err
	}
	return adapters.NewWhisperTranscriber(whisperConfig, logger), nil
}

func newReplyGenerator(ctx context.Context, pipelineConfig *config.PipelineConfig, logger outbound.LoggerPort) (outbound.ReplyGeneratorPort, error) {
	switch pipelineConfig.GenerationProvider {
	case config.ProviderMock:
		return mockgenerator.NewEchoReplyGenerator(), nil
	case config.ProviderGemini:
		geminiConfig, err := config.GetGeminiConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewGeminiReplyGenerator(ctx, geminiConfig, logger)
	default:
		gptConfig, err := config.GetGptConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewGptReplyGenerator(gptConfig, logger), nil
	}
}

func newAudioGenerator(sess *session.Session, contentFetcher adapters.ContentFetcher, pipelineConfig *config.PipelineConfig,
	logger outbound.LoggerPort) (outbound.AudioGeneratorPort, error) {
	switch pipelineConfig.TtsProvider {
	case config.ProviderMock:
		return mockgenerator.NewFakeAudioGenerator(), nil
	case config.ProviderPolly:
		pollyConfig, err := config.GetPollyConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewPollyAudioGenerator(logger, polly.New(sess), pollyConfig), nil
	default:
		elevenLabsConfig, err := config.GetElevenLabsConfig()
		if err != nil {
			return nil, err
		}
		return adapters.NewAudioGenerator(contentFetcher, elevenLabsConfig, logger), nil
	}
}

func newArtifactStore(sess *session.Session, audioConfig *config.AudioConfig, logger outbound.LoggerPort) (outbound.ArtifactStorePort, error) {
	if audioConfig.ArtifactStore != config.ArtifactStoreS3 {
		return adapters.NewLocalArtifactStore(audioConfig.OutputDir, logger), nil
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		return nil, err
	}
	return adapters.NewS3ArtifactStore(s3.New(sess, aws.NewConfig().WithRegion(s3Config.Region)), s3Config, logger), nil
}

// newFeedbackRecorder falls back to logging turns when no table is configured.
func newFeedbackRecorder(sess *session.Session, logger outbound.LoggerPort) outbound.FeedbackRecorderPort {
	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		logger.Warn("Feedback table not configured, recording turns to the log: " + err.Error())
		return adapters.NewLogFeedbackRecorder(logger)
	}
	return adapters.NewDynamoFeedbackRecorder(logger, dynamodb.New(sess), dynamoConfig)
}
