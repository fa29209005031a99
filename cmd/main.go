package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/application/services"
	"github.com/riyadominic123/ai-call/config"
	"github.com/riyadominic123/ai-call/domain"
	"github.com/riyadominic123/ai-call/infrastructure/adapters"
	"github.com/riyadominic123/ai-call/infrastructure/gin_interface/controllers"
	"github.com/riyadominic123/ai-call/infrastructure/sessions"
	"github.com/riyadominic123/ai-call/middleware"
	"github.com/rs/zerolog/log"
)

const (
	introPromptName   = "intro.mp3"
	apologyPromptName = "apology.mp3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	loggingConfig, err := config.GetLoggingConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get logging config")
	}

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	twilioConfig, err := config.GetTwilioConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get twilio config")
	}

	audioConfig, err := config.GetAudioConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get audio config")
	}

	knowledgeConfig, err := config.GetKnowledgeConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get knowledge config")
	}

	var logSinks []io.Writer
	if loggingConfig.File != "" {
		logFile := adapters.NewRotatingLogFile(loggingConfig.File, loggingConfig.FileMaxSizeMB, loggingConfig.FileMaxBackups)
		defer logFile.Close()
		logSinks = append(logSinks, logFile)
	}
	zeroLogger := adapters.NewZerologWrapperWithOptions(loggingConfig.Level, loggingConfig.Format, logSinks...)

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	// Webhooks must never wait for pipeline capacity, so a full pool rejects
	// the run and the caller hears the apology.
	workerPool, err := ants.NewPool(pipelineConfig.WorkerPoolSize,
		ants.WithPanicHandler(panicHandler),
		ants.WithNonblocking(true))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	transcriber, err := newTranscriber(router, pipelineConfig, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create transcriber")
	}

	replyGenerator, err := newReplyGenerator(ctx, pipelineConfig, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create reply generator")
	}

	audioGenerator, err := newAudioGenerator(sess, contentFetcher, pipelineConfig, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create audio generator")
	}

	artifactStore, err := newArtifactStore(sess, audioConfig, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create artifact store")
	}

	knowledgeBase, err := adapters.NewMarkdownKnowledgeBase(knowledgeConfig.BasePath, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load knowledge base")
	}

	feedbackRecorder := newFeedbackRecorder(sess, zeroLogger)

	recordingFetcher := adapters.NewTwilioRecordingFetcher(contentFetcher, twilioConfig, zeroLogger)

	resultStore := sessions.NewResultStore(zeroLogger, sessions.DefaultShardCount)
	replyLedger := sessions.NewReplyLedger(sessions.DefaultShardCount)
	pollCounter := sessions.NewPollCounter(sessions.DefaultShardCount)

	answerGenerator := services.NewAnswerGenerator(zeroLogger, knowledgeBase, replyGenerator, knowledgeConfig.TopK)

	stages := services.NewPipelineStages(zeroLogger, transcriber, answerGenerator, audioGenerator, artifactStore, twilioConfig.PublicURL)

	audioFetcher := services.NewAudioFetcher(zeroLogger, recordingFetcher, audioConfig.UploadDir)

	runner := services.NewPipelineRunner(zeroLogger, workerPool, audioFetcher, stages, resultStore, replyLedger, feedbackRecorder,
		services.PipelineRunnerOptions{
			Timeout:            pipelineConfig.RunnerTimeout,
			FirstReplyLimit:    pipelineConfig.FirstReplyLimit,
			FollowUpReplyLimit: pipelineConfig.FollowUpReplyLimit,
		})

	audioPipeline := services.NewAudioPipeline(zeroLogger, stages, audioConfig.UploadDir)

	promptURLs := prewarmPrompts(ctx, services.NewPromptPrewarmer(zeroLogger, workerPool, stages), pipelineConfig)

	janitor := services.NewArtifactJanitor(zeroLogger, artifactStore, audioConfig.Retention)
	go janitor.Run(ctx, audioConfig.SweepInterval)

	voiceController := controllers.NewVoiceController(zeroLogger, runner, resultStore, replyLedger, pollCounter,
		controllers.VoiceControllerOptions{
			PublicURL:       twilioConfig.PublicURL,
			IntroAudioURL:   promptURLs[introPromptName],
			IntroText:       pipelineConfig.IntroText,
			ApologyText:     pipelineConfig.ApologyText,
			ApologyAudioURL: promptURLs[apologyPromptName],
			PollPause:       pipelineConfig.PollPause,
			MaxPolls:        pipelineConfig.MaxPolls,
			RecordMaxLength: pipelineConfig.RecordMaxLength,
			RecordTimeout:   pipelineConfig.RecordTimeout,
		})

	audioController := controllers.NewAudioController(zeroLogger, audioPipeline, artifactStore)

	var webhookMiddlewares []gin.HandlerFunc
	if twilioConfig.ValidateSignature {
		webhookMiddlewares = append(webhookMiddlewares,
			middleware.TwilioSignature(twilioConfig.AuthToken, twilioConfig.PublicURL, zeroLogger))
	} else {
		zeroLogger.Warn("Twilio signature validation is disabled")
	}

	var uploadMiddlewares []gin.HandlerFunc
	if authConfig, err := config.GetAuthConfig(); err == nil {
		authHandler, err := middleware.NewAuthHandler(authConfig.JwksURL, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		uploadMiddlewares = append(uploadMiddlewares, authHandler.AuthMiddleware())
	} else {
		zeroLogger.Warn("JWKS_URL not set, the upload endpoint is unauthenticated")
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	voiceController.RegisterRoutes(router, webhookMiddlewares...)
	audioController.RegisterRoutes(router, uploadMiddlewares...)

	err = router.Run(":" + pipelineConfig.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}

// prewarmPrompts synthesizes the fixed prompts once at startup. A prompt
// missing from the result is spoken with <Say> instead.
func prewarmPrompts(ctx context.Context, prewarmer inbound.PromptPrewarmerPort, pipelineConfig *config.PipelineConfig) map[string]string {
	prewarmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	urls, err := prewarmer.Prewarm(prewarmCtx, []domain.Prompt{
		{Name: introPromptName, Text: pipelineConfig.IntroText},
		{Name: apologyPromptName, Text: pipelineConfig.ApologyText},
	})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to prewarm some prompts, falling back to spoken text")
	}
	return urls
}
