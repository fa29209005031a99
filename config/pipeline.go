package config

import (
	"fmt"
	"time"
)

const (
	ProviderMock       = "mock"
	ProviderWhisper    = "whisper"
	ProviderGpt        = "gpt"
	ProviderGemini     = "gemini"
	ProviderElevenLabs = "elevenlabs"
	ProviderPolly      = "polly"
)

const (
	defaultIntroText   = "Hi there! Calling from Paradise Holidays, your travel assistant calling to collect feedback. How is your trip going so far?"
	defaultApologyText = "I apologize, but I encountered an error processing your feedback."
)

type PipelineConfig struct {
	SttProvider        string
	GenerationProvider string
	TtsProvider        string
	WorkerPoolSize     int
	RunnerTimeout      time.Duration
	PollPause          time.Duration
	MaxPolls           int
	FirstReplyLimit    int
	FollowUpReplyLimit int
	RecordMaxLength    time.Duration
	RecordTimeout      time.Duration
	IntroText          string
	ApologyText        string
	MockScriptFile     string
	Port               string
}

func GetPipelineConfig() (*PipelineConfig, error) {
	sttProvider := getEnvOrDefault("STT_PROVIDER", ProviderWhisper)
	if sttProvider != ProviderWhisper && sttProvider != ProviderMock {
		return nil, fmt.Errorf("unknown STT_PROVIDER %q", sttProvider)
	}
	generationProvider := getEnvOrDefault("GENERATION_PROVIDER", ProviderGpt)
	if generationProvider != ProviderGpt && generationProvider != ProviderGemini && generationProvider != ProviderMock {
		return nil, fmt.Errorf("unknown GENERATION_PROVIDER %q", generationProvider)
	}
	ttsProvider := getEnvOrDefault("TTS_PROVIDER", ProviderElevenLabs)
	if ttsProvider != ProviderElevenLabs && ttsProvider != ProviderPolly && ttsProvider != ProviderMock {
		return nil, fmt.Errorf("unknown TTS_PROVIDER %q", ttsProvider)
	}

	workerPoolSize, err := getEnvInt("WORKER_POOL_SIZE", 120)
	if err != nil {
		return nil, err
	}
	runnerTimeout, err := getEnvInt("RUNNER_TIMEOUT_SECONDS", 45)
	if err != nil {
		return nil, err
	}
	pollPause, err := getEnvInt("POLL_PAUSE_SECONDS", 2)
	if err != nil {
		return nil, err
	}
	maxPolls, err := getEnvInt("MAX_POLLS", 30)
	if err != nil {
		return nil, err
	}
	firstReplyLimit, err := getEnvInt("FIRST_REPLY_LIMIT", 200)
	if err != nil {
		return nil, err
	}
	followUpReplyLimit, err := getEnvInt("FOLLOW_UP_REPLY_LIMIT", 100)
	if err != nil {
		return nil, err
	}
	recordMaxLength, err := getEnvInt("RECORD_MAX_LENGTH_SECONDS", 15)
	if err != nil {
		return nil, err
	}
	recordTimeout, err := getEnvInt("RECORD_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}

	return &PipelineConfig{
		SttProvider:        sttProvider,
		GenerationProvider: generationProvider,
		TtsProvider:        ttsProvider,
		WorkerPoolSize:     workerPoolSize,
		RunnerTimeout:      time.Duration(runnerTimeout) * time.Second,
		PollPause:          time.Duration(pollPause) * time.Second,
		MaxPolls:           maxPolls,
		FirstReplyLimit:    firstReplyLimit,
		FollowUpReplyLimit: followUpReplyLimit,
		RecordMaxLength:    time.Duration(recordMaxLength) * time.Second,
		RecordTimeout:      time.Duration(recordTimeout) * time.Second,
		IntroText:          getEnvOrDefault("INTRO_TEXT", defaultIntroText),
		ApologyText:        getEnvOrDefault("APOLOGY_TEXT", defaultApologyText),
		MockScriptFile:     getEnvOrDefault("MOCK_SCRIPT_FILE", ""),
		Port:               getEnvOrDefault("PORT", "8000"),
	}, nil
}
