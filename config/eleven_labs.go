package config

import (
	"fmt"
	"os"
	"strconv"
)

type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	ModelId         string
	VoiceID         string
	Stability       float64
	SimilarityBoost float64
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiUrl := getEnvOrDefault("ELEVEN_LABS_API_URL", "https://api.elevenlabs.io/v1/text-to-speech")
	apiKey := os.Getenv("ELEVEN_LABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_API_KEY must be set")
	}
	voiceID := os.Getenv("ELEVEN_LABS_VOICE_ID")
	if voiceID == "" {
		return nil, fmt.Errorf("ELEVEN_LABS_VOICE_ID must be set")
	}
	modelId := getEnvOrDefault("ELEVEN_LABS_MODEL_ID", "eleven_turbo_v2")
	stabilityVal, err := strconv.ParseFloat(getEnvOrDefault("ELEVEN_LABS_STABILITY", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse eleven labs stability: %w", err)
	}
	similarityBoostVal, err := strconv.ParseFloat(getEnvOrDefault("ELEVEN_LABS_SIMILARITY_BOOST", "0.75"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse eleven labs similarity boost: %w", err)
	}

	return &ElevenLabsConfig{
		ApiUrl:          apiUrl,
		ApiKey:          apiKey,
		ModelId:         modelId,
		VoiceID:         voiceID,
		Stability:       stabilityVal,
		SimilarityBoost: similarityBoostVal,
	}, nil
}
