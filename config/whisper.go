package config

import (
	"fmt"
	"os"
)

type WhisperConfig struct {
	ApiKey   string
	BaseURL  string
	Model    string
	Language string
}

func GetWhisperConfig() (*WhisperConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	return &WhisperConfig{
		ApiKey:   apiKey,
		BaseURL:  os.Getenv("OPENAI_BASE_URL"),
		Model:    getEnvOrDefault("WHISPER_MODEL", "whisper-1"),
		Language: os.Getenv("WHISPER_LANGUAGE"),
	}, nil
}
