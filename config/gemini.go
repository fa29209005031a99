package config

import (
	"fmt"
	"os"
)

type GeminiConfig struct {
	ApiKey    string
	Model     string
	MaxTokens int
}

func GetGeminiConfig() (*GeminiConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}
	maxTokens, err := getEnvInt("GEMINI_MAX_TOKENS", 64)
	if err != nil {
		return nil, err
	}
	return &GeminiConfig{
		ApiKey:    apiKey,
		Model:     getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		MaxTokens: maxTokens,
	}, nil
}
