package config

import (
	"fmt"
	"os"
)

type GptConfig struct {
	ApiUrl    string
	ApiKey    string
	Model     string
	MaxTokens int
}

func GetGptConfig() (*GptConfig, error) {
	model := os.Getenv("GPT_MODEL")
	if model == "" {
		return nil, fmt.Errorf("GPT_MODEL must be set")
	}
	apiUrl := getEnvOrDefault("GPT_API_URL", "https://api.openai.com/v1/chat/completions")
	apiKey := getEnvOrDefault("GPT_API_KEY", os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("GPT_API_KEY must be set")
	}
	maxTokens, err := getEnvInt("GPT_MAX_TOKENS", 64)
	if err != nil {
		return nil, err
	}
	return &GptConfig{
		ApiUrl:    apiUrl,
		ApiKey:    apiKey,
		Model:     model,
		MaxTokens: maxTokens,
	}, nil
}
