package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
	"google.golang.org/genai"
)

type geminiReplyGenerator struct {
	logger       outbound.LoggerPort
	client       *genai.Client
	geminiConfig *config.GeminiConfig
}

func NewGeminiReplyGenerator(ctx context.Context, geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) (outbound.ReplyGeneratorPort, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: geminiConfig.ApiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &geminiReplyGenerator{
		logger:       logger,
		client:       client,
		geminiConfig: geminiConfig,
	}, nil
}

func (g *geminiReplyGenerator) Complete(ctx context.Context, completion outbound.CompletionRequest) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(g.geminiConfig.MaxTokens),
	}
	if completion.SystemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{genai.NewPartFromText(completion.SystemPrompt)}}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.geminiConfig.Model, []*genai.Content{
		{Parts: []*genai.Part{genai.NewPartFromText(completion.Query)}, Role: "user"},
	}, cfg)
	if err != nil {
		g.logger.ErrorWithFields(err, "Failed to generate content with Gemini", map[string]interface{}{
			"model": g.geminiConfig.Model,
		})
		return "", err
	}

	var sb strings.Builder
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("gemini returned no text")
	}

	return reply, nil
}
