package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/donovanhide/eventsource"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
)

const DoneSignal = "[DONE]"

type chatGptRequest struct {
	Stream    bool             `json:"stream"`
	Model     string           `json:"model"`
	MaxTokens int              `json:"max_tokens,omitempty"`
	Messages  []chatGptMessage `json:"messages"`
}

type chatGptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatGptChunkBody struct {
	Choices []chatGptResponseChoice `json:"choices"`
}

type chatGptResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

type gptReplyGenerator struct {
	logger    outbound.LoggerPort
	gptConfig *config.GptConfig
}

func NewGptReplyGenerator(gptConfig *config.GptConfig, logger outbound.LoggerPort) outbound.ReplyGeneratorPort {
	return &gptReplyGenerator{
		logger:    logger,
		gptConfig: gptConfig,
	}
}

// Complete streams a chat completion and joins the deltas. The request is made
// once; a broken stream fails the whole completion.
func (g *gptReplyGenerator) Complete(ctx context.Context, completion outbound.CompletionRequest) (string, error) {
	req, err := g.createRequest(ctx, completion)
	if err != nil {
		g.logger.Error(err, "Failed to create HTTP request for reply stream")
		return "", err
	}

	stream, err := eventsource.SubscribeWithRequest("", req)
	if err != nil {
		g.logger.Error(err, "Failed to subscribe to reply stream")
		return "", err
	}
	defer stream.Close()

	var builder strings.Builder
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev, ok := <-stream.Events:
			if !ok {
				return g.finish(builder.String())
			}
			if ev.Data() == DoneSignal {
				return g.finish(builder.String())
			}
			payload, err := g.extractPayload(ev)
			if err != nil {
				return "", err
			}
			builder.WriteString(payload)
		case err := <-stream.Errors:
			if errors.Is(err, io.EOF) {
				return g.finish(builder.String())
			}
			g.logger.Error(err, "Error occurred during reply streaming")
			return "", err
		}
	}
}

func (g *gptReplyGenerator) finish(reply string) (string, error) {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("reply stream ended without content")
	}
	return reply, nil
}

func (g *gptReplyGenerator) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody chatGptChunkBody
	err := json.Unmarshal([]byte(event.Data()), &chunkBody)
	if err != nil {
		g.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}

	return chunkBody.Choices[0].Delta.Content, nil
}

func (g *gptReplyGenerator) createRequest(ctx context.Context, completion outbound.CompletionRequest) (*http.Request, error) {
	messages := make([]chatGptMessage, 0, 2)
	if completion.SystemPrompt != "" {
		messages = append(messages, chatGptMessage{Role: "system", Content: completion.SystemPrompt})
	}
	messages = append(messages, chatGptMessage{Role: "user", Content: completion.Query})

	promptReq := chatGptRequest{
		Stream:    true,
		Model:     g.gptConfig.Model,
		MaxTokens: g.gptConfig.MaxTokens,
		Messages:  messages,
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.gptConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+g.gptConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	return req, nil
}
