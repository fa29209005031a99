package services

import (
	"context"
	"strings"

	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
)

const answerInstructions = "Use the following pieces of context to answer the question at the end. " +
	"If you don't know the answer, just say that you don't know, don't try to make up an answer. " +
	"Keep the answer extremely concise (under 2 sentences)."

type answerGenerator struct {
	logger         outbound.LoggerPort
	retriever      outbound.KnowledgeRetrieverPort
	replyGenerator outbound.ReplyGeneratorPort
	topK           int
}

func NewAnswerGenerator(logger outbound.LoggerPort, retriever outbound.KnowledgeRetrieverPort,
	replyGenerator outbound.ReplyGeneratorPort, topK int) inbound.AnswerGeneratorPort {
	return &answerGenerator{
		logger:         logger,
		retriever:      retriever,
		replyGenerator: replyGenerator,
		topK:           topK,
	}
}

// Answer grounds the reply in the closest knowledge base sections. A failed
// lookup degrades to an answer without context.
func (a *answerGenerator) Answer(ctx context.Context, query string) (string, error) {
	sections, err := a.retriever.Retrieve(ctx, query, a.topK)
	if err != nil {
		a.logger.Warn("Knowledge retrieval failed, answering without context: " + err.Error())
		sections = nil
	}

	return a.replyGenerator.Complete(ctx, outbound.CompletionRequest{
		SystemPrompt: buildSystemPrompt(sections),
		Query:        "Question: " + query + "\nAnswer:",
	})
}

func buildSystemPrompt(sections []string) string {
	var builder strings.Builder
	builder.WriteString(answerInstructions)
	builder.WriteString("\n\nContext: ")
	builder.WriteString(strings.Join(sections, "\n\n"))
	return builder.String()
}
