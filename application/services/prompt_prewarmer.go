package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/channel_utils"
	"github.com/riyadominic123/ai-call/domain"
)

type promptResult struct {
	name string
	url  string
	err  error
}

type promptPrewarmer struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	stages     *PipelineStages
}

func NewPromptPrewarmer(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher, stages *PipelineStages) inbound.PromptPrewarmerPort {
	return &promptPrewarmer{
		logger:     logger,
		workerPool: workerPool,
		stages:     stages,
	}
}

// Prewarm synthesizes every prompt concurrently and waits for all of them.
func (p *promptPrewarmer) Prewarm(ctx context.Context, prompts []domain.Prompt) (map[string]string, error) {
	resultChannels := make([]<-chan promptResult, 0, len(prompts))
	for _, prompt := range prompts {
		resultCh := make(chan promptResult, 1)
		prompt := prompt
		err := p.workerPool.Submit(func() {
			defer close(resultCh)
			url, err := p.stages.Synthesize(ctx, prompt.Text, prompt.Name)
			if err != nil {
				resultCh <- promptResult{name: prompt.Name, err: fmt.Errorf("prompt %s: %w", prompt.Name, err)}
				return
			}
			p.logger.InfoWithFields("Prompt synthesized", map[string]interface{}{
				"name": prompt.Name,
			})
			resultCh <- promptResult{name: prompt.Name, url: url}
		})
		if err != nil {
			return nil, err
		}
		resultChannels = append(resultChannels, resultCh)
	}

	merged, err := channel_utils.MergeChannels(ctx, p.workerPool, resultChannels...)
	if err != nil {
		return nil, err
	}

	urls := make(map[string]string, len(prompts))
	var errs []error
	for result := range merged {
		if result.err != nil {
			errs = append(errs, result.err)
			continue
		}
		urls[result.name] = result.url
	}
	if len(urls)+len(errs) < len(prompts) {
		errs = append(errs, fmt.Errorf("prewarm interrupted: %w", ctx.Err()))
	}
	return urls, errors.Join(errs...)
}
