package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/riyadominic123/ai-call/application/ports/inbound"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/domain"
)

type PipelineRunnerOptions struct {
	Timeout            time.Duration
	FirstReplyLimit    int
	FollowUpReplyLimit int
}

// runHandle tracks one runner invocation. The outcome is written at most once,
// either by the run itself, the watchdog or panic recovery.
type runHandle struct {
	cancel    context.CancelFunc
	once      sync.Once
	mu        sync.Mutex
	abandoned bool
}

type pipelineRunner struct {
	logger       outbound.LoggerPort
	workerPool   outbound.TaskDispatcher
	audioFetcher inbound.AudioFetcherPort
	stages       *PipelineStages
	results      outbound.ResultStorePort
	replyLedger  outbound.ReplyLedgerPort
	feedback     outbound.FeedbackRecorderPort
	options      PipelineRunnerOptions

	mu       sync.Mutex
	inFlight map[string]*runHandle
}

func NewPipelineRunner(logger outbound.LoggerPort, workerPool outbound.TaskDispatcher, audioFetcher inbound.AudioFetcherPort,
	stages *PipelineStages, results outbound.ResultStorePort, replyLedger outbound.ReplyLedgerPort,
	feedback outbound.FeedbackRecorderPort, options PipelineRunnerOptions) inbound.PipelineRunnerPort {
	return &pipelineRunner{
		logger:       logger,
		workerPool:   workerPool,
		audioFetcher: audioFetcher,
		stages:       stages,
		results:      results,
		replyLedger:  replyLedger,
		feedback:     feedback,
		options:      options,
		inFlight:     make(map[string]*runHandle),
	}
}

// Dispatch schedules a run on the worker pool and returns immediately. The run
// is detached from ctx so it outlives the webhook request. The pool must not
// block on Submit: a saturated pool is reported as an error.
func (r *pipelineRunner) Dispatch(_ context.Context, params inbound.DispatchParams) error {
	r.mu.Lock()
	if _, ok := r.inFlight[params.CallID]; ok {
		r.mu.Unlock()
		return domain.ErrRunnerInFlight
	}
	runCtx, cancel := context.WithCancel(context.Background())
	handle := &runHandle{cancel: cancel}
	r.inFlight[params.CallID] = handle
	r.mu.Unlock()

	logger := r.logger.With(map[string]interface{}{"call_sid": params.CallID})

	err := r.workerPool.Submit(func() {
		defer r.release(params.CallID, handle)

		// The deadline counts from the moment a worker picks the run up.
		ctx, stop := context.WithTimeout(runCtx, r.options.Timeout)
		defer stop()
		watchdog := time.AfterFunc(r.options.Timeout, func() {
			logger.Warn("Pipeline runner exceeded its deadline")
			r.resolve(logger, params.CallID, handle, domain.NewErrorOutcome(domain.RunnerTimeout))
			r.release(params.CallID, handle)
		})
		defer watchdog.Stop()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorWithFields(fmt.Errorf("%v", rec), "Pipeline runner panicked", nil)
				r.resolve(logger, params.CallID, handle, domain.NewErrorOutcome(domain.InternalError))
			}
		}()

		outcome := r.run(ctx, logger, params)
		if !outcome.IsDone() && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			outcome = domain.NewErrorOutcome(domain.RunnerTimeout)
		}
		r.resolve(logger, params.CallID, handle, outcome)
	})
	if err != nil {
		r.release(params.CallID, handle)
		logger.Error(err, "Failed to schedule pipeline runner")
		return fmt.Errorf("failed to schedule pipeline runner: %w", err)
	}

	logger.Debug("Pipeline runner dispatched")
	return nil
}

// Cancel abandons the in-flight run for callID. Its outcome is never stored.
func (r *pipelineRunner) Cancel(callID string) bool {
	r.mu.Lock()
	handle, ok := r.inFlight[callID]
	delete(r.inFlight, callID)
	r.mu.Unlock()
	if !ok {
		return false
	}

	handle.mu.Lock()
	handle.abandoned = true
	handle.mu.Unlock()
	handle.cancel()
	return true
}

func (r *pipelineRunner) InFlight(callID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.inFlight[callID]
	return ok
}

func (r *pipelineRunner) run(ctx context.Context, logger outbound.LoggerPort, params inbound.DispatchParams) domain.Outcome {
	audioPath, err := r.audioFetcher.Fetch(ctx, params.CallID, params.RecordingURL)
	if err != nil {
		logger.Error(err, "Failed to fetch recording")
		return domain.NewErrorOutcome(domain.KindOf(err))
	}

	transcript, err := r.stages.Transcribe(ctx, audioPath)
	if removeErr := os.Remove(audioPath); removeErr != nil && !os.IsNotExist(removeErr) {
		logger.ErrorWithFields(removeErr, "Failed to remove recording", map[string]interface{}{
			"path": audioPath,
		})
	}
	if err != nil {
		return domain.NewErrorOutcome(domain.KindOf(err))
	}
	logger.InfoWithFields("Caller transcribed", map[string]interface{}{
		"transcript": transcript,
	})

	reply, err := r.stages.Generate(ctx, transcript)
	if err != nil {
		return domain.NewErrorOutcome(domain.KindOf(err))
	}

	firstReply := r.replyLedger.MarkReplied(params.CallID)
	spoken := domain.TruncateReply(reply, domain.ReplyLimit(firstReply, r.options.FirstReplyLimit, r.options.FollowUpReplyLimit))

	audioName := "reply_" + params.CallID + ".mp3"
	audioURL, err := r.stages.Synthesize(ctx, spoken, audioName)
	if err != nil {
		return domain.NewErrorOutcome(domain.KindOf(err))
	}

	err = r.feedback.Record(ctx, domain.FeedbackEntry{
		ID:         uuid.NewString(),
		CallID:     params.CallID,
		Transcript: transcript,
		Reply:      reply,
		AudioName:  audioName,
		FirstReply: firstReply,
		RecordedAt: time.Now(),
	})
	if err != nil {
		logger.Error(err, "Failed to record feedback turn")
	}

	return domain.NewDoneOutcome(audioURL, reply, transcript)
}

func (r *pipelineRunner) resolve(logger outbound.LoggerPort, callID string, handle *runHandle, outcome domain.Outcome) {
	handle.once.Do(func() {
		handle.mu.Lock()
		defer handle.mu.Unlock()
		if handle.abandoned {
			logger.Debug("Dropping outcome of abandoned run")
			return
		}
		if err := r.results.Put(callID, outcome); err != nil {
			logger.Error(err, "Failed to store pipeline outcome")
			return
		}
		logger.InfoWithFields("Pipeline outcome stored", map[string]interface{}{
			"status":     outcome.Status,
			"error_kind": outcome.ErrorKind,
		})
	})
}

// release frees the call id for new dispatches unless a newer run already owns it.
func (r *pipelineRunner) release(callID string, handle *runHandle) {
	r.mu.Lock()
	if r.inFlight[callID] == handle {
		delete(r.inFlight, callID)
	}
	r.mu.Unlock()
	handle.cancel()
}
