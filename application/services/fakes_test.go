package services

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/domain"
	"github.com/riyadominic123/ai-call/infrastructure/adapters"
	"github.com/riyadominic123/ai-call/infrastructure/sessions"
)

type fakeRecordingFetcher struct {
	content []byte
	err     error
}

func (f *fakeRecordingFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	return f.content, f.err
}

type fakeTranscriber struct {
	mu         sync.Mutex
	calls      int
	transcript string
	err        error
	sawFile    bool
}

func (f *fakeTranscriber) Transcribe(_ context.Context, audioPath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if _, err := os.Stat(audioPath); err == nil {
		f.sawFile = true
	}
	return f.transcript, f.err
}

func (f *fakeTranscriber) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeAnswerGenerator struct {
	reply   string
	err     error
	block   chan struct{}
	panics  bool
	queries []string
}

func (f *fakeAnswerGenerator) Answer(ctx context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	if f.panics {
		panic("generator exploded")
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

type fakeAudioGenerator struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (f *fakeAudioGenerator) Generate(_ context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, req.Text)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("mp3:" + req.Text), nil
}

func (f *fakeAudioGenerator) lastText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

type fakeFeedbackRecorder struct {
	mu      sync.Mutex
	entries []domain.FeedbackEntry
}

func (f *fakeFeedbackRecorder) Record(_ context.Context, entry domain.FeedbackEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

var errUpstream = errors.New("upstream unavailable")

type runnerFixture struct {
	uploadDir   string
	outputDir   string
	fetcher     *fakeRecordingFetcher
	transcriber *fakeTranscriber
	generator   *fakeAnswerGenerator
	tts         *fakeAudioGenerator
	feedback    *fakeFeedbackRecorder
	store       outbound.ArtifactStorePort
	stages      *PipelineStages
	results     outbound.ResultStorePort
	ledger      outbound.ReplyLedgerPort
	pool        *ants.Pool
}

func newRunnerFixture(t *testing.T) *runnerFixture {
	t.Helper()
	logger := adapters.NewZerologWrapper()
	pool, err := ants.NewPool(10)
	if err != nil {
		t.Fatal("Failed to create worker pool:", err)
	}
	t.Cleanup(pool.Release)

	f := &runnerFixture{
		uploadDir:   t.TempDir(),
		outputDir:   t.TempDir(),
		fetcher:     &fakeRecordingFetcher{content: []byte("RIFF")},
		transcriber: &fakeTranscriber{transcript: "The hotel was lovely"},
		generator:   &fakeAnswerGenerator{reply: "Glad you enjoyed it."},
		tts:         &fakeAudioGenerator{},
		feedback:    &fakeFeedbackRecorder{},
		results:     sessions.NewResultStore(logger, 4),
		ledger:      sessions.NewReplyLedger(4),
		pool:        pool,
	}
	f.store = adapters.NewLocalArtifactStore(f.outputDir, logger)
	f.stages = NewPipelineStages(logger, f.transcriber, f.generator, f.tts, f.store, "https://example.ngrok.app/")
	return f
}

func (f *runnerFixture) runner(timeout time.Duration) *pipelineRunner {
	logger := adapters.NewZerologWrapper()
	fetcher := NewAudioFetcher(logger, f.fetcher, f.uploadDir)
	return NewPipelineRunner(logger, f.pool, fetcher, f.stages, f.results, f.ledger, f.feedback, PipelineRunnerOptions{
		Timeout:            timeout,
		FirstReplyLimit:    200,
		FollowUpReplyLimit: 100,
	}).(*pipelineRunner)
}

// awaitOutcome polls the result store the way the webhook loop does.
func awaitOutcome(t *testing.T, results outbound.ResultStorePort, callID string) domain.Outcome {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if outcome, ok := results.Take(callID); ok {
			return outcome
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no outcome stored for %s", callID)
	return domain.Outcome{}
}

func awaitIdle(t *testing.T, runner *pipelineRunner, callID string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if !runner.InFlight(callID) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("runner for %s never finished", callID)
}
