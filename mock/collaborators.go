package mock_generator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
)

var errNoTurns = errors.New("mock script has no turns")

type scriptedTranscriber struct {
	logger outbound.LoggerPort
	turns  []MockTurn
	mu     sync.Mutex
	next   int
}

// NewScriptedTranscriber answers every transcription with the next scripted
// turn, wrapping around at the end.
func NewScriptedTranscriber(turns []MockTurn, logger outbound.LoggerPort) outbound.TranscriberPort {
	return &scriptedTranscriber{
		logger: logger,
		turns:  turns,
	}
}

func (s *scriptedTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if len(s.turns) == 0 {
		return "", errNoTurns
	}
	s.mu.Lock()
	turn := s.turns[s.next%len(s.turns)]
	s.next++
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(time.Duration(turn.DelayMs) * time.Millisecond):
	}

	s.logger.DebugWithFields("mock transcription", map[string]interface{}{
		"path":       audioPath,
		"transcript": turn.Transcript,
	})
	return turn.Transcript, nil
}

type echoReplyGenerator struct{}

// NewEchoReplyGenerator thanks the caller for whatever question it is asked.
func NewEchoReplyGenerator() outbound.ReplyGeneratorPort {
	return &echoReplyGenerator{}
}

func (e *echoReplyGenerator) Complete(ctx context.Context, completion outbound.CompletionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	question := strings.TrimPrefix(completion.Query, "Question: ")
	question = strings.TrimSpace(strings.TrimSuffix(question, "Answer:"))
	return "Thanks for your feedback. You said: " + question, nil
}

type fakeAudioGenerator struct{}

// NewFakeAudioGenerator returns an ID3-tagged payload carrying the text, which
// is enough for players that only sniff the header.
func NewFakeAudioGenerator() outbound.AudioGeneratorPort {
	return &fakeAudioGenerator{}
}

func (f *fakeAudioGenerator) Generate(ctx context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]byte("ID3"), []byte(req.Text)...), nil
}
