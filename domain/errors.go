package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	FetchFailed         ErrorKind = "fetch_failed"
	TranscriptionFailed ErrorKind = "transcription_failed"
	GenerationFailed    ErrorKind = "generation_failed"
	SynthesisFailed     ErrorKind = "synthesis_failed"
	RunnerTimeout       ErrorKind = "runner_timeout"
	InternalError       ErrorKind = "internal_error"
)

var (
	ErrOutcomeExists          = errors.New("outcome already stored for call")
	ErrRunnerInFlight         = errors.New("pipeline already running for call")
	ErrUnsupportedAudioFormat = errors.New("unsupported audio format")
	ErrArtifactNotFound       = errors.New("artifact not found")
	ErrEmptyTranscript        = errors.New("transcript is empty")
)

// StageError tags a failure with the pipeline stage that produced it.
type StageError struct {
	Kind ErrorKind
	Err  error
}

func NewStageError(kind ErrorKind, err error) *StageError {
	return &StageError{Kind: kind, Err: err}
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// KindOf reports the stage kind carried by err, or InternalError when err was
// not produced by a pipeline stage.
func KindOf(err error) ErrorKind {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Kind
	}
	return InternalError
}
