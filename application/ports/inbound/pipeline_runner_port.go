package inbound

import "context"

type DispatchParams struct {
	CallID       string
	RecordingURL string
}

// PipelineRunnerPort schedules the background pipeline for a call. Dispatch
// returns as soon as the run is scheduled; the outcome lands in the result store.
type PipelineRunnerPort interface {
	Dispatch(ctx context.Context, params DispatchParams) error
	Cancel(callID string) bool
	InFlight(callID string) bool
}
