package outbound

import "github.com/riyadominic123/ai-call/domain"

// ResultStorePort holds at most one terminal outcome per call. Take removes the
// entry it returns; a missing entry means the run is still pending.
type ResultStorePort interface {
	Put(callID string, outcome domain.Outcome) error
	Take(callID string) (domain.Outcome, bool)
	Forget(callID string)
}

type ReplyLedgerPort interface {
	// MarkReplied records that the call produced a reply and reports whether it
	// was the first one.
	MarkReplied(callID string) bool
	Forget(callID string)
}

type PollCounterPort interface {
	Increment(callID string) int
	Reset(callID string)
}
