package sessions

import (
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/domain"
)

type resultStore struct {
	logger  outbound.LoggerPort
	entries *shardedMap[domain.Outcome]
}

func NewResultStore(logger outbound.LoggerPort, shardCount int) outbound.ResultStorePort {
	return &resultStore{
		logger:  logger,
		entries: newShardedMap[domain.Outcome](shardCount),
	}
}

func (r *resultStore) Put(callID string, outcome domain.Outcome) error {
	var err error
	r.entries.update(callID, func(items map[string]domain.Outcome) {
		if _, exists := items[callID]; exists {
			err = domain.ErrOutcomeExists
			return
		}
		items[callID] = outcome
	})
	if err != nil {
		r.logger.ErrorWithFields(err, "Refusing to overwrite a stored outcome", map[string]interface{}{
			"call_sid": callID,
			"status":   outcome.Status,
		})
	}
	return err
}

func (r *resultStore) Take(callID string) (domain.Outcome, bool) {
	var (
		outcome domain.Outcome
		found   bool
	)
	r.entries.update(callID, func(items map[string]domain.Outcome) {
		outcome, found = items[callID]
		if found {
			delete(items, callID)
		}
	})
	return outcome, found
}

func (r *resultStore) Forget(callID string) {
	r.entries.delete(callID)
}
