package sessions

import "github.com/riyadominic123/ai-call/application/ports/outbound"

type replyLedger struct {
	replied *shardedMap[struct{}]
}

func NewReplyLedger(shardCount int) outbound.ReplyLedgerPort {
	return &replyLedger{replied: newShardedMap[struct{}](shardCount)}
}

func (l *replyLedger) MarkReplied(callID string) bool {
	first := false
	l.replied.update(callID, func(items map[string]struct{}) {
		if _, ok := items[callID]; !ok {
			items[callID] = struct{}{}
			first = true
		}
	})
	return first
}

func (l *replyLedger) Forget(callID string) {
	l.replied.delete(callID)
}
