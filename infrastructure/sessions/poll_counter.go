package sessions

import "github.com/riyadominic123/ai-call/application/ports/outbound"

type pollCounter struct {
	polls *shardedMap[int]
}

func NewPollCounter(shardCount int) outbound.PollCounterPort {
	return &pollCounter{polls: newShardedMap[int](shardCount)}
}

func (p *pollCounter) Increment(callID string) int {
	var count int
	p.polls.update(callID, func(items map[string]int) {
		items[callID]++
		count = items[callID]
	})
	return count
}

func (p *pollCounter) Reset(callID string) {
	p.polls.delete(callID)
}
