package channel_utils

import (
	"context"
	"sync"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
)

// MergeChannels fans every channel into one, forwarding on the worker pool.
// The merged channel closes once all inputs are drained or ctx is done, so a
// caller that stops reading early does not strand the forwarders.
func MergeChannels[T any](ctx context.Context, workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	var wg sync.WaitGroup
	merged := make(chan T, len(channels))

	forward := func(in <-chan T) {
		defer wg.Done()
		for {
			select {
			case val, ok := <-in:
				if !ok {
					return
				}
				select {
				case merged <- val:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}

	wg.Add(len(channels))
	for i, in := range channels {
		in := in
		if err := workerPool.Submit(func() { forward(in) }); err != nil {
			// Inputs that were never scheduled will not call Done.
			wg.Add(-(len(channels) - i))
			return nil, err
		}
	}

	if err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	}); err != nil {
		return nil, err
	}

	return merged, nil
}
