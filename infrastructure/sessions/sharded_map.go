package sessions

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const DefaultShardCount = 32

type shard[V any] struct {
	mu    sync.Mutex
	items map[string]V
}

// shardedMap spreads call ids over independently locked shards so that
// different calls never wait on each other.
type shardedMap[V any] struct {
	shards []*shard[V]
}

func newShardedMap[V any](shardCount int) *shardedMap[V] {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	m := &shardedMap[V]{shards: make([]*shard[V], shardCount)}
	for i := range m.shards {
		m.shards[i] = &shard[V]{items: make(map[string]V)}
	}
	return m
}

func (m *shardedMap[V]) shardFor(key string) *shard[V] {
	return m.shards[xxhash.Sum64String(key)%uint64(len(m.shards))]
}

// update runs fn with the shard lock held.
func (m *shardedMap[V]) update(key string, fn func(items map[string]V)) {
	s := m.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.items)
}

func (m *shardedMap[V]) delete(key string) {
	m.update(key, func(items map[string]V) {
		delete(items, key)
	})
}

func (m *shardedMap[V]) len() int {
	total := 0
	for _, s := range m.shards {
		s.mu.Lock()
		total += len(s.items)
		s.mu.Unlock()
	}
	return total
}
