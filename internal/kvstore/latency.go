package kvstore

import (
	"context"
	"time"
)

// latencyStore wraps another store and sleeps before every operation,
// emulating a remote API over what is really a synchronous local store.
// The sleep happens before the delegate runs, so an abandoned caller
// still sees the operation's side effects eventually.
type latencyStore struct {
	next  Store
	delay time.Duration
}

// WithLatency decorates a store with a fixed simulated delay per
// operation. A zero or negative delay returns the store unchanged, so
// tests pay nothing for the hook.
func WithLatency(next Store, delay time.Duration) Store {
	if delay <= 0 {
		return next
	}
	return &latencyStore{next: next, delay: delay}
}

func (s *latencyStore) Get(ctx context.Context, collection string) ([]byte, error) {
	time.Sleep(s.delay)
	return s.next.Get(ctx, collection)
}

func (s *latencyStore) Put(ctx context.Context, collection string, payload []byte) error {
	time.Sleep(s.delay)
	return s.next.Put(ctx, collection, payload)
}
