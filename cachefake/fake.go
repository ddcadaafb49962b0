package cachefake

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cachekit/cache"
)

// Notifier records failure events for assertions in consumer tests.
type Notifier struct {
	mu     sync.Mutex
	events []cache.FailureEvent
}

// NewNotifier creates an empty recording notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Notify implements cache.FailureNotifier.
func (n *Notifier) Notify(_ context.Context, event cache.FailureEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

// Events returns a copy of everything recorded so far.
func (n *Notifier) Events() []cache.FailureEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]cache.FailureEvent, len(n.events))
	copy(out, n.events)
	return out
}

// Count returns recorded events matching action and key.
func (n *Notifier) Count(action cache.FailureAction, key string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	var total int
	for _, event := range n.events {
		if event.Action == action && event.Key == key {
			total++
		}
	}
	return total
}

// Reset clears recorded events.
func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}

// AssertNotified verifies action+key was reported the expected number of times.
func (n *Notifier) AssertNotified(t *testing.T, action cache.FailureAction, key string, times int) {
	t.Helper()
	if got := n.Count(action, key); got != times {
		t.Fatalf("expected %s %q notified %d times, got %d", action, key, times, got)
	}
}

// AssertSilent ensures no failure was reported at all.
func (n *Notifier) AssertSilent(t *testing.T) {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.events) != 0 {
		t.Fatalf("expected no failure events, got %d: %+v", len(n.events), n.events)
	}
}

// FaultyStore wraps a working in-memory store and fails selected operations
// on demand, for exercising failure containment in consumer tests.
type FaultyStore struct {
	inner cache.Store

	mu        sync.Mutex
	getErr    error
	setErr    error
	deleteErr error
	flushErr  error
}

// NewFaultyStore creates a FaultyStore over a fresh memory store.
func NewFaultyStore() *FaultyStore {
	return &FaultyStore{inner: cache.NewMemoryStore(context.Background())}
}

// FailReads makes every Get return err until cleared with nil.
func (s *FaultyStore) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

// FailWrites makes every Set return err until cleared with nil.
func (s *FaultyStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setErr = err
}

// FailDeletes makes Delete and DeleteMany return err until cleared with nil.
func (s *FaultyStore) FailDeletes(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteErr = err
}

// FailFlush makes Flush return err until cleared with nil.
func (s *FaultyStore) FailFlush(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushErr = err
}

func (s *FaultyStore) Driver() cache.Driver { return s.inner.Driver() }

func (s *FaultyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := s.fault(&s.getErr); err != nil {
		return nil, false, err
	}
	return s.inner.Get(ctx, key)
}

func (s *FaultyStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.fault(&s.setErr); err != nil {
		return err
	}
	return s.inner.Set(ctx, key, value, ttl)
}

func (s *FaultyStore) Delete(ctx context.Context, key string) error {
	if err := s.fault(&s.deleteErr); err != nil {
		return err
	}
	return s.inner.Delete(ctx, key)
}

func (s *FaultyStore) DeleteMany(ctx context.Context, keys ...string) error {
	if err := s.fault(&s.deleteErr); err != nil {
		return err
	}
	return s.inner.DeleteMany(ctx, keys...)
}

func (s *FaultyStore) Flush(ctx context.Context) error {
	if err := s.fault(&s.flushErr); err != nil {
		return err
	}
	return s.inner.Flush(ctx)
}

func (s *FaultyStore) fault(slot *error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *slot
}
