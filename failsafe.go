package cache

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotifierRequired is returned when a failsafe store is constructed
// without a notifier.
var ErrNotifierRequired = errors.New("failsafe store requires a notifier")

// FailsafeConfig carries the single required failsafe dependency.
type FailsafeConfig struct {
	Notifier FailureNotifier
}

// failsafeStore contains backend failures: errors returned by the inner
// store never reach the caller. Each one is reported to the notifier exactly
// once, then replaced with the operation's benign outcome (miss for reads,
// no-op for writes). Panics are not recovered; they propagate unmodified.
type failsafeStore struct {
	inner    Store
	notifier FailureNotifier
}

// NewFailsafeStore wraps inner so backend failures degrade to cache misses
// and dropped writes instead of surfacing. The notifier is mandatory: it is
// the only place a contained failure remains observable.
func NewFailsafeStore(inner Store, cfg FailsafeConfig) (Store, error) {
	if cfg.Notifier == nil {
		return nil, ErrNotifierRequired
	}
	return &failsafeStore{inner: inner, notifier: cfg.Notifier}, nil
}

func (s *failsafeStore) Driver() Driver { return s.inner.Driver() }

func (s *failsafeStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, ok, err := s.inner.Get(ctx, key)
	if err != nil {
		s.notify(ctx, FailureRead, key, err)
		return nil, false, nil
	}
	return body, ok, nil
}

func (s *failsafeStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.inner.Set(ctx, key, value, ttl); err != nil {
		s.notify(ctx, FailureWrite, key, err)
	}
	return nil
}

func (s *failsafeStore) Delete(ctx context.Context, key string) error {
	if err := s.inner.Delete(ctx, key); err != nil {
		s.notify(ctx, FailureDelete, key, err)
	}
	return nil
}

func (s *failsafeStore) DeleteMany(ctx context.Context, keys ...string) error {
	if err := s.inner.DeleteMany(ctx, keys...); err != nil {
		s.notify(ctx, FailureDelete, strings.Join(keys, ","), err)
	}
	return nil
}

func (s *failsafeStore) Flush(ctx context.Context) error {
	if err := s.inner.Flush(ctx); err != nil {
		s.notify(ctx, FailureFlush, "", err)
	}
	return nil
}

func (s *failsafeStore) notify(ctx context.Context, action FailureAction, key string, err error) {
	s.notifier.Notify(ctx, FailureEvent{
		Kind:   EventKindCacheFailure,
		Action: action,
		Key:    key,
		Err:    err,
		Driver: s.inner.Driver(),
	})
}
