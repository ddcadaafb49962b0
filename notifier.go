package cache

import "context"

// EventKindCacheFailure tags every event emitted by the failsafe store.
const EventKindCacheFailure = "cache_failure"

// FailureAction names the operation that failed.
type FailureAction string

const (
	FailureRead   FailureAction = "read"
	FailureWrite  FailureAction = "write"
	FailureDelete FailureAction = "delete"
	FailureFlush  FailureAction = "flush"
)

// FailureEvent describes one contained backend failure. It is built at the
// moment a backend call fails and handed to the notifier; the failsafe store
// keeps no copy.
type FailureEvent struct {
	Kind   string
	Action FailureAction
	Key    string
	Err    error
	Driver Driver
}

// FailureNotifier receives one event per contained backend failure, before
// the failing call returns to the caller. Implementations are expected not
// to block or fail; the failsafe store does not guard against either.
type FailureNotifier interface {
	Notify(ctx context.Context, event FailureEvent)
}

// NotifierFunc adapts a function to the FailureNotifier interface.
type NotifierFunc func(ctx context.Context, event FailureEvent)

// Notify implements FailureNotifier.
func (f NotifierFunc) Notify(ctx context.Context, event FailureEvent) {
	if f == nil {
		return
	}
	f(ctx, event)
}

// MultiNotifier fans an event out to every sink in order.
func MultiNotifier(sinks ...FailureNotifier) FailureNotifier {
	return NotifierFunc(func(ctx context.Context, event FailureEvent) {
		for _, sink := range sinks {
			if sink != nil {
				sink.Notify(ctx, event)
			}
		}
	})
}
