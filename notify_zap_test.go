package cache

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapNotifierLogsFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	notifier := NewZapNotifier(zap.New(core))

	notifier.Notify(context.Background(), FailureEvent{
		Kind:   EventKindCacheFailure,
		Action: FailureWrite,
		Key:    "k",
		Err:    errors.New("timeout"),
		Driver: DriverRedis,
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["kind"] != EventKindCacheFailure || fields["action"] != "write" || fields["key"] != "k" {
		t.Fatalf("unexpected log fields: %+v", fields)
	}
	if fields["driver"] != "redis" {
		t.Fatalf("expected driver field, got %+v", fields)
	}
}

func TestZapNotifierNilLoggerIsSafe(t *testing.T) {
	notifier := NewZapNotifier(nil)
	notifier.Notify(context.Background(), FailureEvent{Kind: EventKindCacheFailure})
}
