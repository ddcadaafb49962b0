package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsNotifierCountsFailures(t *testing.T) {
	reg := prometheus.NewRegistry()
	notifier, err := NewMetricsNotifier(reg)
	if err != nil {
		t.Fatalf("metrics notifier create failed: %v", err)
	}

	event := FailureEvent{
		Kind:   EventKindCacheFailure,
		Action: FailureRead,
		Key:    "k",
		Err:    errors.New("down"),
		Driver: DriverMemory,
	}
	notifier.Notify(context.Background(), event)
	notifier.Notify(context.Background(), event)

	got := testutil.ToFloat64(notifier.failures.WithLabelValues("read", "memory"))
	if got != 2 {
		t.Fatalf("expected counter at 2, got %v", got)
	}
}

func TestMetricsNotifierDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewMetricsNotifier(reg); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := NewMetricsNotifier(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}
