package cache

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsNotifier counts contained cache failures per action and driver.
type MetricsNotifier struct {
	failures *prometheus.CounterVec
}

// NewMetricsNotifier registers a cache_failures_total counter with reg and
// returns a notifier feeding it.
func NewMetricsNotifier(reg prometheus.Registerer) (*MetricsNotifier, error) {
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_failures_total",
		Help: "Backend cache failures contained by the failsafe store.",
	}, []string{"action", "driver"})
	if reg != nil {
		if err := reg.Register(failures); err != nil {
			return nil, err
		}
	}
	return &MetricsNotifier{failures: failures}, nil
}

// Notify implements FailureNotifier.
func (n *MetricsNotifier) Notify(_ context.Context, event FailureEvent) {
	n.failures.WithLabelValues(string(event.Action), string(event.Driver)).Inc()
}
