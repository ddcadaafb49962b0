package cache

import (
	"context"

	"go.uber.org/zap"
)

// ZapNotifier logs contained cache failures through a zap logger.
type ZapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier builds a notifier over logger. A nil logger falls back to
// zap.NewNop so the sink stays safe to call.
func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapNotifier{logger: logger}
}

// Notify implements FailureNotifier.
func (n *ZapNotifier) Notify(_ context.Context, event FailureEvent) {
	n.logger.Warn("cache backend failure",
		zap.String("kind", event.Kind),
		zap.String("action", string(event.Action)),
		zap.String("key", event.Key),
		zap.String("driver", string(event.Driver)),
		zap.Error(event.Err),
	)
}
