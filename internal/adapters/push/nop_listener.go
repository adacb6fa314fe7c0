package push

import (
	"go.uber.org/zap"
)

// NopListener is a PushListener that consumes nothing. Used when no push
// provider is configured; the cache then converges through TTL expiry alone.
type NopListener struct {
	logger *zap.Logger
}

// NewNopListener creates a listener that does nothing.
func NewNopListener(logger *zap.Logger) *NopListener {
	return &NopListener{logger: logger}
}

func (l *NopListener) Start() error {
	l.logger.Info("Push listening disabled")
	return nil
}

func (l *NopListener) Stop() error {
	return nil
}
