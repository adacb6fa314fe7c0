package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/adapters/push"
	"github.com/collabzy/collabzy-go/internal/config"
	"github.com/collabzy/collabzy-go/internal/core"
	"github.com/collabzy/collabzy-go/internal/ports"
)

// ListenerFactory creates push listeners based on configuration
type ListenerFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewListenerFactory creates a new listener factory
func NewListenerFactory(cfg *config.Config, logger *zap.Logger) *ListenerFactory {
	return &ListenerFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateListener creates a push listener wired to the given invalidator
func (f *ListenerFactory) CreateListener(invalidator core.Invalidator) (ports.PushListener, error) {
	provider := f.cfg.GetString("push.provider")

	switch provider {
	case "redis":
		return push.NewRedisListener(
			f.cfg.GetString("push.redis.addr"),
			f.cfg.GetString("push.redis.password"),
			f.cfg.GetInt("push.redis.db"),
			f.cfg.GetString("push.channel"),
			invalidator,
			f.logger,
		), nil
	case "none", "":
		return push.NewNopListener(f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported push provider: %s", provider)
	}
}
