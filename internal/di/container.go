package di

import (
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/config"
	"github.com/collabzy/collabzy-go/internal/core"
	"github.com/collabzy/collabzy-go/internal/factory"
	"github.com/collabzy/collabzy-go/internal/logging"
	"github.com/collabzy/collabzy-go/internal/metrics"
	"github.com/collabzy/collabzy-go/internal/ports"
)

// BuildContainer creates and configures a dependency injection container
// for the long-running agent.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewStoreFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewGatewayFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewListenerFactory); err != nil {
		return nil, err
	}

	// Register session from the configured token
	if err := container.Provide(func(cfg *config.Config) core.Session {
		return core.NewStaticSession(cfg.GetString("api.token"))
	}); err != nil {
		return nil, err
	}

	// Register gateway
	if err := container.Provide(func(f *factory.GatewayFactory, session core.Session) (core.Gateway, error) {
		return f.CreateGateway(session)
	}); err != nil {
		return nil, err
	}

	// Register cache store and TTL
	if err := container.Provide(func(f *factory.StoreFactory) core.CacheStore {
		return f.CreateStore()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.StoreFactory) (time.Duration, error) {
		return f.GetCacheTTL()
	}); err != nil {
		return nil, err
	}

	// Register metrics recorder and clock
	if err := container.Provide(func() core.MetricsRecorder {
		return metrics.NewRecorder()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewClock); err != nil {
		return nil, err
	}

	// Register coordinator and mutation facade
	if err := container.Provide(core.NewCoordinator); err != nil {
		return nil, err
	}
	if err := container.Provide(func(gateway core.Gateway, coordinator *core.Coordinator, logger *zap.Logger) *core.Mutator {
		return core.NewMutator(gateway, coordinator, logger)
	}); err != nil {
		return nil, err
	}

	// Register push listener
	if err := container.Provide(func(f *factory.ListenerFactory, coordinator *core.Coordinator) (ports.PushListener, error) {
		return f.CreateListener(coordinator)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
