package factory

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/adapters/cache"
	"github.com/collabzy/collabzy-go/internal/config"
	"github.com/collabzy/collabzy-go/internal/core"
)

// StoreFactory creates cache stores based on configuration
type StoreFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStoreFactory creates a new store factory
func NewStoreFactory(cfg *config.Config, logger *zap.Logger) *StoreFactory {
	return &StoreFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateStore creates the snapshot store. When caching is disabled every
// fetch goes straight to the gateway.
func (f *StoreFactory) CreateStore() core.CacheStore {
	if !f.cfg.GetBool("cache.enabled") {
		f.logger.Info("Caching disabled, all fetches will hit the gateway")
		return cache.NewNopStore()
	}
	return cache.NewMemoryStore(f.logger)
}

// GetCacheTTL returns the configured snapshot TTL
func (f *StoreFactory) GetCacheTTL() (time.Duration, error) {
	ttl, err := f.cfg.GetDuration("cache.ttl")
	if err != nil {
		return 0, fmt.Errorf("invalid cache ttl: %w", err)
	}
	return ttl, nil
}
