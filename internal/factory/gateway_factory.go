package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/adapters/rest"
	"github.com/collabzy/collabzy-go/internal/config"
	"github.com/collabzy/collabzy-go/internal/core"
)

// GatewayFactory creates the remote data gateway based on configuration
type GatewayFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewGatewayFactory creates a new gateway factory
func NewGatewayFactory(cfg *config.Config, logger *zap.Logger) *GatewayFactory {
	return &GatewayFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateGateway creates the REST gateway for the configured API
func (f *GatewayFactory) CreateGateway(session core.Session) (core.Gateway, error) {
	baseURL := f.cfg.GetString("api.base_url")
	if baseURL == "" {
		return nil, fmt.Errorf("api.base_url must be set")
	}

	timeout, err := f.cfg.GetDuration("api.timeout")
	if err != nil {
		return nil, fmt.Errorf("invalid api timeout: %w", err)
	}

	return rest.NewGateway(baseURL, timeout, session, f.logger), nil
}
