package di

import (
	"flag"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/adapters/cache"
	"github.com/collabzy/collabzy-go/internal/config"
	"github.com/collabzy/collabzy-go/internal/core"
	"github.com/collabzy/collabzy-go/internal/factory"
	"github.com/collabzy/collabzy-go/internal/logging"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// API flags
	BaseURL string
	Token   string
	Timeout string

	// Cache flags
	CacheTTL string
	NoCache  bool

	// Operation flags
	Resource string
	Filters  string
	Force    bool

	// Logging flags
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// API flags
	flag.StringVar(&flags.BaseURL, "base-url", "http://localhost:5000/api", "Collabzy API base URL")
	flag.StringVar(&flags.Token, "token", "", "Bearer token for authenticated resources")
	flag.StringVar(&flags.Timeout, "timeout", "15s", "HTTP timeout for gateway calls")

	// Cache flags
	flag.StringVar(&flags.CacheTTL, "cache-ttl", "5m", "Snapshot TTL")
	flag.BoolVar(&flags.NoCache, "no-cache", false, "Disable the snapshot cache")

	// Operation flags
	flag.StringVar(&flags.Resource, "resource", "campaigns", "Resource to fetch (influencers, campaigns, applications, deals, collaborations)")
	flag.StringVar(&flags.Filters, "filters", "", "Comma-separated key=value query filters")
	flag.BoolVar(&flags.Force, "force", false, "Bypass the cache and re-fetch")

	// Logging flags
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container
// for the CLI application.
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register session
	if err := container.Provide(func(cfg *config.Config) core.Session {
		return core.NewStaticSession(cfg.GetString("api.token"))
	}); err != nil {
		return nil, err
	}

	// Register gateway
	if err := container.Provide(factory.NewGatewayFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.GatewayFactory, session core.Session) (core.Gateway, error) {
		return f.CreateGateway(session)
	}); err != nil {
		return nil, err
	}

	// Register coordinator. The CLI is a one-shot process: when caching is
	// disabled it runs on the nop store, no metrics recorder either way.
	if err := container.Provide(func(
		gateway core.Gateway,
		session core.Session,
		cfg *config.Config,
		logger *zap.Logger,
	) (*core.Coordinator, error) {
		var store core.CacheStore
		if cfg.GetBool("cache.enabled") {
			store = cache.NewMemoryStore(logger)
		} else {
			store = cache.NewNopStore()
		}
		ttl, err := cfg.GetDuration("cache.ttl")
		if err != nil {
			ttl = time.Duration(0)
		}
		return core.NewCoordinator(gateway, store, session, logger, nil, core.NewClock(), ttl), nil
	}); err != nil {
		return nil, err
	}

	// Register mutation facade
	if err := container.Provide(func(gateway core.Gateway, coordinator *core.Coordinator, logger *zap.Logger) *core.Mutator {
		return core.NewMutator(gateway, coordinator, logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	v.Set("api.base_url", flags.BaseURL)
	v.Set("api.token", flags.Token)
	v.Set("api.timeout", flags.Timeout)

	v.Set("cache.enabled", !flags.NoCache)
	v.Set("cache.ttl", flags.CacheTTL)

	return config.NewFromViper(v)
}
