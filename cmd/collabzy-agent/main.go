package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/config"
	"github.com/collabzy/collabzy-go/internal/di"
	"github.com/collabzy/collabzy-go/internal/metrics"
	"github.com/collabzy/collabzy-go/internal/ports"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	cfg *config.Config,
	listener ports.PushListener,
) error {
	defer logger.Sync()

	// Start the push listener
	if err := listener.Start(); err != nil {
		logger.Error("Failed to start push listener", zap.Error(err))
		return err
	}

	// Expose metrics if enabled
	if cfg.GetBool("metrics.enabled") {
		metrics.StartServer(cfg.GetString("metrics.listen_address"), logger)
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	if err := listener.Stop(); err != nil {
		logger.Error("Failed to stop push listener", zap.Error(err))
	}

	logger.Info("Shutdown complete")
	return nil
}
