package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/collabzy/collabzy-go/internal/core"
	"github.com/collabzy/collabzy-go/internal/di"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run fetches the requested resource and prints it as JSON
func run(flags *di.CLIFlags, coordinator *core.Coordinator, logger *zap.Logger) error {
	defer logger.Sync()

	ctx := context.Background()
	filters := parseFilters(flags.Filters)

	var (
		result any
		err    error
	)
	switch flags.Resource {
	case "influencers":
		result, err = coordinator.FetchInfluencers(ctx, filters, flags.Force)
	case "campaigns":
		result, err = coordinator.FetchCampaigns(ctx, filters, flags.Force)
	case "applications":
		result, err = coordinator.FetchMyApplications(ctx, filters, flags.Force)
	case "deals":
		result, err = coordinator.FetchMyDeals(ctx, filters, flags.Force)
	case "collaborations":
		result, err = coordinator.FetchCollaborations(ctx, filters, flags.Force)
	default:
		return fmt.Errorf("unknown resource %q", flags.Resource)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", flags.Resource, err)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

// parseFilters turns "key=value,key=value" into a filter map
func parseFilters(raw string) core.Filters {
	filters := core.Filters{}
	if raw == "" {
		return filters
	}
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			continue
		}
		filters[key] = value
	}
	return filters
}
