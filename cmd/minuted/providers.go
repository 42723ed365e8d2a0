package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/minuted/internal/config"
	"github.com/fyrsmithlabs/minuted/internal/provider"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Report which extraction providers are available",
	Long: `Report which extraction providers could serve a request right now.

Remote providers count as available when their API key environment
variable is set. The local provider is probed over HTTP. The rule-based
extractor is always available.`,
	RunE: runProviders,
}

func runProviders(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	selector := provider.NewSelector(cfg.Providers)
	availability := selector.Availability(context.Background(), credentialsFromEnv())

	names := make([]string, 0, len(availability))
	for name := range availability {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		state := "unavailable"
		if availability[name] {
			state = "available"
		}
		fmt.Printf("%-12s %s\n", name, state)
	}
	return nil
}
