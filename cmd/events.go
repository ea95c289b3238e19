package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/akeller/spotify-history-tools/internal/analysis"
	"github.com/akeller/spotify-history-tools/internal/history"
)

// loadEvents reads the configured export paths then applies the optional
// date-range arguments. Every command that consumes history goes through
// here so they all see the same events for the same flags.
func loadEvents(args []string) ([]history.PlayEvent, error) {
	paths := viper.GetStringSlice("export")
	if len(paths) == 0 {
		return nil, fmt.Errorf("No export files given. Use --export or set 'export' in the config file.")
	}

	events, loaded, err := history.Load(paths)
	if err != nil {
		return nil, fmt.Errorf("loading export: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d events from %d files\n", len(events), len(loaded))

	start, end, err := parseOptionalDateRange(args)
	if err != nil {
		return nil, err
	}
	if start != nil || end != nil {
		events = analysis.FilterByDateRange(events, start, end)
	}

	return events, nil
}
