package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-mentor/internal/career"
	"github.com/jonathan/career-mentor/internal/db"
	"github.com/jonathan/career-mentor/internal/fetch"
	"github.com/jonathan/career-mentor/internal/linkcheck"
	"github.com/jonathan/career-mentor/internal/observability"
)

var checkLinksCmd = &cobra.Command{
	Use:   "check-links",
	Short: "Check that every resource link in the catalog resolves",
	Long: `Fetch every free, paid and video link in the roadmap templates and report the broken ones.

The command exits non-zero when any link is broken. With --cache, successful fetches are
kept in the configured store and reused for 24 hours.`,
	RunE: runCheckLinks,
}

var (
	checkDomains     []string
	checkConcurrency int
	checkCache       bool
	checkJSON        bool
)

func init() {
	checkLinksCmd.Flags().StringSliceVar(&checkDomains, "domain", nil, "Only check these domains (repeatable)")
	checkLinksCmd.Flags().IntVar(&checkConcurrency, "concurrency", linkcheck.DefaultConcurrency, "Maximum concurrent fetches")
	checkLinksCmd.Flags().BoolVar(&checkCache, "cache", false, "Cache successful fetches in the store")
	checkLinksCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the full report as JSON")

	rootCmd.AddCommand(checkLinksCmd)
}

func runCheckLinks(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var store db.Store
	if checkCache {
		s, err := db.Open(ctx, appConfig.DBConfig())
		if err != nil {
			return fmt.Errorf("failed to open cache store: %w", err)
		}
		defer func() {
			if err := s.Close(); err != nil {
				slog.Error("failed to close store", slog.Any("error", err))
			}
		}()
		store = s
	}

	report, err := linkcheck.Check(ctx, career.Default(), linkcheck.Options{
		Concurrency: checkConcurrency,
		Domains:     checkDomains,
		Fetcher:     fetch.NewCachedFetcher(store, nil),
	})
	if err != nil {
		return err
	}

	if checkJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		observability.NewPrinter(os.Stdout).PrintLinkReport(report)
	}

	if report.Broken > 0 {
		return fmt.Errorf("%d of %d links are broken", report.Broken, report.Checked)
	}
	return nil
}
