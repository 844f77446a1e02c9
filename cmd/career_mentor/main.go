// Package main provides the entry point for the Career Mentor CLI and HTTP API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-mentor/internal/chat"
	"github.com/jonathan/career-mentor/internal/config"
	"github.com/jonathan/career-mentor/internal/llm"
)

var (
	configPath string
	verbose    bool
	logLevel   string

	// appConfig is resolved once per invocation before any command runs.
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "career_mentor",
	Short: "Career Mentor roadmap generator and API server",
	Long: "Career Mentor classifies a learner's interests and skills into a technology domain, " +
		"builds a three-phase career roadmap for it, and serves roadmaps, profiles, jobs and chat over a REST API.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides LOG_LEVEL)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup merges environment and file configuration and installs the logger.
// Environment values win over the file; flags win over both.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	cfg.Verbose = cfg.Verbose || verbose
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})))
	appConfig = cfg
	return nil
}

// newChatService returns an unconfigured service when no API key is set.
func newChatService(ctx context.Context, cfg *config.Config) (*chat.Service, error) {
	if cfg.APIKey == "" {
		slog.Warn("GEMINI_API_KEY not set; chat replies will explain how to configure it")
		return chat.NewService(nil), nil
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}
	return chat.NewService(client), nil
}
