package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-mentor/internal/config"
	"github.com/jonathan/career-mentor/internal/db"
	"github.com/jonathan/career-mentor/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for roadmaps, the profile, the job board and chat.

Storage is PostgreSQL when DATABASE_URL is a postgres:// URL and a SQLite file otherwise.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT, default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	port := appConfig.Port
	if servePort != 0 {
		port = servePort
	}
	if port == 0 {
		port = config.DefaultPort
	}

	store, err := db.Open(ctx, appConfig.DBConfig())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close store", slog.Any("error", err))
		}
	}()

	chatService, err := newChatService(ctx, appConfig)
	if err != nil {
		return err
	}
	defer func() { _ = chatService.Close() }()

	srv, err := server.New(ctx, server.Config{
		Port:          port,
		Store:         store,
		Chat:          chatService,
		AllowedOrigin: appConfig.AllowedOrigin,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
