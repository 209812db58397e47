package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/honohub"
	"github.com/dmitrymomot/honohub/middlewares"
	"github.com/dmitrymomot/honohub/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the honohub HTTP server.

Environment variables:
  ADDR                    listen address (default :8080)
  COLLECTIONS_DIR         directory with collection YAML files (default collections)
  COLLECTIONS_GLOB        file pattern inside COLLECTIONS_DIR (default *.yaml)
  DATABASE_URL            PostgreSQL URL; documents stay in memory when unset
  REDIS_URL               Redis URL; enables the document cache
  CORS_ORIGINS            comma-separated origins allowed to call the API
  ADMIN_TITLE             admin panel title
  ADMIN_ASSETS_DIR        built admin panel to serve under /admin/
  LOG_LEVEL, LOG_FORMAT   debug|info|warn|error, json|text
  SENTRY_DSN              forward error logs to Sentry

Examples:
  honohub serve
  DATABASE_URL=postgres://localhost/honohub honohub serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor())
	ctx := cmd.Context()

	h := &hub{}
	s, err := openStore(ctx, cfg, log, h)
	if err != nil {
		h.close(ctx)
		return err
	}
	if err := newHub(ctx, cfg, s, log, h); err != nil {
		h.close(ctx)
		return fmt.Errorf("compose hub: %w", err)
	}

	opts := []honohub.RunOption{
		honohub.Address(cfg.Addr),
		honohub.Logger(log),
		honohub.ShutdownTimeout(cfg.ShutdownTimeout),
		honohub.WithContext(ctx),
	}
	for _, fn := range h.shutdowns {
		opts = append(opts, honohub.ShutdownHook(fn))
	}

	log.Info("starting honohub", slog.String("addr", cfg.Addr))
	return h.comp.App.Run(opts...)
}
