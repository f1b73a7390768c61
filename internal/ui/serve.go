package ui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/afazeres/internal/debuglog"
	"github.com/javiermolinar/afazeres/internal/server"
)

func (a *App) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the extractor as a JSON HTTP API",
		Long: `Start an HTTP server exposing the extractor.

Routes:
  GET  /health
  POST /api/v1/extract        {"text": "...", "today": "YYYY-MM-DD"}
  POST /api/v1/extract/batch  {"texts": ["..."], "today": "YYYY-MM-DD"}

Example:
  afazeres serve --addr=:9000`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := a.config.Server
			if addr != "" {
				cfg.Addr = addr
			}

			logger, err := debuglog.New(debuglog.Config{Level: a.config.Log.Level, Encoding: "json"})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			srv, err := server.New(server.Config{
				Logger:          logger,
				Addr:            cfg.Addr,
				Mode:            cfg.Mode,
				DateLayout:      a.config.Output.DateFormat,
				RateLimitPerMin: cfg.RateLimitPerMin,
				CacheSize:       cfg.CacheSize,
				Now:             a.now,
			})
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting afazeres API",
				zap.String("version", Version),
				zap.String("mode", cfg.Mode),
			)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: server.addr from config)")

	return cmd
}
