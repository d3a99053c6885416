package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/terra-clan/internship-engine/internal/api"
	"github.com/terra-clan/internship-engine/internal/cache"
	"github.com/terra-clan/internship-engine/internal/config"
	"github.com/terra-clan/internship-engine/internal/services"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Load the catalog once and serve recommendations, search and lookup over HTTP until SIGINT or SIGTERM.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(os.Stdout)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (overrides SERVER_PORT)")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	slog.Info("starting internship-engine",
		"version", version,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"catalog_source", cfg.Catalog.Source,
	)

	initCtx, initCancel := context.WithTimeout(ctx, 30*time.Second)
	defer initCancel()

	engine, err := buildEngine(initCtx, cfg)
	if err != nil {
		return err
	}

	recCache := cache.NewRedis(initCtx, cfg.Redis)
	defer func() {
		if err := recCache.Close(); err != nil {
			slog.Error("cache close error", "error", err)
		}
	}()

	registry := services.NewRegistry()
	registry.Register("catalog", services.CatalogCheck(engine.CatalogSize))
	if recCache.Enabled() {
		registry.Register("redis", recCache)
	}

	server := api.NewServer(cfg.Server, engine, recCache, registry, version)
	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}
		return nil
	})

	err = g.Wait()
	slog.Info("internship-engine stopped")
	return err
}
