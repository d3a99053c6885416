package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/terra-clan/internship-engine/internal/catalog"
	"github.com/terra-clan/internship-engine/internal/config"
	"github.com/terra-clan/internship-engine/internal/matching"
	"github.com/terra-clan/internship-engine/internal/storage"
)

// loadCatalog reads the catalog from the configured source. The Postgres handle is closed once the records are in memory.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		src, err := storage.OpenPostgresSource(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return catalog.Load(ctx, src)
	default:
		return catalog.Load(ctx, catalog.FileSource{Path: cfg.Catalog.Path})
	}
}

// buildEngine loads the catalog and weights and assembles the matching engine
func buildEngine(ctx context.Context, cfg *config.Config) (*matching.Engine, error) {
	c, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	weights := matching.DefaultWeights()
	if cfg.Matching.WeightsPath != "" {
		weights, err = matching.LoadWeights(cfg.Matching.WeightsPath)
		if err != nil {
			return nil, err
		}
		slog.Info("matching weights loaded", "path", cfg.Matching.WeightsPath)
	}

	engine := matching.NewEngine(c, matching.Options{
		TopN:    cfg.Matching.TopN,
		Weights: &weights,
	})

	slog.Debug("matching engine ready",
		"top_n", engine.TopN(),
		"fingerprint", engine.Fingerprint(),
	)
	return engine, nil
}
