package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/terra-clan/internship-engine/internal/catalog"
	"github.com/terra-clan/internship-engine/internal/storage"
)

func newMigrateCmd() *cobra.Command {
	var (
		seed     bool
		seedFrom string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the postgres catalog source",
		Long:  "Apply the embedded SQL migrations to DATABASE_DSN. With --seed the internships table is replaced by a validated YAML catalog.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(os.Stderr)
			if err != nil {
				return err
			}
			if cfg.Database.DSN == "" {
				return errors.New("DATABASE_DSN is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			slog.Info("running database migrations")
			if err := storage.MigrateFromDSN(ctx, cfg.Database.DSN); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			if !seed {
				return nil
			}

			path := seedFrom
			if path == "" {
				path = cfg.Catalog.Path
			}

			// validate before touching the table
			c, err := catalog.Load(ctx, catalog.FileSource{Path: path})
			if err != nil {
				return err
			}
			return storage.SeedFromDSN(ctx, cfg.Database.DSN, c.All())
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Replace the internships table with a YAML catalog")
	cmd.Flags().StringVar(&seedFrom, "from", "", "Catalog file to seed from (default CATALOG_PATH, else the embedded catalog)")
	return cmd
}
