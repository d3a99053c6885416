// Package main provides the internship-engine server and CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/terra-clan/internship-engine/internal/config"
)

// version is reported by GET / and can be overridden with -ldflags "-X main.version=..."
var version = "1.0.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "internship-engine",
		Short:         "Internship recommendation engine",
		Long:          "internship-engine ranks internships from a fixed catalog against a candidate's education, skills, interests and location, over HTTP or from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newServeCmd(),
		newRecommendCmd(),
		newSearchCmd(),
		newCatalogCmd(),
		newMigrateCmd(),
	)
	return cmd
}

// loadConfig reads the environment and installs the JSON logger at the configured level
func loadConfig(logOutput io.Writer) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return cfg, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
