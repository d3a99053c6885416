package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/terra-clan/internship-engine/internal/matching"
	"github.com/terra-clan/internship-engine/internal/models"
)

func newSearchCmd() *cobra.Command {
	var (
		sector   string
		location string
		remote   bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter the catalog by sector, location and remote flag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(os.Stderr)
			if err != nil {
				return err
			}

			engine, err := buildEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			results := engine.Search(matching.Query{
				Sector:     models.Sector(models.NormalizeTag(sector)),
				Location:   models.Location(models.NormalizeTag(location)),
				RemoteOnly: remote,
			})
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&sector, "sector", "", "Sector tag")
	cmd.Flags().StringVar(&location, "location", "", "City tag or remote")
	cmd.Flags().BoolVar(&remote, "remote", false, "Only remote internships")
	return cmd
}
