package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/terra-clan/internship-engine/internal/catalog"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect internship catalogs",
	}
	cmd.AddCommand(newCatalogValidateCmd())
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Load a catalog and report every invalid record",
		Long:  "Validate the YAML catalog at path, or the configured catalog source when no path is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(os.Stderr)
			if err != nil {
				return err
			}

			var c *catalog.Catalog
			if len(args) == 1 {
				c, err = catalog.Load(cmd.Context(), catalog.FileSource{Path: args[0]})
			} else {
				c, err = loadCatalog(cmd.Context(), cfg)
			}

			out := cmd.OutOrStdout()
			if err != nil {
				var verr *catalog.ValidationError
				if errors.As(err, &verr) {
					for _, p := range verr.Problems {
						fmt.Fprintf(out, "  - %s\n", p)
					}
					return fmt.Errorf("catalog has %d problem(s)", len(verr.Problems))
				}
				return err
			}

			fmt.Fprintf(out, "catalog OK: %d internships, %d sectors, version %s\n",
				c.Len(), len(c.Sectors()), c.Version())
			return nil
		},
	}
}
