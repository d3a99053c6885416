package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/terra-clan/internship-engine/internal/models"
)

type recommendOptions struct {
	education string
	skills    []string
	interests []string
	location  string
	top       int
}

func newRecommendCmd() *cobra.Command {
	var opts recommendOptions

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print ranked internships for a candidate as JSON",
		Example: `  internship-engine recommend --education undergraduate \
    --skills computer,programming --interests technology --location mumbai`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(os.Stderr)
			if err != nil {
				return err
			}
			if opts.top > 0 {
				cfg.Matching.TopN = opts.top
			}

			engine, err := buildEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			results := engine.Recommend(opts.candidate())
			return writeJSON(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVarP(&opts.education, "education", "e", "", "Education level (10th, 12th, diploma, undergraduate, postgraduate)")
	cmd.Flags().StringSliceVarP(&opts.skills, "skills", "s", nil, "Comma-separated skill tags")
	cmd.Flags().StringSliceVarP(&opts.interests, "interests", "i", nil, "Comma-separated sector interests")
	cmd.Flags().StringVarP(&opts.location, "location", "l", "", "Preferred city or remote")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Maximum number of results (overrides MATCHING_TOP_N)")

	if err := cmd.MarkFlagRequired("education"); err != nil {
		panic(fmt.Sprintf("failed to mark education flag as required: %v", err))
	}

	return cmd
}

func (o recommendOptions) candidate() models.Candidate {
	c := models.Candidate{
		Education: models.EducationLevel(models.NormalizeTag(o.education)),
		Location:  models.Location(models.NormalizeTag(o.location)),
	}
	for _, s := range o.skills {
		c.Skills = append(c.Skills, models.Skill(models.NormalizeTag(s)))
	}
	for _, s := range o.interests {
		c.Interests = append(c.Interests, models.Sector(models.NormalizeTag(s)))
	}
	return c
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
