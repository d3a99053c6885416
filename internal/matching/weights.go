package matching

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights holds the points each scoring rule contributes
type Weights struct {
	SectorInterest int `yaml:"sector_interest" json:"sector_interest"`
	SkillOverlap   int `yaml:"skill_overlap" json:"skill_overlap"` // per matching skill
	EducationFit   int `yaml:"education_fit" json:"education_fit"`
	EducationExact int `yaml:"education_exact" json:"education_exact"`
	Location       int `yaml:"location" json:"location"`
}

// DefaultWeights ranks interest above skills and location, which rank above education
func DefaultWeights() Weights {
	return Weights{
		SectorInterest: 3,
		SkillOverlap:   2,
		EducationFit:   2,
		EducationExact: 1,
		Location:       2,
	}
}

// Validate rejects negative weights
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"sector_interest", w.SectorInterest},
		{"skill_overlap", w.SkillOverlap},
		{"education_fit", w.EducationFit},
		{"education_exact", w.EducationExact},
		{"location", w.Location},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("weight %s must be >= 0, got %d", f.name, f.value)
		}
	}
	return nil
}

// LoadWeights reads a YAML weights file. Keys missing from the file keep their default value.
func LoadWeights(path string) (Weights, error) {
	w := DefaultWeights()

	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("failed to read weights file: %w", err)
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("failed to parse weights YAML: %w", err)
	}
	if err := w.Validate(); err != nil {
		return w, err
	}
	return w, nil
}
