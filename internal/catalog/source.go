package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/terra-clan/internship-engine/internal/models"
)

//go:embed data/internships.yaml
var defaultCatalog []byte

// Source supplies the raw internship records a catalog is built from
type Source interface {
	LoadInternships(ctx context.Context) ([]models.Internship, error)
}

// Load reads every record from src and builds a validated catalog
func Load(ctx context.Context, src Source) (*Catalog, error) {
	records, err := src.LoadInternships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog source: %w", err)
	}

	c, err := New(records)
	if err != nil {
		return nil, err
	}

	slog.Info("catalog loaded",
		"internships", c.Len(),
		"sectors", len(c.sectors),
		"version", c.Version(),
	)
	return c, nil
}

// catalogFile represents the YAML structure of a catalog file
type catalogFile struct {
	Internships []models.Internship `yaml:"internships"`
}

// FileSource reads internships from a YAML file. An empty Path selects the embedded default catalog.
type FileSource struct {
	Path string
}

// LoadInternships implements Source
func (s FileSource) LoadInternships(_ context.Context) ([]models.Internship, error) {
	if s.Path == "" {
		return parseCatalog(defaultCatalog)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return parseCatalog(data)
}

// parseCatalog decodes a catalog document, rejecting keys the record type does not know
func parseCatalog(data []byte) ([]models.Internship, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cf catalogFile
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cf.Internships, nil
}
