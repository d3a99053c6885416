// Package catalog holds the immutable set of internship postings the engine matches against.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/terra-clan/internship-engine/internal/models"
)

// Catalog is an immutable, load-ordered collection of internships.
// It is built once and is safe for concurrent reads without locking.
type Catalog struct {
	internships []models.Internship
	byID        map[string]int
	sectors     []models.Sector
	version     string
}

// New validates records and builds a catalog from them. Any malformed record fails the whole load.
func New(records []models.Internship) (*Catalog, error) {
	if err := validateRecords(records); err != nil {
		return nil, err
	}

	c := &Catalog{
		internships: make([]models.Internship, len(records)),
		byID:        make(map[string]int, len(records)),
	}

	seenSector := make(map[models.Sector]bool)
	for i, rec := range records {
		c.internships[i] = rec.Clone()
		c.byID[rec.ID] = i

		if !seenSector[rec.Sector] {
			seenSector[rec.Sector] = true
			c.sectors = append(c.sectors, rec.Sector)
		}
	}

	version, err := fingerprint(c.internships)
	if err != nil {
		return nil, err
	}
	c.version = version

	return c, nil
}

// All returns a snapshot of every internship in load order
func (c *Catalog) All() []models.Internship {
	out := make([]models.Internship, len(c.internships))
	for i, in := range c.internships {
		out[i] = in.Clone()
	}
	return out
}

// Each calls fn for every internship in load order without copying.
// fn must not retain or modify the record's slices.
func (c *Catalog) Each(fn func(index int, in *models.Internship)) {
	for i := range c.internships {
		fn(i, &c.internships[i])
	}
}

// ByID returns the internship with the given id
func (c *Catalog) ByID(id string) (models.Internship, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Internship{}, false
	}
	return c.internships[idx].Clone(), true
}

// Sectors returns the distinct sectors present, in order of first appearance
func (c *Catalog) Sectors() []models.Sector {
	out := make([]models.Sector, len(c.sectors))
	copy(out, c.sectors)
	return out
}

// Len returns the number of internships
func (c *Catalog) Len() int {
	return len(c.internships)
}

// Version is a stable digest of the catalog contents
func (c *Catalog) Version() string {
	return c.version
}

func fingerprint(records []models.Internship) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint catalog: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8]), nil
}
