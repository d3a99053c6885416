package matching

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/terra-clan/internship-engine/internal/catalog"
	"github.com/terra-clan/internship-engine/internal/models"
)

// Options configures an Engine
type Options struct {
	TopN    int
	Weights *Weights // nil selects DefaultWeights
}

// Engine is the read-only entry point used by the transport layers.
// It is built once at startup and shared by every request handler.
type Engine struct {
	catalog     *catalog.Catalog
	ranker      *Ranker
	weights     Weights
	topN        int
	fingerprint string
}

// NewEngine wires a scorer and ranker over c
func NewEngine(c *catalog.Catalog, opts Options) *Engine {
	w := DefaultWeights()
	if opts.Weights != nil {
		w = *opts.Weights
	}
	ranker := NewRanker(c, NewScorer(w), opts.TopN)

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%+v|%d", c.Version(), w, ranker.limit)))

	return &Engine{
		catalog:     c,
		ranker:      ranker,
		weights:     w,
		topN:        ranker.limit,
		fingerprint: hex.EncodeToString(sum[:8]),
	}
}

// Recommend returns the top-ranked internships for a candidate
func (e *Engine) Recommend(c models.Candidate) []models.MatchResult {
	return e.ranker.Recommend(c)
}

// AllInternships returns the full catalog in load order
func (e *Engine) AllInternships() []models.Internship {
	return e.catalog.All()
}

// AvailableSectors returns the sectors present in the catalog
func (e *Engine) AvailableSectors() []models.Sector {
	return e.catalog.Sectors()
}

// Search applies a structural filter
func (e *Engine) Search(q Query) []models.Internship {
	return Search(e.catalog, q)
}

// Internship looks up a single internship by id
func (e *Engine) Internship(id string) (models.Internship, bool) {
	return e.catalog.ByID(id)
}

// TopN returns the configured result limit
func (e *Engine) TopN() int {
	return e.topN
}

// Weights returns the scoring weights in use
func (e *Engine) Weights() Weights {
	return e.weights
}

// CatalogSize returns the number of internships served
func (e *Engine) CatalogSize() int {
	return e.catalog.Len()
}

// Fingerprint identifies the catalog, weights and limit; identical fingerprints give identical results
func (e *Engine) Fingerprint() string {
	return e.fingerprint
}
