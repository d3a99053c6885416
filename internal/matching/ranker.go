package matching

import (
	"cmp"
	"slices"

	"github.com/terra-clan/internship-engine/internal/catalog"
	"github.com/terra-clan/internship-engine/internal/models"
)

// DefaultTopN bounds the number of recommendations returned
const DefaultTopN = 10

// Ranker scores the whole catalog for a candidate and keeps the best matches
type Ranker struct {
	catalog *catalog.Catalog
	scorer  *Scorer
	limit   int
}

// NewRanker creates a ranker returning at most limit results; limit <= 0 selects DefaultTopN
func NewRanker(c *catalog.Catalog, s *Scorer, limit int) *Ranker {
	if limit <= 0 {
		limit = DefaultTopN
	}
	return &Ranker{catalog: c, scorer: s, limit: limit}
}

type scored struct {
	in    *models.Internship
	score Score
}

// Recommend returns eligible internships ordered by score descending. Equal scores keep
// catalog load order. The result is never nil.
func (r *Ranker) Recommend(c models.Candidate) []models.MatchResult {
	p := newProfile(c)

	var hits []scored
	r.catalog.Each(func(_ int, in *models.Internship) {
		sc := r.scorer.score(p, in)
		if !sc.Eligible || sc.Points <= 0 {
			return
		}
		hits = append(hits, scored{in: in, score: sc})
	})

	slices.SortStableFunc(hits, func(a, b scored) int {
		return cmp.Compare(b.score.Points, a.score.Points)
	})

	if len(hits) > r.limit {
		hits = hits[:r.limit]
	}

	results := make([]models.MatchResult, len(hits))
	for i, h := range hits {
		results[i] = models.MatchResult{
			Internship: h.in.Clone(),
			Score:      h.score.Points,
			Reason:     h.score.Reason,
		}
	}
	return results
}
