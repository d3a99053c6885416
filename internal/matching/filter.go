package matching

import (
	"github.com/terra-clan/internship-engine/internal/catalog"
	"github.com/terra-clan/internship-engine/internal/models"
)

// Query is a structural filter over the catalog. Empty fields impose no constraint.
// RemoteOnly=false means "don't care"; there is no way to ask for non-remote postings only.
type Query struct {
	Sector     models.Sector
	Location   models.Location
	RemoteOnly bool
}

func (q Query) matches(in *models.Internship) bool {
	if q.Sector != "" && in.Sector != q.Sector {
		return false
	}
	if q.Location != "" && in.Location != q.Location {
		return false
	}
	if q.RemoteOnly && !in.IsRemote {
		return false
	}
	return true
}

// Search returns the internships matching q in catalog load order. The result is never nil.
func Search(c *catalog.Catalog, q Query) []models.Internship {
	out := make([]models.Internship, 0)
	c.Each(func(_ int, in *models.Internship) {
		if q.matches(in) {
			out = append(out, in.Clone())
		}
	})
	return out
}
