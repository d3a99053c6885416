package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/internship-engine/internal/models"
)

func TestSearch_NoFiltersReturnsCatalog(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t, c.All(), Search(c, Query{}))
}

func TestSearch_SectorAndRemoteCompose(t *testing.T) {
	c := defaultCatalog(t)

	var want []models.Internship
	for _, in := range c.All() {
		if in.Sector == models.SectorTechnology && in.IsRemote {
			want = append(want, in)
		}
	}
	require.NotEmpty(t, want)

	got := Search(c, Query{Sector: models.SectorTechnology, RemoteOnly: true})

	assert.Equal(t, want, got)
}

func TestSearch_Location(t *testing.T) {
	c := defaultCatalog(t)

	got := Search(c, Query{Location: models.LocationDelhi})

	require.NotEmpty(t, got)
	for _, in := range got {
		assert.Equal(t, models.LocationDelhi, in.Location)
	}
}

func TestSearch_RemoteFalseIsNotAFilter(t *testing.T) {
	c := defaultCatalog(t)

	got := Search(c, Query{Sector: models.SectorTechnology, RemoteOnly: false})

	var sawRemote, sawOnSite bool
	for _, in := range got {
		if in.IsRemote {
			sawRemote = true
		} else {
			sawOnSite = true
		}
	}
	assert.True(t, sawRemote)
	assert.True(t, sawOnSite)
}

func TestSearch_UnknownValuesYieldNothing(t *testing.T) {
	c := defaultCatalog(t)

	got := Search(c, Query{Sector: "space"})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, Search(c, Query{Location: "paris"}))
	assert.Empty(t, Search(c, Query{Sector: "Technology"}), "engine does not normalise case")
}
