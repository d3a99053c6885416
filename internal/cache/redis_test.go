package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/internship-engine/internal/config"
	"github.com/terra-clan/internship-engine/internal/models"
)

func TestKey_IgnoresOrderAndDuplicates(t *testing.T) {
	a := models.Candidate{
		Education: models.EducationDiploma,
		Skills:    []models.Skill{models.SkillSales, models.SkillComputer, models.SkillSales},
		Interests: []models.Sector{models.SectorFinance, models.SectorTechnology},
		Location:  models.LocationPune,
	}
	b := models.Candidate{
		Education: models.EducationDiploma,
		Skills:    []models.Skill{models.SkillComputer, models.SkillSales},
		Interests: []models.Sector{models.SectorTechnology, models.SectorFinance},
		Location:  models.LocationPune,
	}

	ka, err := Key("fp", a)
	require.NoError(t, err)
	kb, err := Key("fp", b)
	require.NoError(t, err)

	assert.Equal(t, ka, kb)
	assert.True(t, strings.HasPrefix(ka, "recommend:fp:"))
}

func TestKey_Distinguishes(t *testing.T) {
	base := models.Candidate{Education: models.EducationDiploma, Location: models.LocationPune}
	other := base
	other.Location = models.LocationDelhi

	k1, _ := Key("fp", base)
	k2, _ := Key("fp", other)
	k3, _ := Key("fp2", base)

	assert.NotEqual(t, k1, k2)
	assert.NotEqual(t, k1, k3)

	empty := base
	empty.Skills = []models.Skill{}
	k4, _ := Key("fp", empty)
	assert.Equal(t, k1, k4, "nil and empty skill sets are equivalent")
}

func TestDisabledCacheIsANoop(t *testing.T) {
	ctx := context.Background()
	c := NewRedis(ctx, config.RedisConfig{})

	assert.False(t, c.Enabled())

	_, ok := c.Get(ctx, "fp", models.Candidate{})
	assert.False(t, ok)
	assert.NoError(t, c.Set(ctx, "fp", models.Candidate{}, nil))
	assert.Error(t, c.HealthCheck(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedisDegradesToMiss(t *testing.T) {
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := New(client, time.Minute)
	defer c.Close()

	require.True(t, c.Enabled())

	_, ok := c.Get(ctx, "fp", models.Candidate{Education: models.EducationTenth})
	assert.False(t, ok)

	err := c.Set(ctx, "fp", models.Candidate{Education: models.EducationTenth}, []models.MatchResult{})
	assert.Error(t, err)
	assert.Error(t, c.HealthCheck(ctx))
}
