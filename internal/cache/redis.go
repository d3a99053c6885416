// Package cache stores computed recommendations in Redis. The cache is optional:
// when Redis is not configured or not reachable every call is a miss.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/terra-clan/internship-engine/internal/config"
	"github.com/terra-clan/internship-engine/internal/models"
)

const keyPrefix = "recommend:"

// RecommendationCache caches ranked results per engine fingerprint and candidate
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

// NewRedis connects to Redis. A missing address or a failed ping yields a disabled cache, not an error.
func NewRedis(ctx context.Context, cfg config.RedisConfig) *RecommendationCache {
	if cfg.Address == "" {
		slog.Info("recommendation cache disabled", "reason", "no redis address configured")
		return &RecommendationCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable, bypassing recommendation cache", "address", cfg.Address, "error", err)
		_ = client.Close()
		return &RecommendationCache{}
	}

	slog.Info("recommendation cache enabled", "address", cfg.Address, "ttl", cfg.TTL)
	return New(client, cfg.TTL)
}

// New wraps an existing client
func New(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{client: client, ttl: ttl}
}

// Enabled reports whether a Redis client is attached
func (c *RecommendationCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get returns cached results for the candidate. Redis errors are logged and reported as a miss.
func (c *RecommendationCache) Get(ctx context.Context, fingerprint string, cand models.Candidate) ([]models.MatchResult, bool) {
	if !c.Enabled() {
		return nil, false
	}

	key, err := Key(fingerprint, cand)
	if err != nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warnUnavailableOnce(err)
		}
		return nil, false
	}

	var results []models.MatchResult
	if err := json.Unmarshal(data, &results); err != nil {
		slog.Warn("discarding undecodable cache entry", "key", key, "error", err)
		return nil, false
	}
	return results, true
}

// Set stores results for the candidate
func (c *RecommendationCache) Set(ctx context.Context, fingerprint string, cand models.Candidate, results []models.MatchResult) error {
	if !c.Enabled() {
		return nil
	}

	key, err := Key(fingerprint, cand)
	if err != nil {
		return err
	}

	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.warnUnavailableOnce(err)
		return fmt.Errorf("failed to store results: %w", err)
	}
	return nil
}

// HealthCheck verifies Redis connectivity
func (c *RecommendationCache) HealthCheck(ctx context.Context) error {
	if !c.Enabled() {
		return errors.New("redis cache disabled")
	}
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RecommendationCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

func (c *RecommendationCache) warnUnavailableOnce(err error) {
	if c.warnedUnavailable.CompareAndSwap(false, true) {
		slog.Warn("redis cache call failed, serving uncached results", "error", err)
	}
}

// canonicalCandidate orders and deduplicates the candidate's sets so equivalent requests share a key
type canonicalCandidate struct {
	Education models.EducationLevel `json:"e"`
	Location  models.Location       `json:"l"`
	Skills    []models.Skill        `json:"s"`
	Interests []models.Sector       `json:"i"`
}

// Key derives the cache key for a candidate under an engine fingerprint
func Key(fingerprint string, cand models.Candidate) (string, error) {
	canon := canonicalCandidate{
		Education: cand.Education,
		Location:  cand.Location,
		Skills:    slices.Compact(slices.Sorted(slices.Values(cand.Skills))),
		Interests: slices.Compact(slices.Sorted(slices.Values(cand.Interests))),
	}

	data, err := json.Marshal(canon)
	if err != nil {
		return "", fmt.Errorf("failed to marshal candidate: %w", err)
	}

	sum := sha256.Sum256(data)
	return keyPrefix + fingerprint + ":" + hex.EncodeToString(sum[:]), nil
}
