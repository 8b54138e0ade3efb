// Package cache is the Redis-backed read cache for the job collection.
// A nil client disables caching entirely; every miss or Redis error
// degrades to the database, never to a request failure.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"jobdesk/internal/models"
)

const jobsKey = "jobs:all"

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// JobCache caches the full serialized job collection under a single key.
type JobCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// New returns a JobCache. rdb may be nil, which disables the cache.
func New(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *JobCache {
	return &JobCache{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached collection and whether it was a hit.
func (c *JobCache) Get(ctx context.Context) ([]models.Job, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, jobsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("job cache read failed")
		}
		return nil, false
	}

	var jobs []models.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		c.log.Warn().Err(err).Msg("job cache payload corrupt")
		return nil, false
	}
	return jobs, true
}

// Set stores the collection with the configured TTL.
func (c *JobCache) Set(ctx context.Context, jobs []models.Job) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(jobs)
	if err != nil {
		c.log.Warn().Err(err).Msg("job cache marshal failed")
		return
	}
	if err := c.rdb.Set(ctx, jobsKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("job cache write failed")
	}
}

// Invalidate drops the cached collection after a store flow ran.
func (c *JobCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, jobsKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("job cache invalidation failed")
	}
}
