// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is malformed, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the jobdesk API.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string // empty disables the job-list cache

	PostsURL    string // JSONPlaceholder-shaped source
	JobPostsURL string // jsonfakery-shaped source

	RefreshIntervalHours int // 0 disables the periodic refresh
	CacheTTL             time.Duration
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	refresh := 0
	if s := os.Getenv("REFRESH_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("REFRESH_INTERVAL_HOURS must be a non-negative integer, got %q", s)
		}
		refresh = v
	}

	ttl := 10 * time.Minute
	if s := os.Getenv("CACHE_TTL_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("CACHE_TTL_MINUTES must be a positive integer, got %q", s)
		}
		ttl = time.Duration(v) * time.Minute
	}

	return &Config{
		Port:                 port,
		DatabaseURL:          dbURL,
		RedisURL:             os.Getenv("REDIS_URL"),
		PostsURL:             os.Getenv("JOBS_SOURCE_URL"),
		JobPostsURL:          os.Getenv("JOBFAKERY_SOURCE_URL"),
		RefreshIntervalHours: refresh,
		CacheTTL:             ttl,
	}, nil
}
