package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Namespace scopes every key to one session; a new session never sees older data
	Namespace string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL settings for different entity types
	GameTTL    time.Duration
	SummaryTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     4,
		MinIdleConns: 1,
		GameTTL:      2 * time.Hour,
		SummaryTTL:   12 * time.Hour,
	}
}
