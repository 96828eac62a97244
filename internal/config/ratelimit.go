package config

import "time"

// RateLimitConfig defines settings for the token-bucket rate limiter that
// guards the ticket purchase endpoint.  Keys combine client IP and route.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int           // bucket size
	RefillTokens   int           // tokens added per interval
	RefillInterval time.Duration // refill cadence
	TTL            time.Duration // idle bucket expiry
	Prefix         string        // redis key prefix
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig.  Defaults allow short bursts while keeping a steady
// per-client purchase rate.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:        getenv("RATELIMIT_ENABLED", "true") == "true",
		Capacity:       atoi(getenv("RATELIMIT_CAPACITY", "20")),
		RefillTokens:   atoi(getenv("RATELIMIT_REFILL_TOKENS", "10")),
		RefillInterval: parseDur(getenv("RATELIMIT_REFILL_INTERVAL", "1s")),
		TTL:            parseDur(getenv("RATELIMIT_TTL", "10m")),
		Prefix:         getenv("RATELIMIT_PREFIX", "rl"),
	}
}
