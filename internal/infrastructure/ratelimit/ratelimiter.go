// Package ratelimit provides request rate limiting backed by redis.
// Applied to the auth endpoints to slow down credential stuffing.
package ratelimit

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	Reset(key string) error
}

// LoginLimits is the default allowance for login and password reset attempts.
var LoginLimits = RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   60,
	RequestsPerDay:    200,
}
