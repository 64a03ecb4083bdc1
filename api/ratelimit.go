package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// RateLimitConfig configures the per-client rate limiter.
type RateLimitConfig struct {
	// Rate is the number of requests allowed per second.
	// Default: 100
	Rate float64

	// Burst is the maximum burst size.
	// Default: 10
	Burst int
}

// rateLimiter is a token bucket.
type rateLimiter struct {
	rate  float64
	burst int

	mu          sync.Mutex
	tokens      float64
	lastRefresh time.Time
}

func newRateLimiter(config RateLimitConfig) *rateLimiter {
	if config.Rate <= 0 {
		config.Rate = 100
	}
	if config.Burst <= 0 {
		config.Burst = 10
	}

	return &rateLimiter{
		rate:        config.Rate,
		burst:       config.Burst,
		tokens:      float64(config.Burst),
		lastRefresh: time.Now(),
	}
}

func (rl *rateLimiter) allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastRefresh)
	rl.lastRefresh = now

	rl.tokens += elapsed.Seconds() * rl.rate
	if rl.tokens > float64(rl.burst) {
		rl.tokens = float64(rl.burst)
	}

	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

// RateLimit wraps a handler with a shared token-bucket limiter. Requests
// over the allowance receive a 429 with a JSON detail body and a
// Retry-After hint.
func RateLimit(config RateLimitConfig, next http.Handler) http.Handler {
	limiter := newRateLimiter(config)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.allow() {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(errorResponse{Detail: "Rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
