package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig bounds request rates for the limiting middlewares.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// RateLimit throttles each client IP with its own token bucket. Buckets are
// created on first sight and kept for the life of the process.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		buckets = make(map[string]*rate.Limiter)
	)

	bucket := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		b, ok := buckets[ip]
		if !ok {
			b = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
			buckets[ip] = b
		}
		return b
	}

	return func(c *gin.Context) {
		if !bucket(c.ClientIP()).Allow() {
			throttle(c)
			return
		}
		c.Next()
	}
}

// GlobalRateLimit throttles all clients through one shared bucket.
func GlobalRateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	shared := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)

	return func(c *gin.Context) {
		if !shared.Allow() {
			throttle(c)
			return
		}
		c.Next()
	}
}

func throttle(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error": "rate limit exceeded",
	})
}
