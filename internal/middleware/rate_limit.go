// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/artmint/artmint-backend/internal/config"
)

// clientBucket is one caller's token bucket. Buckets idle past the
// eviction window get swept so the map does not grow with every IP
// that ever placed a bid.
type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	refill  rate.Limit
	burst   int
}

func newIPRateLimiter(refill rate.Limit, burst int) *ipRateLimiter {
	l := &ipRateLimiter{
		buckets: make(map[string]*clientBucket),
		refill:  refill,
		burst:   burst,
	}
	go l.sweepIdle()
	return l
}

func (l *ipRateLimiter) sweepIdle() {
	for {
		time.Sleep(time.Minute)
		l.mu.Lock()
		for ip, b := range l.buckets {
			if time.Since(b.lastSeen) > 3*time.Minute {
				delete(l.buckets, ip)
			}
		}
		l.mu.Unlock()
	}
}

func (l *ipRateLimiter) bucketFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(l.refill, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = time.Now()
	return b.limiter
}

func (l *ipRateLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.bucketFor(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// perIPLimit builds a limiter admitting quota requests per interval
// for each client IP. The bucket holds a full quota, so a burst of
// bids up to the quota is admitted immediately.
func perIPLimit(interval time.Duration, quota int) gin.HandlerFunc {
	if quota <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return newIPRateLimiter(rate.Every(interval/time.Duration(quota)), quota).handler()
}

// GeneralRateLimit throttles the whole API surface.
func GeneralRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return perIPLimit(time.Second, cfg.GeneralPerSecond)
}

// AuthRateLimit keeps credential stuffing off register, login and
// refresh.
func AuthRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return perIPLimit(time.Minute, cfg.AuthPerMinute)
}

// UploadRateLimit bounds artwork image uploads, the most expensive
// request the API serves.
func UploadRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	return perIPLimit(time.Minute, cfg.UploadPerMinute)
}
