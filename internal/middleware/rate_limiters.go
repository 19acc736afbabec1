package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const tooManyRequests = "Muitas requisições, tente novamente em instantes"

// limiterInfo is a struct that holds a rate limiter and the last time it was seen.
type limiterInfo struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	lastSeen time.Time
}

func (li *limiterInfo) touch(now time.Time) {
	li.mu.Lock()
	li.lastSeen = now
	li.mu.Unlock()
}

func (li *limiterInfo) idleSince(now time.Time) time.Duration {
	li.mu.Lock()
	defer li.mu.Unlock()
	return now.Sub(li.lastSeen)
}

// RateLimitByIP applies a token bucket of rps requests per second, burst rps,
// to each client IP. Buckets idle longer than expiration are dropped.
func RateLimitByIP(rps int, cleanupInterval time.Duration, expiration time.Duration) gin.HandlerFunc {
	var limiters sync.Map

	// Cleanup goroutine
	go func() {
		for range time.Tick(cleanupInterval) {
			now := time.Now()
			limiters.Range(func(key, value interface{}) bool {
				if value.(*limiterInfo).idleSince(now) > expiration {
					limiters.Delete(key)
				}
				return true
			})
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()

		// Use LoadOrStore to ensure thread safety
		actual, _ := limiters.LoadOrStore(ip, &limiterInfo{
			limiter:  rate.NewLimiter(rate.Limit(rps), rps),
			lastSeen: time.Now(),
		})

		info := actual.(*limiterInfo)
		info.touch(time.Now())

		if !info.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"erro": tooManyRequests})
			return
		}

		c.Next()
	}
}
