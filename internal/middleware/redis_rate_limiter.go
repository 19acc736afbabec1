package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/windoze95/receitas-api/internal/logger"
	"go.uber.org/zap"
)

// RedisRateLimitConfig defines a fixed-window limit shared across instances.
type RedisRateLimitConfig struct {
	Window    time.Duration
	Limit     int
	KeyPrefix string
}

// RedisRateLimiter counts requests per client IP in Redis.
type RedisRateLimiter struct {
	redis  *redis.Client
	config RedisRateLimitConfig
}

// NewRedisRateLimiter creates a new RedisRateLimiter.
func NewRedisRateLimiter(client *redis.Client, config RedisRateLimitConfig) *RedisRateLimiter {
	return &RedisRateLimiter{
		redis:  client,
		config: config,
	}
}

// Middleware enforces the limit. When Redis is unreachable the request is
// let through and the failure is logged.
func (rl *RedisRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.FromContext(c).Warn("rate limit check failed", zap.Error(err))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(max(1, int(time.Until(resetTime).Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"erro": tooManyRequests})
			return
		}

		c.Next()
	}
}

// IsAllowed counts one request for client in the current window.
// Returns: allowed, remaining requests, reset time, error
func (rl *RedisRateLimiter) IsAllowed(ctx context.Context, client string) (bool, int, time.Time, error) {
	windowStart := time.Now().Truncate(rl.config.Window)
	key := rl.windowKey(client, windowStart)

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := max(0, rl.config.Limit-count)

	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

func (rl *RedisRateLimiter) windowKey(client string, windowStart time.Time) string {
	return fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, client, windowStart.Unix())
}
