package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/Govind-619/CorpSite/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more request for key fits in the current window
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed window counter stored in Redis
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRedisLimiter connects to redisURL and allows limit requests per window
func NewRedisLimiter(redisURL string, limit int, window time.Duration) (*RedisLimiter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	utils.LogInfo("Redis rate limiter connected - Limit: %d per %s", limit, window)
	return &RedisLimiter{client: client, limit: int64(limit), window: window}, nil
}

// incrWindow bumps a window counter and sets its TTL in one atomic step,
// so a counter can never be left without an expiry.
var incrWindow = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

func (l *RedisLimiter) windowKey(key string, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", key, now.Unix()/int64(l.window.Seconds()))
}

// Allow increments the window counter for key and reports whether it is within the limit
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := incrWindow.Run(ctx, l.client, []string{l.windowKey(key, time.Now())}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return count <= l.limit, nil
}

// Close releases the Redis connection
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}

// RateLimit rejects requests over the limiter's budget with 429.
// Limiter errors let the request through.
func RateLimit(limiter Limiter, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := prefix + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			utils.LogError("Rate limiter unavailable for %s: %v", key, err)
			c.Next()
			return
		}
		if !allowed {
			utils.LogInfo("Rate limit exceeded - Key: %s, Path: %s", key, c.Request.URL.Path)
			utils.TooManyRequests(c, "Too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
