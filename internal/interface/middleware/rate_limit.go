package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-user-lookup/pkg/response"
)

// KeyFunc builds a rate-limit key from the request
type KeyFunc func(c *gin.Context) string

// AllowFunc returns true when the request bypasses the limit
type AllowFunc func(*gin.Context) bool

// KeyByIP limits by client IP only
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:ip:" + clientIP(c)
	}
}

// KeyByIPAndPath limits by client IP and route pattern
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:path:" + normalizePath(c) + ":ip:" + clientIP(c)
	}
}

func normalizePath(c *gin.Context) string {
	if fp := c.FullPath(); fp != "" {
		return fp
	}
	return c.Request.URL.Path
}

// hit counts one request in the key's window and returns {count, pttl}.
// The window starts on the first hit.
var hitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// Limiter is a fixed-window request counter kept in redis.
type Limiter struct {
	Redis  *redis.Client
	Max    int
	Window time.Duration
}

// Usage is the state of one key after a hit.
type Usage struct {
	Count int
	Reset time.Duration
}

func NewLimiter(rdb *redis.Client, max int, window time.Duration) *Limiter {
	return &Limiter{Redis: rdb, Max: max, Window: window}
}

func (l *Limiter) enabled() bool {
	return l != nil && l.Redis != nil && l.Max > 0 && l.Window > 0
}

func (l *Limiter) Hit(ctx context.Context, key string) (Usage, error) {
	res, err := hitScript.Run(ctx, l.Redis, []string{key}, l.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Usage{}, err
	}
	u := Usage{Count: int(res[0])}
	if len(res) > 1 && res[1] > 0 {
		u.Reset = time.Duration(res[1]) * time.Millisecond
	}
	return u, nil
}

func (l *Limiter) Remaining(u Usage) int {
	if u.Count >= l.Max {
		return 0
	}
	return l.Max - u.Count
}

func (l *Limiter) Exceeded(u Usage) bool { return u.Count > l.Max }

// RateLimit answers 429 once a key goes over the limiter's budget.
// It sets X-RateLimit-Limit/Remaining/Reset (RFC 6585 section 4 style headers),
// skips OPTIONS and allowed requests, and fails open on redis errors.
// A nil or unconfigured limiter passes every request through.
func RateLimit(l *Limiter, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	if !l.enabled() || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || (allow != nil && allow(c)) {
			c.Next()
			return
		}

		u, err := l.Hit(c.Request.Context(), keyFn(c))
		if err != nil {
			c.Next()
			return
		}

		reset := strconv.Itoa(int((u.Reset + time.Second - 1) / time.Second))
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.Max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(l.Remaining(u)))
		c.Header("X-RateLimit-Reset", reset)

		if l.Exceeded(u) {
			if u.Reset > 0 {
				c.Header("Retry-After", reset)
			}
			response.Error[any](c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
