package middleware

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"dinner-club/internal/handler/httperr"
	"dinner-club/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// Decision is the limiter's verdict for one request.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// fixed window: the first hit in a window sets the expiry
var fixedWindowScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
return { count, ttl }
`)

type RedisLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	vals, err := fixedWindowScript.Run(ctx, l.rdb, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, errs.Wrap(err, "rate limit script")
	}
	if len(vals) != 2 {
		return Decision{}, errs.New("unexpected rate limit script result")
	}

	count, ttl := int(vals[0]), time.Duration(vals[1])*time.Millisecond
	if ttl < 0 {
		ttl = l.window
	}
	return Decision{
		Allowed:    count <= l.limit,
		Limit:      l.limit,
		Remaining:  max(l.limit-count, 0),
		RetryAfter: ttl,
	}, nil
}

// LocalLimiter is the single-process fallback used when no Redis is configured.
// A key idle for a full window has refilled its bucket, so it is dropped and
// recreated on its next hit.
type LocalLimiter struct {
	mu        sync.Mutex
	entries   map[string]*localEntry
	limit     int
	window    time.Duration
	every     rate.Limit
	lastSweep time.Time
	now       func() time.Time
}

type localEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	return &LocalLimiter{
		entries: make(map[string]*localEntry),
		limit:   limit,
		window:  window,
		every:   rate.Every(window / time.Duration(max(limit, 1))),
		now:     time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	l.sweep(now)
	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{lim: rate.NewLimiter(l.every, l.limit)}
		l.entries[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	r := e.lim.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	if delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, Limit: l.limit, RetryAfter: delay}, nil
	}
	return Decision{
		Allowed:   true,
		Limit:     l.limit,
		Remaining: max(int(math.Floor(e.lim.TokensAt(now))), 0),
	}, nil
}

// sweep runs at most once per window; callers hold mu.
func (l *LocalLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) >= l.window {
			delete(l.entries, key)
		}
	}
}

func (l *LocalLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// RateLimit keys on route and client IP. Limiter failures let the request
// through.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + ":" + c.ClientIP()

		d, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

		if !d.Allowed {
			secs := int(math.Ceil(d.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			resp := httperr.NewResponse(http.StatusTooManyRequests, "", "Too many requests, please try again later",
				map[string]any{"retryAfter": secs})
			httperr.AbortResponse(c, errRateLimited, resp)
			return
		}
		c.Next()
	}
}
