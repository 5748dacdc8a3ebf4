package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"dinner-club/internal/handler/middleware"
	"dinner-club/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const rateLimitWindow = time.Minute

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewLimiter,
	),
)

// NewLimiter shares counters across instances through Redis when REDIS_ADDR
// is set; otherwise each process limits on its own.
func NewLimiter(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (middleware.Limiter, error) {
	perMinute := cfg.Redis.RateLimitPerMinute
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR not set, using in-process rate limiter", "per_minute", perMinute)
		return middleware.NewLocalLimiter(perMinute, rateLimitWindow), nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return middleware.NewRedisLimiter(rdb, "dinner-club:rl", perMinute, rateLimitWindow), nil
}
