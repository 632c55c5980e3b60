package persistence

import (
	"context"

	"polyglot/sources/tracing"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var Module = fx.Module("persistence",
	fx.Provide(
		NewRedisConfig, NewRedis,
	),

	fx.Invoke(func(rdb *redis.Client, lc fx.Lifecycle, log *tracing.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				// Redis backs only the optional throttler backend, so an
				// unreachable instance must not block startup.
				if err := rdb.Ping(ctx).Err(); err != nil {
					log.W("Redis is unreachable, redis-backed throttling will fail open", tracing.InnerError, err)
				} else {
					log.I("Redis connection verified")
				}
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.I("Closing redis connection")
				return rdb.Close()
			},
		})
	}),
)
