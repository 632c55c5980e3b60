package throttler

import (
	"context"
	"fmt"
	"time"

	"polyglot/sources/platform"
	"polyglot/sources/tracing"

	"github.com/redis/go-redis/v9"
)

// RedisThrottler keys cooldowns in redis with a TTL equal to the limit, so
// state survives restarts and can be shared between replicas.
type RedisThrottler struct {
	client *redis.Client
	config *ThrottlerConfig
	log    *tracing.Logger
	ctx    context.Context
}

func NewRedisThrottler(client *redis.Client, config *ThrottlerConfig, log *tracing.Logger) *RedisThrottler {
	ctx := context.Background()
	return &RedisThrottler{client: client, config: config, log: log, ctx: ctx}
}

func (x *RedisThrottler) IsAllowed(log *tracing.Logger, userID, chatID int64) bool {
	ctx, cancel := platform.ContextTimeout(x.ctx)
	defer cancel()

	key := fmt.Sprintf("throttle:%d:%d", userID, chatID)

	success, err := x.client.SetNX(ctx, key, time.Now().Unix(), x.config.Limit).Result()
	if err != nil {
		log.E("Error setting throttle key", tracing.InnerError, err)
		return true
	}

	return success
}
