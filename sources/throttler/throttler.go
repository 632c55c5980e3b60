package throttler

import (
	"polyglot/sources/tracing"

	"github.com/redis/go-redis/v9"
)

// Throttler decides whether a translation request from a user in a chat is
// allowed yet. An allowed check starts the cooldown immediately, whether or
// not the rest of the pipeline succeeds.
type Throttler interface {
	IsAllowed(log *tracing.Logger, userID, chatID int64) bool
}

func NewThrottler(config *ThrottlerConfig, client *redis.Client, log *tracing.Logger) Throttler {
	if config.Backend == BackendRedis {
		log.I("Throttler initialized", "backend", BackendRedis, "limit", config.Limit.String())
		return NewRedisThrottler(client, config, log)
	}

	log.I("Throttler initialized", "backend", BackendMemory, "limit", config.Limit.String())
	return NewMemoryThrottler(config)
}
