package throttler

import (
	"time"

	"polyglot/sources/platform"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type ThrottlerConfig struct {
	Limit   time.Duration
	Backend string
}

func NewThrottlerConfig() *ThrottlerConfig {
	return &ThrottlerConfig{
		Limit:   platform.GetAsDuration("THROTTLER_LIMIT", "2s"),
		Backend: platform.Get("THROTTLER_BACKEND", BackendMemory),
	}
}
