package throttler

import (
	"sync"
	"time"

	"polyglot/sources/tracing"
)

type throttleKey struct {
	userID int64
	chatID int64
}

// MemoryThrottler tracks the last allowed request per (user, chat) pair in
// process memory. Entries are kept for the process lifetime.
type MemoryThrottler struct {
	mu    sync.Mutex
	last  map[throttleKey]time.Time
	limit time.Duration
}

func NewMemoryThrottler(config *ThrottlerConfig) *MemoryThrottler {
	return &MemoryThrottler{
		last:  make(map[throttleKey]time.Time),
		limit: config.Limit,
	}
}

func (x *MemoryThrottler) IsAllowed(log *tracing.Logger, userID, chatID int64) bool {
	return x.isAllowedAt(userID, chatID, time.Now())
}

// isAllowedAt records now as the new timestamp when the request is allowed.
// A blocked request leaves the stored timestamp untouched, so hammering the
// bot does not extend the cooldown.
func (x *MemoryThrottler) isAllowedAt(userID, chatID int64, now time.Time) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	key := throttleKey{userID: userID, chatID: chatID}
	if last, ok := x.last[key]; ok && now.Sub(last) < x.limit {
		return false
	}

	x.last[key] = now
	return true
}
