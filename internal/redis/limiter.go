package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts hits per key in windows that start at the first
// hit. Keys have the form rl:<resource>:<id>.
type FixedWindowLimiter struct {
	rdb      redis.Cmdable
	resource string
	limit    int
	window   time.Duration
}

func NewFixedWindowLimiter(rdb redis.Cmdable, resource string, limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		rdb:      rdb,
		resource: resource,
		limit:    limit,
		window:   window,
	}
}

// Allow records a hit for id and reports whether it is within the limit.
func (l *FixedWindowLimiter) Allow(ctx context.Context, id string) (bool, error) {
	key := fmt.Sprintf("rl:%s:%s", l.resource, id)

	cnt, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", key, err)
	}
	if cnt == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("expire %s: %w", key, err)
		}
	}

	return cnt <= int64(l.limit), nil
}
