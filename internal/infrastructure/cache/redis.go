package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis connects the client backing the idempotency store. The ping
// bounds startup so a bad REDIS_ADDR fails fast instead of on first request.
func OpenRedis(addr string, database int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: database})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return r, nil
}
