package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the client backing the notification job queue and its DLQ.
// Every worker goroutine parks a connection in BRPOP, so the pool is sized
// from the worker count with headroom for the dispatcher and health probes.
func NewRedis(redisURL string, workers int) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: url invalida: %w", err)
	}
	opts.ClientName = "gestionguias-api"
	if min := workers + 4; opts.PoolSize < min {
		opts.PoolSize = min
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return rdb, nil
}
