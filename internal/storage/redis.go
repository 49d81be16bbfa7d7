package storage

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisOptions accepts either a redis:// URL or a bare host:port.
func RedisOptions(raw string) (*redis.Options, error) {
	if strings.Contains(raw, "://") {
		return redis.ParseURL(raw)
	}
	return &redis.Options{Addr: raw}, nil
}

func NewRedis(ctx context.Context, raw string) (*redis.Client, error) {
	opts, err := RedisOptions(raw)
	if err != nil {
		return nil, fmt.Errorf("redis: parse %q: %w", raw, err)
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", opts.Addr, err)
	}

	log.Println("redis connected:", opts.Addr)
	return rdb, nil
}
