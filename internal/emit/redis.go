// internal/emit/redis.go
package emit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultRedisPrefix namespaces fixture keys.
	DefaultRedisPrefix = "fixtures:"

	RedisSinkName = "redis"
)

// ConnectRedis creates a client for addr and verifies it answers a PING.
func ConnectRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// RedisSink stores each fixture under <Prefix><name> so servers under test
// can load them without touching the file system.
type RedisSink struct {
	client redis.Cmdable
	prefix string
}

// NewRedisSink returns a sink on client. An empty prefix means DefaultRedisPrefix.
func NewRedisSink(client redis.Cmdable, prefix string) *RedisSink {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisSink{client: client, prefix: prefix}
}

func (s *RedisSink) Name() string {
	return RedisSinkName
}

// Key returns the redis key a fixture is stored under.
func (s *RedisSink) Key(name string) string {
	return s.prefix + name
}

func (s *RedisSink) Write(ctx context.Context, name string, text []byte) error {
	if err := s.client.Set(ctx, s.Key(name), text, 0).Err(); err != nil {
		return fmt.Errorf("failed to SET '%s': %w", s.Key(name), err)
	}
	return nil
}
