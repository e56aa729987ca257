package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	namePrefix = "n:"
	tombstone  = "deleted"
)

type RedisRoomCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisRoomCache connects to the Redis instance at url (redis://...) and
// checks it with a PING.
func NewRedisRoomCache(url, password, prefix string, ttl time.Duration) (*RedisRoomCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisRoomCacheWithClient(client, prefix, ttl), nil
}

func NewRedisRoomCacheWithClient(client *redis.Client, prefix string, ttl time.Duration) *RedisRoomCache {
	return &RedisRoomCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisRoomCache) key(secretCode string) string {
	return fmt.Sprintf("%s:%s", c.prefix, secretCode)
}

func (c *RedisRoomCache) GetChatName(ctx context.Context, secretCode string) (string, error) {
	val, err := c.client.Get(ctx, c.key(secretCode)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	name, ok := strings.CutPrefix(val, namePrefix)
	if !ok {
		return "", ErrCacheMiss
	}
	return name, nil
}

// SetChatName stores the name unless the key is taken, by a live entry or by
// a tombstone left by Invalidate.
func (c *RedisRoomCache) SetChatName(ctx context.Context, secretCode, chatName string) error {
	if err := c.client.SetNX(ctx, c.key(secretCode), namePrefix+chatName, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}
	return nil
}

// Invalidate replaces any entry with a tombstone living one TTL.
func (c *RedisRoomCache) Invalidate(ctx context.Context, secretCode string) error {
	if err := c.client.Set(ctx, c.key(secretCode), tombstone, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to invalidate in redis: %w", err)
	}
	return nil
}

func (c *RedisRoomCache) Close() error {
	return c.client.Close()
}
