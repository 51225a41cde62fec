package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"schoollunch/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

var _ ports.Cache = (*JSONCache)(nil)

// JSONCache stores values as JSON strings under a common key prefix.
type JSONCache struct {
	client goredis.UniversalClient
	prefix string
}

func NewJSONCache(client goredis.UniversalClient, prefix string) *JSONCache {
	return &JSONCache{client: client, prefix: prefix}
}

func (c *JSONCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *JSONCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.client.Set(ctx, c.key(key), raw, ttl).Err()
}

func (c *JSONCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

func (c *JSONCache) key(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

// NoopCache never hits.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, any) (bool, error)       { return false, nil }
func (NoopCache) Set(context.Context, string, any, time.Duration) error { return nil }
func (NoopCache) Delete(context.Context, string) error                  { return nil }
