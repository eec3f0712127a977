package branch

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps the full branch list between ranking requests. Distances are never cached:
// they depend on the caller's origin.
type Cache interface {
	GetBranches(ctx context.Context) ([]Branch, bool, error)
	SetBranches(ctx context.Context, branches []Branch) error
	Invalidate(ctx context.Context) error
}

const branchesKey = "cache:branches"

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetBranches(ctx context.Context) ([]Branch, bool, error) {
	data, err := c.client.Get(ctx, branchesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var branches []Branch
	if err := json.Unmarshal(data, &branches); err != nil {
		return nil, false, err
	}
	return branches, true, nil
}

func (c *RedisCache) SetBranches(ctx context.Context, branches []Branch) error {
	payload, err := json.Marshal(branches)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, branchesKey, payload, c.ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, branchesKey).Err()
}

var _ Cache = (*RedisCache)(nil)
