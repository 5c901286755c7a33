package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/platform/obs"
)

const planKeyPrefix = "dispatch:plan:"

// RedisPlanCache is a redis-backed cache of computed dispatch plans,
// keyed by scenario fingerprint. Entries expire after TTL so an
// abandoned scenario does not pin memory forever.
type RedisPlanCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{Client: client, TTL: ttl}
}

// Fetch a cached plan for the fingerprint; ok is false on a miss.
func (c *RedisPlanCache) Get(ctx context.Context, fingerprint string) (_ *domain.Plan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("plan cache: client is nil")
	}

	if fingerprint == "" {
		return nil, false, errors.New("get plan cache: fingerprint must not be empty")
	}

	raw, err := c.Client.Get(ctx, planKeyPrefix+fingerprint).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: %w", err)
	}

	var plan domain.Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, false, fmt.Errorf("get plan cache: decode cached plan: %w", err)
	}

	return &plan, true, nil
}

// Store a computed plan under the fingerprint.
func (c *RedisPlanCache) Put(ctx context.Context, fingerprint string, plan *domain.Plan) error {
	if c.Client == nil {
		return errors.New("plan cache: client is nil")
	}

	if fingerprint == "" {
		return errors.New("insert plan cache: fingerprint must not be empty")
	}
	if plan == nil {
		return errors.New("insert plan cache: plan must be non-nil")
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("insert plan cache: encode plan: %w", err)
	}

	if err := c.Client.Set(ctx, planKeyPrefix+fingerprint, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("insert plan cache: %w", err)
	}

	return nil
}
