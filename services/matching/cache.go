package matching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"raisedesk/models"

	"github.com/go-redis/redis/v8"
)

const (
	cacheKeyPrefix = "match:"
	generationKey  = "match:gen"
)

// MatchCache stores computed match sets per investor, partitioned by generation.
// Callers read the generation before loading records and pass it to Get and Set,
// so a result computed before an Invalidate is never visible after it.
type MatchCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, investorID string) ([]models.Client, bool, error)
	Set(ctx context.Context, gen int64, investorID string, clients []models.Client) error
	// Invalidate starts a new generation and drops the old entries.
	Invalidate(ctx context.Context) error
}

type RedisMatchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMatchCache(client *redis.Client, ttl time.Duration) *RedisMatchCache {
	return &RedisMatchCache{client: client, ttl: ttl}
}

func matchKey(gen int64, investorID string) string {
	return fmt.Sprintf("%s%d:%s", cacheKeyPrefix, gen, investorID)
}

func (c *RedisMatchCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read match cache generation: %w", err)
	}
	return gen, nil
}

func (c *RedisMatchCache) Get(ctx context.Context, gen int64, investorID string) ([]models.Client, bool, error) {
	raw, err := c.client.Get(ctx, matchKey(gen, investorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read match cache: %w", err)
	}
	var clients []models.Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return nil, false, fmt.Errorf("corrupt match cache entry for %s: %w", investorID, err)
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return clients, true, nil
}

func (c *RedisMatchCache) Set(ctx context.Context, gen int64, investorID string, clients []models.Client) error {
	data, err := json.Marshal(clients)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, matchKey(gen, investorID), data, c.ttl).Err()
}

// Invalidate bumps the generation first; deleting the old keys is cleanup only.
func (c *RedisMatchCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("failed to bump match cache generation: %w", err)
	}
	iter := c.client.Scan(ctx, 0, cacheKeyPrefix+"[0-9]*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan match cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// NoopCache is used when Redis is not configured.
type NoopCache struct{}

func (NoopCache) Generation(context.Context) (int64, error) { return 0, nil }
func (NoopCache) Get(context.Context, int64, string) ([]models.Client, bool, error) {
	return nil, false, nil
}
func (NoopCache) Set(context.Context, int64, string, []models.Client) error { return nil }
func (NoopCache) Invalidate(context.Context) error                          { return nil }
