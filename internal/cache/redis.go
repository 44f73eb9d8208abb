package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/models"
)

const redisKeyPrefix = "shoply:search:"

// Redis is a Store backed by a shared redis instance, for deployments where
// several aggregator replicas should share one result cache. Values are
// JSON-encoded and expire server-side via the TTL on Set.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *zerolog.Logger) *Redis {
	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) Get(ctx context.Context, key string) ([]models.PlatformResult, bool) {
	payload, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn().Err(err).Msg("redis cache read failed")
		}
		return nil, false
	}

	var results []models.PlatformResult
	if err := json.Unmarshal(payload, &results); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("corrupt cache payload, dropping")
		r.client.Del(ctx, redisKeyPrefix+key)
		return nil, false
	}
	return results, true
}

// Set is best-effort: the cache fronting the engine must never turn a
// successful aggregation into a failure.
func (r *Redis) Set(ctx context.Context, key string, value []models.PlatformResult) {
	payload, err := json.Marshal(value)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to encode cache entry")
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, payload, r.ttl).Err(); err != nil {
		r.logger.Warn().Err(err).Msg("redis cache write failed")
	}
}

// Stats counts keys server-side. Redis expires entries itself, so every
// stored key is active.
func (r *Redis) Stats(ctx context.Context) models.CacheStats {
	total := 0
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, redisKeyPrefix+"*", 100).Result()
		if err != nil {
			r.logger.Warn().Err(err).Msg("redis cache scan failed")
			break
		}
		total += len(keys)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return models.CacheStats{
		TotalKeys:  total,
		ActiveKeys: total,
		TTLSeconds: int(r.ttl.Seconds()),
	}
}

// ConnectRedis dials redis with exponential backoff between attempts.
func ConnectRedis(ctx context.Context, addr string, password string, maxRetries int, logger *zerolog.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              0,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	})

	var err error
	for i := range maxRetries {
		if i > 0 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			logger.Info().Dur("backoff", backoff).Msg("Waiting before Redis retry")
			time.Sleep(backoff)
		}

		logger.Info().Int("attempt", i+1).Int("max_retries", maxRetries).Msg("Connecting to Redis")

		err = client.Ping(ctx).Err()
		if err == nil {
			logger.Info().Int("attempts_needed", i+1).Msg("Redis connected")
			return client, nil
		}

		logger.Warn().Err(err).Int("attempt", i+1).Msg("Redis ping failed")
	}

	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxRetries, err)
}
