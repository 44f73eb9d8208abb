package stream

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/cache"
	"github.com/shoply/shoply-backend/internal/engine"
	"github.com/shoply/shoply-backend/internal/stream/redis"
)

type StreamConfig struct {
	Provider    string // redis for now; kafka, sqs, etc later
	RedisConfig *redis.RedisStreamConfig
}

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	eng *engine.Engine,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fall back to the default.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := cache.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			5,
			logger,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(
			client,
			cfg.RedisConfig.Stream,
			cfg.RedisConfig.Group,
			cfg.RedisConfig.ConsumerName,
			eng,
			logger,
		), nil

	// Future providers:
	// case "kafka":
	//     return kafka.NewConsumer(...)

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
