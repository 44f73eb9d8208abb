package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/cache"
	"github.com/shoply/shoply-backend/internal/config"
	"github.com/shoply/shoply-backend/internal/engine"
	"github.com/shoply/shoply-backend/internal/models"
	"github.com/shoply/shoply-backend/internal/platform"
)

type Config struct {
	Port                 string
	LogLevel             string
	EnabledPlatforms     []models.PlatformKey
	CacheTTLSeconds      int
	CacheMaxEntries      int
	CacheBackend         string
	RedisAddr            string
	RedisPassword        string
	AffiliateMode        string
	SearchTimeoutSeconds int
}

type Dependencies struct {
	Engine   *engine.Engine
	Registry *platform.Registry
	Cache    cache.Store
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:                 getEnv("SHOPLY_API_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		EnabledPlatforms:     models.ParsePlatformList(getEnv("ENABLED_PLATFORMS", "FakeStore,MockBlinkit")),
		CacheTTLSeconds:      getEnvInt("CACHE_TTL_SECONDS", 120),
		CacheMaxEntries:      getEnvInt("CACHE_MAX_ENTRIES", cache.DefaultMaxEntries),
		CacheBackend:         getEnv("CACHE_BACKEND", "memory"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		AffiliateMode:        strings.ToLower(getEnv("AFFILIATE_MODE", "disabled")),
		SearchTimeoutSeconds: getEnvInt("SEARCH_TIMEOUT_SECONDS", 8),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	platformsCfg, err := config.LoadPlatformsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load platforms config: %w", err)
	}

	registry := platform.NewRegistry(cfg.EnabledPlatforms, platformsCfg, logger)

	store, err := createCache(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	eng := engine.New(store, registry, engine.Options{
		AffiliateEnabled: cfg.AffiliateMode == "enabled",
		AdapterTimeout:   time.Duration(cfg.SearchTimeoutSeconds) * time.Second,
	}, logger)

	return &Dependencies{
		Engine:   eng,
		Registry: registry,
		Cache:    store,
		Logger:   logger,
	}, nil
}

func createCache(ctx context.Context, cfg *Config, logger *zerolog.Logger) (cache.Store, error) {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second

	switch cfg.CacheBackend {
	case "", "memory":
		return cache.NewMemory(ttl, cfg.CacheMaxEntries), nil
	case "redis":
		client, err := cache.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5, logger)
		if err != nil {
			return nil, err
		}
		return cache.NewRedis(client, ttl, logger), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.CacheBackend)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
