package setup

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/models"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"SHOPLY_API_PORT", "LOG_LEVEL", "ENABLED_PLATFORMS", "CACHE_TTL_SECONDS",
		"CACHE_MAX_ENTRIES", "CACHE_BACKEND", "AFFILIATE_MODE", "SEARCH_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	want := []models.PlatformKey{models.PlatformFakeStore, models.PlatformMockBlinkit}
	if len(cfg.EnabledPlatforms) != 2 || cfg.EnabledPlatforms[0] != want[0] || cfg.EnabledPlatforms[1] != want[1] {
		t.Errorf("unexpected default enabled platforms: %v", cfg.EnabledPlatforms)
	}
	if cfg.CacheTTLSeconds != 120 {
		t.Errorf("expected default ttl 120, got %d", cfg.CacheTTLSeconds)
	}
	if cfg.CacheBackend != "memory" {
		t.Errorf("expected default backend memory, got %q", cfg.CacheBackend)
	}
	if cfg.AffiliateMode != "disabled" {
		t.Errorf("expected affiliate disabled by default, got %q", cfg.AffiliateMode)
	}
	if cfg.SearchTimeoutSeconds != 8 {
		t.Errorf("expected default search timeout 8, got %d", cfg.SearchTimeoutSeconds)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SHOPLY_API_PORT", "9090")
	t.Setenv("ENABLED_PLATFORMS", "MockBlinkit")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("AFFILIATE_MODE", "Enabled")
	t.Setenv("CACHE_BACKEND", "redis")

	cfg := LoadConfig()
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if len(cfg.EnabledPlatforms) != 1 || cfg.EnabledPlatforms[0] != models.PlatformMockBlinkit {
		t.Errorf("unexpected enabled platforms: %v", cfg.EnabledPlatforms)
	}
	if cfg.CacheTTLSeconds != 30 {
		t.Errorf("expected ttl 30, got %d", cfg.CacheTTLSeconds)
	}
	if cfg.AffiliateMode != "enabled" {
		t.Errorf("expected affiliate mode lowercased, got %q", cfg.AffiliateMode)
	}
	if cfg.CacheBackend != "redis" {
		t.Errorf("expected redis backend, got %q", cfg.CacheBackend)
	}
}

func TestLoadConfig_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "not-a-number")

	cfg := LoadConfig()
	if cfg.CacheTTLSeconds != 120 {
		t.Errorf("expected fallback ttl 120, got %d", cfg.CacheTTLSeconds)
	}
}

func TestWire_MemoryBackend(t *testing.T) {
	t.Setenv("PLATFORMS_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	logger := zerolog.Nop()
	cfg := &Config{
		EnabledPlatforms: []models.PlatformKey{models.PlatformMockBlinkit},
		CacheTTLSeconds:  60,
		CacheBackend:     "memory",
	}

	deps, err := Wire(context.Background(), cfg, &logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deps.Engine == nil || deps.Registry == nil || deps.Cache == nil {
		t.Error("expected all dependencies to be wired")
	}

	stats := deps.Cache.Stats(context.Background())
	if stats.TTLSeconds != 60 {
		t.Errorf("expected cache ttl 60, got %d", stats.TTLSeconds)
	}
}

func TestWire_UnknownBackend(t *testing.T) {
	t.Setenv("PLATFORMS_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	logger := zerolog.Nop()
	cfg := &Config{
		EnabledPlatforms: []models.PlatformKey{models.PlatformMockBlinkit},
		CacheBackend:     "memcached",
	}

	if _, err := Wire(context.Background(), cfg, &logger); err == nil {
		t.Error("expected an error for an unsupported cache backend")
	}
}
