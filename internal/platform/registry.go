package platform

import (
	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/config"
	"github.com/shoply/shoply-backend/internal/models"
)

// Registry holds the exhaustive static adapter list, one adapter per known
// platform key, plus the environment-driven enabled subset. It is built once
// at startup and read-only afterwards.
type Registry struct {
	adapters []Adapter
	enabled  map[models.PlatformKey]bool
}

// NewRegistry builds an adapter for every key in models.AllPlatformKeys, in
// that order. Platforms without a live or simulated implementation get a
// stub, so the closed set stays covered.
func NewRegistry(enabledKeys []models.PlatformKey, cfg *config.PlatformsConfig, logger *zerolog.Logger) *Registry {
	enabled := make(map[models.PlatformKey]bool, len(enabledKeys))
	for _, key := range enabledKeys {
		enabled[key] = true
	}

	adapters := make([]Adapter, 0, len(models.AllPlatformKeys))
	for _, key := range models.AllPlatformKeys {
		switch key {
		case models.PlatformFakeStore:
			adapters = append(adapters, NewFakeStore(cfg.FakeStore, logger))
		case models.PlatformMockBlinkit:
			adapters = append(adapters, NewMockBlinkit())
		default:
			adapters = append(adapters, NewStub(key))
		}
	}

	logger.Info().
		Int("total_platforms", len(adapters)).
		Int("enabled", len(enabledKeys)).
		Msg("platform registry built")

	return &Registry{adapters: adapters, enabled: enabled}
}

// EnabledAdapters returns the enabled adapters in registry declaration
// order. The engine relies on this order for its result sequence.
func (r *Registry) EnabledAdapters() []Adapter {
	out := make([]Adapter, 0, len(r.adapters))
	for _, a := range r.adapters {
		if r.enabled[a.Key()] {
			out = append(out, a)
		}
	}
	return out
}

// EnabledPlatforms returns the keys present in both the registry and the
// enabled configuration, for discovery.
func (r *Registry) EnabledPlatforms() []models.PlatformInfo {
	infos := make([]models.PlatformInfo, 0, len(r.adapters))
	for _, a := range r.adapters {
		if r.enabled[a.Key()] {
			infos = append(infos, models.PlatformInfo{Key: a.Key()})
		}
	}
	return infos
}
