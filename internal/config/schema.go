package config

// PlatformsConfig holds adapter-level settings loaded from platforms.yaml.
// Platform enablement itself is environment-driven; this file only tunes the
// adapters that need tuning.
type PlatformsConfig struct {
	FakeStore FakeStoreConfig `yaml:"fakestore"`
}

// FakeStoreConfig configures the live FakeStore adapter.
type FakeStoreConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxResults     int    `yaml:"max_results"`
}
