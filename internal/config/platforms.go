package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadPlatformsConfig reads platforms.yaml from PLATFORMS_CONFIG_PATH
// (default configs/platforms.yaml). A missing file is not an error: every
// setting has a default, and most deployments never override them.
func LoadPlatformsConfig() (*PlatformsConfig, error) {
	path := os.Getenv("PLATFORMS_CONFIG_PATH")
	if path == "" {
		path = "configs/platforms.yaml"
	}

	var cfg PlatformsConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PlatformsConfig) {
	if cfg.FakeStore.BaseURL == "" {
		cfg.FakeStore.BaseURL = "https://fakestoreapi.com"
	}
	if cfg.FakeStore.TimeoutSeconds == 0 {
		cfg.FakeStore.TimeoutSeconds = 5
	}
	if cfg.FakeStore.MaxResults == 0 {
		cfg.FakeStore.MaxResults = 10
	}
}

func (c *PlatformsConfig) Validate() error {
	if c.FakeStore.TimeoutSeconds < 0 {
		return fmt.Errorf("fakestore.timeout_seconds must not be negative, got %d", c.FakeStore.TimeoutSeconds)
	}
	if c.FakeStore.MaxResults < 0 {
		return fmt.Errorf("fakestore.max_results must not be negative, got %d", c.FakeStore.MaxResults)
	}
	return nil
}
