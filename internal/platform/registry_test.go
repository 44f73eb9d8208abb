package platform

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/config"
	"github.com/shoply/shoply-backend/internal/models"
)

func newTestRegistry(t *testing.T, enabled []models.PlatformKey) *Registry {
	t.Helper()
	logger := zerolog.Nop()
	cfg := &config.PlatformsConfig{
		FakeStore: config.FakeStoreConfig{
			BaseURL:        "https://fakestoreapi.com",
			TimeoutSeconds: 5,
			MaxResults:     10,
		},
	}
	return NewRegistry(enabled, cfg, &logger)
}

func TestRegistry_CoversAllKnownPlatforms(t *testing.T) {
	registry := newTestRegistry(t, models.AllPlatformKeys)

	adapters := registry.EnabledAdapters()
	if len(adapters) != len(models.AllPlatformKeys) {
		t.Fatalf("expected %d adapters, got %d", len(models.AllPlatformKeys), len(adapters))
	}
	for i, key := range models.AllPlatformKeys {
		if adapters[i].Key() != key {
			t.Errorf("adapter %d: expected key %q, got %q", i, key, adapters[i].Key())
		}
	}
}

func TestRegistry_EnablementFiltering(t *testing.T) {
	registry := newTestRegistry(t, []models.PlatformKey{models.PlatformMockBlinkit})

	adapters := registry.EnabledAdapters()
	if len(adapters) != 1 || adapters[0].Key() != models.PlatformMockBlinkit {
		t.Errorf("expected only MockBlinkit enabled, got %d adapters", len(adapters))
	}
}

func TestRegistry_UnknownEnabledKeyIsIgnored(t *testing.T) {
	registry := newTestRegistry(t, []models.PlatformKey{"NotAPlatform", models.PlatformFakeStore})

	adapters := registry.EnabledAdapters()
	if len(adapters) != 1 || adapters[0].Key() != models.PlatformFakeStore {
		t.Errorf("expected the unknown key to match nothing, got %d adapters", len(adapters))
	}
}

func TestRegistry_DeclarationOrderSurvivesEnablementOrder(t *testing.T) {
	// Enabled list names MockBlinkit first, registry order must still win.
	registry := newTestRegistry(t, []models.PlatformKey{models.PlatformMockBlinkit, models.PlatformFakeStore})

	adapters := registry.EnabledAdapters()
	if len(adapters) != 2 {
		t.Fatalf("expected 2 adapters, got %d", len(adapters))
	}
	if adapters[0].Key() != models.PlatformFakeStore || adapters[1].Key() != models.PlatformMockBlinkit {
		t.Errorf("expected declaration order FakeStore, MockBlinkit; got %q, %q",
			adapters[0].Key(), adapters[1].Key())
	}
}

func TestRegistry_EnabledPlatforms(t *testing.T) {
	registry := newTestRegistry(t, []models.PlatformKey{models.PlatformFakeStore, models.PlatformZepto})

	infos := registry.EnabledPlatforms()
	if len(infos) != 2 {
		t.Fatalf("expected 2 platform infos, got %d", len(infos))
	}
	if infos[0].Key != models.PlatformFakeStore || infos[1].Key != models.PlatformZepto {
		t.Errorf("unexpected platform infos: %+v", infos)
	}
}

func TestStub_AlwaysUnavailable(t *testing.T) {
	stub := NewStub(models.PlatformZepto)

	if stub.Key() != models.PlatformZepto {
		t.Errorf("expected key %q, got %q", models.PlatformZepto, stub.Key())
	}
	result := stub.Search(context.Background(), models.SearchRequest{
		Query:    "milk",
		Location: &models.Location{Lat: 0, Lon: 0},
	})
	if !result.NotAvailable {
		t.Error("expected stub to report notAvailable")
	}
	if len(result.Items) != 0 {
		t.Errorf("expected no items, got %d", len(result.Items))
	}
}
