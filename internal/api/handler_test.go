package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/cache"
	"github.com/shoply/shoply-backend/internal/config"
	"github.com/shoply/shoply-backend/internal/engine"
	"github.com/shoply/shoply-backend/internal/models"
	"github.com/shoply/shoply-backend/internal/platform"
)

// newTestContainer wires a full stack with only the MockBlinkit adapter
// enabled, backed by an in-process cache.
func newTestContainer(t *testing.T) *restful.Container {
	t.Helper()
	logger := zerolog.Nop()

	cfg := &config.PlatformsConfig{
		FakeStore: config.FakeStoreConfig{
			BaseURL:        "http://127.0.0.1:1",
			TimeoutSeconds: 1,
			MaxResults:     10,
		},
	}
	registry := platform.NewRegistry([]models.PlatformKey{models.PlatformMockBlinkit}, cfg, &logger)
	store := cache.NewMemory(120*time.Second, 100)
	eng := engine.New(store, registry, engine.Options{}, &logger)

	handler := NewHandler(eng, registry, store, &logger)
	container := restful.NewContainer()
	RegisterRoutes(container, handler)
	return container
}

func doRequest(t *testing.T, container *restful.Container, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	container := newTestContainer(t)

	rec := doRequest(t, container, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var health HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("expected status ok, got %q", health.Status)
	}
	if health.Cache.TTLSeconds != 120 {
		t.Errorf("expected cache ttl 120, got %d", health.Cache.TTLSeconds)
	}
}

func TestPlatformsEndpoint(t *testing.T) {
	container := newTestContainer(t)

	rec := doRequest(t, container, "/api/v1/platforms")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var platforms PlatformsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &platforms); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(platforms.Platforms) != 1 || platforms.Platforms[0].Key != models.PlatformMockBlinkit {
		t.Errorf("expected only MockBlinkit enabled, got %+v", platforms.Platforms)
	}
}

func TestSearchEndpoint(t *testing.T) {
	container := newTestContainer(t)

	rec := doRequest(t, container, "/api/v1/search?q=milk&lat=0&lon=0")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Query != "milk" {
		t.Errorf("expected query echoed back, got %q", response.Query)
	}
	if response.Location == nil || response.Location.Lat != 0 || response.Location.Lon != 0 {
		t.Errorf("expected location echoed back, got %+v", response.Location)
	}
	if len(response.Results) != 1 {
		t.Fatalf("expected 1 platform result, got %d", len(response.Results))
	}
	result := response.Results[0]
	if result.Platform != models.PlatformMockBlinkit || result.NotAvailable {
		t.Errorf("expected available MockBlinkit result, got %+v", result)
	}
	if len(result.Items) != 2 {
		t.Errorf("expected 2 offers, got %d", len(result.Items))
	}
}

func TestSearchEndpoint_SecondCallServedFromCache(t *testing.T) {
	container := newTestContainer(t)

	first := doRequest(t, container, "/api/v1/search?q=milk&lat=0&lon=0")
	second := doRequest(t, container, "/api/v1/search?q=milk&lat=0&lon=0")
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("expected both calls to succeed, got %d and %d", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Error("expected identical payloads for a repeated request")
	}
}

func TestSearchEndpoint_MissingQuery(t *testing.T) {
	container := newTestContainer(t)

	rec := doRequest(t, container, "/api/v1/search")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without q, got %d", rec.Code)
	}
}

func TestSearchEndpoint_LatWithoutLon(t *testing.T) {
	container := newTestContainer(t)

	rec := doRequest(t, container, "/api/v1/search?q=milk&lat=12.9")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for lat without lon, got %d", rec.Code)
	}
}

func TestSearchEndpoint_InvalidLatitude(t *testing.T) {
	container := newTestContainer(t)

	rec := doRequest(t, container, "/api/v1/search?q=milk&lat=991&lon=0")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an out-of-range latitude, got %d", rec.Code)
	}
}

func TestSearchEndpoint_NoLocationMeansNoMockBlinkit(t *testing.T) {
	container := newTestContainer(t)

	rec := doRequest(t, container, "/api/v1/search?q=milk")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Results) != 1 || !response.Results[0].NotAvailable {
		t.Errorf("expected MockBlinkit to be notAvailable without a location, got %+v", response.Results)
	}
}

func TestSearchEndpoint_PlatformSubset(t *testing.T) {
	container := newTestContainer(t)

	// Zepto is not enabled, so restricting to it yields an empty result set.
	rec := doRequest(t, container, "/api/v1/search?q=milk&platforms=Zepto")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Results) != 0 {
		t.Errorf("expected no results for a disabled platform subset, got %+v", response.Results)
	}
}
