package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/models"
	"github.com/shoply/shoply-backend/internal/platform"
)

const DefaultAdapterTimeout = 8 * time.Second

// Cache is the TTL store fronting the engine.
type Cache interface {
	Get(ctx context.Context, key string) ([]models.PlatformResult, bool)
	Set(ctx context.Context, key string, value []models.PlatformResult)
}

// AdapterSource yields the enabled adapters in invocation order.
type AdapterSource interface {
	EnabledAdapters() []platform.Adapter
}

type Options struct {
	AffiliateEnabled bool
	AdapterTimeout   time.Duration
}

// Engine orchestrates one aggregate search: cache lookup, concurrent
// adapter fan-out with per-adapter failure containment, affiliate
// post-processing, and cache population.
type Engine struct {
	cache    Cache
	adapters AdapterSource
	opts     Options
	logger   *zerolog.Logger
}

func New(cache Cache, adapters AdapterSource, opts Options, logger *zerolog.Logger) *Engine {
	if opts.AdapterTimeout <= 0 {
		opts.AdapterTimeout = DefaultAdapterTimeout
	}
	return &Engine{
		cache:    cache,
		adapters: adapters,
		opts:     opts,
		logger:   logger,
	}
}

// SearchAllPlatforms fans the request out over every selected adapter and
// joins the results in selection order, regardless of which adapter's I/O
// completes first. One platform failing can never abort the aggregate call;
// the failing platform just reports notAvailable.
func (e *Engine) SearchAllPlatforms(ctx context.Context, req models.SearchRequest) ([]models.PlatformResult, error) {
	key, err := Fingerprint(req)
	if err != nil {
		return nil, fmt.Errorf("build cache fingerprint: %w", err)
	}

	if cached, ok := e.cache.Get(ctx, key); ok {
		e.logger.Debug().Str("query", req.Query).Msg("cache hit")
		return cached, nil
	}

	selected := e.selectAdapters(req)

	// Indexed join: each goroutine writes its own slot, so the result order
	// is the selection order no matter when each adapter finishes.
	results := make([]models.PlatformResult, len(selected))
	var wg sync.WaitGroup
	for i, adapter := range selected {
		wg.Add(1)
		go func(i int, a platform.Adapter) {
			defer wg.Done()
			results[i] = e.invoke(ctx, a, req)
		}(i, adapter)
	}
	wg.Wait()

	for i := range results {
		e.postProcess(&results[i])
	}

	e.cache.Set(ctx, key, results)
	return results, nil
}

// selectAdapters filters the enabled adapters by the request's platform
// subset. An empty subset selects everything enabled.
func (e *Engine) selectAdapters(req models.SearchRequest) []platform.Adapter {
	enabled := e.adapters.EnabledAdapters()
	if len(req.Platforms) == 0 {
		return enabled
	}

	requested := make(map[models.PlatformKey]bool, len(req.Platforms))
	for _, key := range req.Platforms {
		requested[key] = true
	}

	selected := make([]platform.Adapter, 0, len(enabled))
	for _, a := range enabled {
		if requested[a.Key()] {
			selected = append(selected, a)
		}
	}
	return selected
}

// invoke wraps one adapter call with a per-adapter timeout and a recover, so
// an adapter that violates its own no-escape contract still only costs its
// own slot in the aggregate.
func (e *Engine) invoke(ctx context.Context, a platform.Adapter, req models.SearchRequest) (result models.PlatformResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("platform", string(a.Key())).
				Interface("panic", r).
				Msg("platform search panicked")
			result = models.Unavailable(a.Key())
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, e.opts.AdapterTimeout)
	defer cancel()

	return a.Search(callCtx, req)
}

// postProcess rewrites product URLs through the affiliate transform when the
// affiliate hook is enabled. It never drops an offer: a URL that cannot be
// rewritten stays as it was.
func (e *Engine) postProcess(result *models.PlatformResult) {
	if !e.opts.AffiliateEnabled {
		return
	}
	for i := range result.Items {
		if result.Items[i].ProductURL != "" {
			result.Items[i].ProductURL = WithAffiliate(result.Items[i].ProductURL)
		}
	}
}
