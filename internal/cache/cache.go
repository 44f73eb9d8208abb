package cache

import (
	"context"

	"github.com/shoply/shoply-backend/internal/models"
)

// Store is a TTL-keyed cache for aggregate search results. Backends must be
// safe for concurrent use. Entries expire lazily on read; there is no
// background sweep.
type Store interface {
	Get(ctx context.Context, key string) ([]models.PlatformResult, bool)
	Set(ctx context.Context, key string, value []models.PlatformResult)
	Stats(ctx context.Context) models.CacheStats
}
