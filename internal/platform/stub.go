package platform

import (
	"context"

	"github.com/shoply/shoply-backend/internal/models"
)

// Stub represents a platform the system knows about but has no adapter for
// yet. It always reports notAvailable.
type Stub struct {
	key models.PlatformKey
}

func NewStub(key models.PlatformKey) *Stub {
	return &Stub{key: key}
}

func (a *Stub) Key() models.PlatformKey {
	return a.key
}

func (a *Stub) Search(context.Context, models.SearchRequest) models.PlatformResult {
	return models.Unavailable(a.key)
}
