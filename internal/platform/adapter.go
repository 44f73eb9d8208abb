package platform

import (
	"context"

	"github.com/shoply/shoply-backend/internal/models"
)

// Adapter implements search against one platform and normalizes its output
// to the common offer schema. Implementations are stateless and safe for
// concurrent, repeated invocation.
//
// Hard contract: no error may escape Search. Any upstream or internal
// failure is reported as a notAvailable result instead.
type Adapter interface {
	Key() models.PlatformKey
	Search(ctx context.Context, req models.SearchRequest) models.PlatformResult
}
