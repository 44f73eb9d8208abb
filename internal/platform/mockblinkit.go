package platform

import (
	"context"
	"math"
	"strings"

	"github.com/shoply/shoply-backend/internal/models"
)

// MockBlinkit simulates a quick-commerce platform with location-scoped
// availability. The service-area formula is a deterministic toy: the request
// is serviceable only when mod(|lat|+|lon|, 2) < 1. No location means no
// service area, so no results.
type MockBlinkit struct{}

func NewMockBlinkit() *MockBlinkit {
	return &MockBlinkit{}
}

func (a *MockBlinkit) Key() models.PlatformKey {
	return models.PlatformMockBlinkit
}

func (a *MockBlinkit) Search(_ context.Context, req models.SearchRequest) models.PlatformResult {
	if req.Location == nil || !inServiceArea(*req.Location) {
		return models.Unavailable(models.PlatformMockBlinkit)
	}

	canonical := strings.ToLower(strings.TrimSpace(req.Query))
	items := []models.ProductOffer{
		{
			ID:            "mock-blinkit-1",
			Title:         canonical + " — 1 kg",
			Price:         119,
			Currency:      "INR",
			ImageURL:      "https://placehold.co/200x200?text=Blinkit",
			ProductURL:    "https://blinkit.com/",
			InStock:       true,
			Store:         models.PlatformMockBlinkit,
			OriginalPrice: 139,
			OfferText:     "Save ₹20",
		},
		{
			ID:         "mock-blinkit-2",
			Title:      canonical + " — 500 g",
			Price:      69,
			Currency:   "INR",
			ImageURL:   "https://placehold.co/200x200?text=Blinkit",
			ProductURL: "https://blinkit.com/",
			InStock:    true,
			Store:      models.PlatformMockBlinkit,
		},
	}

	return models.PlatformResult{Platform: models.PlatformMockBlinkit, Items: items}
}

func inServiceArea(loc models.Location) bool {
	return math.Mod(math.Abs(loc.Lat)+math.Abs(loc.Lon), 2) < 1
}
