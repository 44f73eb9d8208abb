package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/config"
	"github.com/shoply/shoply-backend/internal/models"
)

// Products with more than this many ratings get the "Popular" tag.
const popularRatingCount = 100

// fakeStoreProduct mirrors the upstream FakeStore API product document.
type fakeStoreProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

// FakeStore is the live-backed adapter. It fetches the public FakeStore
// catalog and filters it by case-insensitive substring match of the query
// against title, description and category.
type FakeStore struct {
	client     *resty.Client
	baseURL    string
	maxResults int
	logger     *zerolog.Logger
}

func NewFakeStore(cfg config.FakeStoreConfig, logger *zerolog.Logger) *FakeStore {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	return &FakeStore{
		client:     client,
		baseURL:    cfg.BaseURL,
		maxResults: cfg.MaxResults,
		logger:     logger,
	}
}

func (a *FakeStore) Key() models.PlatformKey {
	return models.PlatformFakeStore
}

func (a *FakeStore) Search(ctx context.Context, req models.SearchRequest) models.PlatformResult {
	var products []fakeStoreProduct
	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&products).
		Get("/products")
	if err != nil {
		a.logger.Warn().Err(err).Msg("FakeStore request failed")
		return models.Unavailable(models.PlatformFakeStore)
	}
	if resp.IsError() {
		a.logger.Warn().Int("status", resp.StatusCode()).Msg("FakeStore returned an error status")
		return models.Unavailable(models.PlatformFakeStore)
	}

	needle := strings.ToLower(req.Query)
	items := make([]models.ProductOffer, 0, a.maxResults)
	for _, p := range products {
		if !matchesQuery(p, needle) {
			continue
		}
		items = append(items, a.toOffer(p))
		if len(items) == a.maxResults {
			break
		}
	}

	return models.PlatformResult{Platform: models.PlatformFakeStore, Items: items}
}

func matchesQuery(p fakeStoreProduct, needle string) bool {
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

func (a *FakeStore) toOffer(p fakeStoreProduct) models.ProductOffer {
	offer := models.ProductOffer{
		ID:         fmt.Sprintf("fakestore-%d", p.ID),
		Title:      p.Title,
		Price:      p.Price,
		Currency:   "USD",
		ImageURL:   p.Image,
		ProductURL: fmt.Sprintf("%s/products/%d", a.baseURL, p.ID),
		InStock:    true,
		Store:      models.PlatformFakeStore,
	}
	if p.Rating.Count > popularRatingCount {
		offer.OfferText = "Popular"
	}
	return offer
}
