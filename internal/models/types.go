package models

import "strings"

// PlatformKey identifies one supported (or stubbed) product platform. It is
// both the adapter identity and the tag on every result the adapter emits.
type PlatformKey string

const (
	PlatformFakeStore   PlatformKey = "FakeStore"
	PlatformMockBlinkit PlatformKey = "MockBlinkit"
	PlatformBlinkit     PlatformKey = "Blinkit"
	PlatformInstamart   PlatformKey = "Instamart"
	PlatformFlipkart    PlatformKey = "Flipkart"
	PlatformAmazon      PlatformKey = "Amazon"
	PlatformBigBasket   PlatformKey = "BigBasket"
	PlatformZepto       PlatformKey = "Zepto"
	PlatformDMart       PlatformKey = "DMart"
	PlatformJioMart     PlatformKey = "JioMart"
)

// AllPlatformKeys is the closed set of known platforms. The registry must
// cover every key listed here, stubbing the ones without an implementation.
var AllPlatformKeys = []PlatformKey{
	PlatformFakeStore,
	PlatformMockBlinkit,
	PlatformBlinkit,
	PlatformInstamart,
	PlatformFlipkart,
	PlatformAmazon,
	PlatformBigBasket,
	PlatformZepto,
	PlatformDMart,
	PlatformJioMart,
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// SearchRequest is the normalized search input. Built once per inbound call
// and never mutated afterwards.
type SearchRequest struct {
	Query     string        `json:"query"`
	Location  *Location     `json:"location,omitempty"`
	Platforms []PlatformKey `json:"platforms,omitempty"`
}

// ProductOffer is the normalized product record shared by all platforms.
// IDs are platform-prefixed, which keeps them unique across one response.
type ProductOffer struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Price         float64     `json:"price"`
	Currency      string      `json:"currency"`
	ImageURL      string      `json:"imageUrl,omitempty"`
	ProductURL    string      `json:"productUrl,omitempty"`
	InStock       bool        `json:"inStock"`
	Store         PlatformKey `json:"store"`
	OriginalPrice float64     `json:"originalPrice,omitempty"`
	OfferText     string      `json:"offerText,omitempty"`
}

// PlatformResult is one platform's contribution to the aggregate response.
// NotAvailable is a signal, not an error: true means the platform yielded no
// usable results for this request, and Items is empty.
type PlatformResult struct {
	Platform     PlatformKey    `json:"platform"`
	Items        []ProductOffer `json:"items"`
	NotAvailable bool           `json:"notAvailable,omitempty"`
}

// Unavailable builds the canonical empty result for a platform.
func Unavailable(key PlatformKey) PlatformResult {
	return PlatformResult{Platform: key, Items: []ProductOffer{}, NotAvailable: true}
}

// PlatformInfo is the discovery record exposed by the platforms endpoint.
type PlatformInfo struct {
	Key PlatformKey `json:"key"`
}

type CacheStats struct {
	TotalKeys  int `json:"totalKeys"`
	ActiveKeys int `json:"activeKeys"`
	TTLSeconds int `json:"ttlSeconds"`
}

// SearchResponse is the envelope returned by the boundary layers.
type SearchResponse struct {
	Query    string           `json:"query"`
	Location *Location        `json:"location,omitempty"`
	Results  []PlatformResult `json:"results"`
}

// ParsePlatformList splits a comma-separated platform list, trimming
// whitespace and dropping empty entries. Unknown keys are kept as-is; they
// simply match no registered adapter downstream.
func ParsePlatformList(s string) []PlatformKey {
	parts := strings.Split(s, ",")
	keys := make([]PlatformKey, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keys = append(keys, PlatformKey(part))
	}
	if len(keys) == 0 {
		return nil
	}
	return keys
}
