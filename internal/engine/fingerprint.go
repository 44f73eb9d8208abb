package engine

import (
	"encoding/json"

	"github.com/shoply/shoply-backend/internal/models"
)

// fingerprintPayload pins the field order of the cache key serialization.
// encoding/json emits struct fields in declaration order, so two logically
// identical requests always produce byte-identical keys.
type fingerprintPayload struct {
	Query     string               `json:"query"`
	Location  *models.Location     `json:"location,omitempty"`
	Platforms []models.PlatformKey `json:"platforms,omitempty"`
}

// Fingerprint derives the cache key for a search request. The platform list
// is taken in request order: naming the same platforms in a different order
// is a different key.
func Fingerprint(req models.SearchRequest) (string, error) {
	payload, err := json.Marshal(fingerprintPayload{
		Query:     req.Query,
		Location:  req.Location,
		Platforms: req.Platforms,
	})
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
