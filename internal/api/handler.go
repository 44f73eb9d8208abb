package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/shoply/shoply-backend/internal/api/middleware"
	"github.com/shoply/shoply-backend/internal/cache"
	"github.com/shoply/shoply-backend/internal/engine"
	"github.com/shoply/shoply-backend/internal/models"
	"github.com/shoply/shoply-backend/internal/platform"
)

var validate = validator.New()

type HealthResponse struct {
	Status        string            `json:"status"`
	Version       string            `json:"version"`
	UptimeSeconds float64           `json:"uptime_seconds"`
	Cache         models.CacheStats `json:"cache"`
}

type PlatformsResponse struct {
	Platforms []models.PlatformInfo `json:"platforms"`
}

type Handler struct {
	engine   *engine.Engine
	registry *platform.Registry
	cache    cache.Store
	logger   *zerolog.Logger
	started  time.Time
}

func NewHandler(eng *engine.Engine, registry *platform.Registry, store cache.Store, logger *zerolog.Logger) *Handler {
	return &Handler{
		engine:   eng,
		registry: registry,
		cache:    store,
		logger:   logger,
		started:  time.Now(),
	}
}

// searchQuery models the raw /search query string for validation.
type searchQuery struct {
	Q         string `validate:"required"`
	Lat       string `validate:"omitempty,latitude"`
	Lon       string `validate:"omitempty,longitude"`
	Platforms string
}

// GET /api/v1/search?q=&lat=&lon=&platforms=
func (h *Handler) Search(req *restful.Request, resp *restful.Response) {
	query := searchQuery{
		Q:         req.QueryParameter("q"),
		Lat:       req.QueryParameter("lat"),
		Lon:       req.QueryParameter("lon"),
		Platforms: req.QueryParameter("platforms"),
	}
	if err := validate.Struct(query); err != nil {
		h.logger.Warn().Err(err).Msg("invalid search query")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	searchReq, err := normalize(query)
	if err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("query", searchReq.Query).
		Int("requested_platforms", len(searchReq.Platforms)).
		Msg("Start aggregation")

	results, err := h.engine.SearchAllPlatforms(req.Request.Context(), searchReq)
	if err != nil {
		h.logger.Error().Err(err).Msg("aggregation failed")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("query", searchReq.Query).
		Int("platforms", len(results)).
		Msg("Aggregation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, models.SearchResponse{
		Query:    searchReq.Query,
		Location: searchReq.Location,
		Results:  results,
	})
}

// GET /api/v1/platforms
func (h *Handler) Platforms(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, PlatformsResponse{
		Platforms: h.registry.EnabledPlatforms(),
	})
}

// GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:        "ok",
		Version:       "1.0.0",
		UptimeSeconds: time.Since(h.started).Seconds(),
		Cache:         h.cache.Stats(req.Request.Context()),
	})
}

func normalize(q searchQuery) (models.SearchRequest, error) {
	req := models.SearchRequest{Query: q.Q}

	if (q.Lat == "") != (q.Lon == "") {
		return req, fmt.Errorf("lat and lon must be provided together")
	}
	if q.Lat != "" {
		lat, err := strconv.ParseFloat(q.Lat, 64)
		if err != nil {
			return req, fmt.Errorf("invalid lat: %w", err)
		}
		lon, err := strconv.ParseFloat(q.Lon, 64)
		if err != nil {
			return req, fmt.Errorf("invalid lon: %w", err)
		}
		req.Location = &models.Location{Lat: lat, Lon: lon}
	}

	if q.Platforms != "" {
		req.Platforms = models.ParsePlatformList(q.Platforms)
	}

	return req, nil
}
