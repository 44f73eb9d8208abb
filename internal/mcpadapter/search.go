package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shoply/shoply-backend/internal/engine"
	"github.com/shoply/shoply-backend/internal/models"
	"github.com/shoply/shoply-backend/internal/platform"
)

// SearchInput is the MCP tool input schema for aggregate product search.
type SearchInput struct {
	Query     string   `json:"query" jsonschema:"search query text"`
	Lat       *float64 `json:"lat,omitempty" jsonschema:"location latitude, must be paired with lon"`
	Lon       *float64 `json:"lon,omitempty" jsonschema:"location longitude, must be paired with lat"`
	Platforms string   `json:"platforms,omitempty" jsonschema:"comma-separated platform keys to restrict the search"`
}

// ListPlatformsInput is the (empty) input schema for platform discovery.
type ListPlatformsInput struct{}

// PlatformsOutput lists the enabled platforms.
type PlatformsOutput struct {
	Platforms []models.PlatformInfo `json:"platforms"`
}

// NewSearchHandler returns a tool handler backed by the aggregation engine.
// Pass the returned function to mcp.AddTool.
func NewSearchHandler(eng *engine.Engine) func(context.Context, *mcp.CallToolRequest, SearchInput) (*mcp.CallToolResult, models.SearchResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, models.SearchResponse, error) {
		return SearchProducts(ctx, eng, req, input)
	}
}

// SearchProducts runs one aggregate search and returns the merged result set.
func SearchProducts(
	ctx context.Context,
	eng *engine.Engine,
	req *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, models.SearchResponse, error) {
	searchReq := models.SearchRequest{Query: input.Query}
	if input.Lat != nil && input.Lon != nil {
		searchReq.Location = &models.Location{Lat: *input.Lat, Lon: *input.Lon}
	}
	if input.Platforms != "" {
		searchReq.Platforms = models.ParsePlatformList(input.Platforms)
	}

	results, err := eng.SearchAllPlatforms(ctx, searchReq)
	if err != nil {
		return nil, models.SearchResponse{}, err
	}

	return nil, models.SearchResponse{
		Query:    searchReq.Query,
		Location: searchReq.Location,
		Results:  results,
	}, nil
}

// NewListPlatformsHandler returns a tool handler that reports the enabled
// platform keys.
func NewListPlatformsHandler(registry *platform.Registry) func(context.Context, *mcp.CallToolRequest, ListPlatformsInput) (*mcp.CallToolResult, PlatformsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListPlatformsInput) (*mcp.CallToolResult, PlatformsOutput, error) {
		return nil, PlatformsOutput{Platforms: registry.EnabledPlatforms()}, nil
	}
}
