package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"

	"github.com/shoply/shoply-backend/internal/api/middleware"
	"github.com/shoply/shoply-backend/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check with cache statistics").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/platforms").
			To(handler.Platforms).
			Doc("List enabled platforms").
			Metadata(restfulspec.KeyOpenAPITags, []string{"platforms"}).
			Writes(PlatformsResponse{}).
			Returns(200, "OK", PlatformsResponse{}))

	ws.
		Route(ws.GET("/search").
			To(handler.Search).
			Doc("Aggregate product search across enabled platforms").
			Metadata(restfulspec.KeyOpenAPITags, []string{"search"}).
			Param(ws.QueryParameter("q", "Search query").DataType("string").Required(true)).
			Param(ws.QueryParameter("lat", "Location latitude, requires lon").DataType("number").Required(false)).
			Param(ws.QueryParameter("lon", "Location longitude, requires lat").DataType("number").Required(false)).
			Param(ws.QueryParameter("platforms", "Comma-separated platform keys to restrict the search").DataType("string").Required(false)).
			Writes(models.SearchResponse{}).
			Returns(200, "OK", models.SearchResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
