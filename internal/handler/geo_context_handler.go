package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/route-terrain-go/internal/geocoding"
	"github.com/jengzang/route-terrain-go/internal/models"
	"github.com/jengzang/route-terrain-go/internal/service"
	"github.com/jengzang/route-terrain-go/pkg/response"
)

// GeoContextHandler handles HTTP requests for geographic context
type GeoContextHandler struct {
	geo service.ContextAggregator
}

// NewGeoContextHandler creates a new geographic context handler
func NewGeoContextHandler(geo service.ContextAggregator) *GeoContextHandler {
	return &GeoContextHandler{geo: geo}
}

// Resolve aggregates the administrative units along the route
// POST /api/v1/geo-context
func (h *GeoContextHandler) Resolve(c *gin.Context) {
	var req models.GeoContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := h.geo.Aggregate(c.Request.Context(), req.Coordinates)

	response.Success(c, models.GeoContextResponse{
		GeographicContext:   ctx,
		FormattedGeoContext: geocoding.FormatContext(ctx),
	})
}
