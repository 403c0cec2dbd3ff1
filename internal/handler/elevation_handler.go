package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/route-terrain-go/internal/logging"
	"github.com/jengzang/route-terrain-go/internal/models"
	"github.com/jengzang/route-terrain-go/internal/service"
	"github.com/jengzang/route-terrain-go/pkg/response"
)

// ElevationHandler handles HTTP requests for elevation lookups
type ElevationHandler struct {
	elevation service.ElevationAcquirer
	logger    *slog.Logger
}

// NewElevationHandler creates a new elevation handler
func NewElevationHandler(elevation service.ElevationAcquirer) *ElevationHandler {
	return &ElevationHandler{elevation: elevation, logger: logging.Component("elevation-handler")}
}

// Lookup returns elevations for the valid coordinates of the request.
// Out-of-range coordinates are dropped rather than rejected.
// POST /api/v1/elevation
func (h *ElevationHandler) Lookup(c *gin.Context) {
	var req models.ElevationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	valid := make([]models.Coordinate, 0, len(req.Coordinates))
	for _, coord := range req.Coordinates {
		if coord.Valid() {
			valid = append(valid, coord)
		}
	}
	if len(valid) == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "no valid coordinates in request")
		return
	}
	if dropped := len(req.Coordinates) - len(valid); dropped > 0 {
		h.logger.Warn("dropped invalid coordinates", "dropped", dropped, "kept", len(valid))
	}

	result, err := h.elevation.Acquire(c.Request.Context(), valid)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}
