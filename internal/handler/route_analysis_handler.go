package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/route-terrain-go/internal/models"
	"github.com/jengzang/route-terrain-go/pkg/response"
)

// RouteAnalyzer runs the full analysis pipeline
type RouteAnalyzer interface {
	Analyze(ctx context.Context, req *models.RouteAnalysisRequest) (*models.RouteAnalysisResponse, error)
}

// RouteAnalysisHandler handles HTTP requests for route analysis
type RouteAnalysisHandler struct {
	analyzer RouteAnalyzer
	timeout  time.Duration
}

// NewRouteAnalysisHandler creates a new route analysis handler
func NewRouteAnalysisHandler(analyzer RouteAnalyzer, timeout time.Duration) *RouteAnalysisHandler {
	return &RouteAnalysisHandler{analyzer: analyzer, timeout: timeout}
}

// Analyze analyzes a route
// POST /api/v1/analyze-route
func (h *RouteAnalysisHandler) Analyze(c *gin.Context) {
	var req models.RouteAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.analyzer.Analyze(ctx, &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, result)
}
