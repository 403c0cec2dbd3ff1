package api

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/route-terrain-go/internal/config"
	"github.com/jengzang/route-terrain-go/internal/handler"
	"github.com/jengzang/route-terrain-go/internal/metrics"
	"github.com/jengzang/route-terrain-go/internal/middleware"
	"github.com/jengzang/route-terrain-go/internal/service"
)

// Services are the domain operations exposed over HTTP
type Services struct {
	Analyzer  handler.RouteAnalyzer
	Elevation service.ElevationAcquirer
	Geo       service.ContextAggregator
}

// SetupRouter 设置路由
func SetupRouter(ctx context.Context, cfg *config.Config, svc Services, logger *slog.Logger) (*gin.Engine, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logger),
		metrics.Middleware(),
		cors(cfg.Server.CORSOrigins),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Route terrain API is running",
		})
	})
	r.GET("/metrics", metrics.Handler())

	analysis := handler.NewRouteAnalysisHandler(svc.Analyzer, cfg.Analysis.Timeout)
	elevation := handler.NewElevationHandler(svc.Elevation)
	geo := handler.NewGeoContextHandler(svc.Geo)

	// API 路由组
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(middleware.NewRateLimiter(ctx, cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)))
	if cfg.Auth.Enabled {
		v1.Use(middleware.JWTAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer))
	}
	{
		v1.POST("/analyze-route", analysis.Analyze)
		v1.POST("/elevation", elevation.Lookup)
		v1.POST("/geo-context", geo.Resolve)
	}

	return r, nil
}

// cors answers preflight requests and sets the allow headers
func cors(origins []string) gin.HandlerFunc {
	wildcard := len(origins) == 0 || slices.Contains(origins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case wildcard:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(origins, origin):
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
