package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jengzang/route-terrain-go/internal/analysis/geometry"
	"github.com/jengzang/route-terrain-go/internal/analysis/itinerary"
	"github.com/jengzang/route-terrain-go/internal/analysis/terrain"
	"github.com/jengzang/route-terrain-go/internal/geocoding"
	"github.com/jengzang/route-terrain-go/internal/logging"
	"github.com/jengzang/route-terrain-go/internal/metrics"
	"github.com/jengzang/route-terrain-go/internal/models"
	"github.com/jengzang/route-terrain-go/internal/reasoning"
	"github.com/jengzang/route-terrain-go/internal/spatial"
	"github.com/jengzang/route-terrain-go/internal/stats"
)

// ElevationAcquirer returns one elevation sample per coordinate
type ElevationAcquirer interface {
	Acquire(ctx context.Context, coords []models.Coordinate) (*models.ElevationResponse, error)
}

// ContextAggregator resolves the administrative context of a route
type ContextAggregator interface {
	Aggregate(ctx context.Context, route []models.Coordinate) models.GeographicContext
}

// AnalysisOptions tunes the orchestrator
type AnalysisOptions struct {
	Thresholds  terrain.Thresholds
	MaxTokens   int
	Temperature float32
	// Rand seeds the weather simulation; nil draws a fresh source per request
	Rand itinerary.RandSource
}

// AnalysisService runs the full route analysis pipeline
type AnalysisService struct {
	elevation ElevationAcquirer
	geo       ContextAggregator
	reasoner  reasoning.Reasoner
	analyzer  *geometry.Analyzer
	opts      AnalysisOptions
	logger    *slog.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(elev ElevationAcquirer, geo ContextAggregator, reasoner reasoning.Reasoner, opts AnalysisOptions) *AnalysisService {
	return &AnalysisService{
		elevation: elev,
		geo:       geo,
		reasoner:  reasoner,
		analyzer:  geometry.NewAnalyzer(opts.Thresholds),
		opts:      opts,
		logger:    logging.Component("analysis"),
	}
}

// dateRange is a validated inclusive itinerary range
type dateRange struct {
	start, end time.Time
}

// Analyze validates the request, fills in missing elevations, computes all
// statistics and asks the reasoning service for an assessment
func (s *AnalysisService) Analyze(ctx context.Context, req *models.RouteAnalysisRequest) (*models.RouteAnalysisResponse, error) {
	started := time.Now()
	defer func() { metrics.AnalysisDuration.Observe(time.Since(started).Seconds()) }()

	route := req.Route()
	dates, err := validateAnalysisRequest(route, req)
	if err != nil {
		return nil, err
	}

	lengthKm := stats.Round(route.LengthMeters()/1000, 2)
	if req.LengthKm != nil && *req.LengthKm > 0 && !math.IsInf(*req.LengthKm, 0) {
		lengthKm = *req.LengthKm
	}

	elevations := req.ElevationData
	if err := ValidateProfile(elevations, len(route)); err != nil {
		s.logger.Info("acquiring elevation profile", "points", len(route), "supplied", len(req.ElevationData), "reason", err)
		resp, err := s.elevation.Acquire(ctx, route)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire elevations: %w", err)
		}
		elevations = resp.Elevations()
	}

	// client supplied gain is never trusted
	gain := stats.Round(stats.PositiveDeltaSum(elevations), 0)

	points := route.Points()
	terrainType := terrain.ClassifyRoute(points, elevations, s.opts.Thresholds)

	geo := s.geo.Aggregate(ctx, route)
	formattedGeo := geocoding.FormatContext(geo)

	geomStats := s.analyzer.Analyze(points, elevations)

	days := []models.DailyRoute{}
	if dates != nil {
		days, err = itinerary.NewSegmenter(s.opts.Rand).Segment(itinerary.Request{
			TotalDistanceKm:    lengthKm,
			TotalElevationGain: gain,
			Activity:           itinerary.ParseActivity(req.TourismType),
			Start:              dates.start,
			End:                dates.end,
			Latitude:           spatial.Centroid(points).Lat,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	prompt := reasoning.BuildPrompt(reasoning.PromptInput{
		LengthKm:      lengthKm,
		ElevationGain: gain,
		PointCount:    len(route),
		TourismType:   req.TourismType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TerrainType:   terrainType,
		Elevations:    elevations,
		Stats:         geomStats,
		Geo:           geo,
		FormattedGeo:  formattedGeo,
		Days:          days,
	}, s.opts.MaxTokens, s.opts.Temperature)

	completion, err := s.reasoner.Complete(ctx, prompt)
	if err != nil {
		metrics.ReasoningRequests.WithLabelValues(metrics.OutcomeError).Inc()
		if errors.Is(err, reasoning.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if completion.Structured == nil {
		metrics.ReasoningRequests.WithLabelValues(metrics.OutcomeDegraded).Inc()
		s.logger.Warn("reasoning answer has no structured form", "chars", len(completion.Text))
	} else {
		metrics.ReasoningRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()
	}

	s.logger.Info("route analyzed",
		"points", len(route),
		"length_km", lengthKm,
		"elevation_gain", gain,
		"terrain", terrainType,
		"days", len(days),
		"duration_ms", time.Since(started).Milliseconds())

	return &models.RouteAnalysisResponse{
		Analysis:            completion.Text,
		AnalysisStructured:  completion.Structured,
		Stats:               geomStats,
		TerrainType:         terrainType,
		GeographicContext:   geo,
		FormattedGeoContext: formattedGeo,
		DailyRoutes:         days,
		TotalDays:           len(days),
		LengthKm:            lengthKm,
		ElevationGain:       gain,
	}, nil
}

// validateAnalysisRequest runs every check that must pass before any
// external call. A nil range means no itinerary was requested.
func validateAnalysisRequest(route models.Route, req *models.RouteAnalysisRequest) (*dateRange, error) {
	if len(route) < 2 {
		return nil, fmt.Errorf("%w: a route needs at least 2 coordinates, got %d", ErrValidation, len(route))
	}
	if idx := route.FirstInvalid(); idx >= 0 {
		return nil, fmt.Errorf("%w: coordinate %d (%s) is out of range", ErrValidation, idx, route[idx])
	}

	if req.StartDate == "" {
		if req.EndDate != "" {
			return nil, fmt.Errorf("%w: endDate requires startDate", ErrValidation)
		}
		return nil, nil
	}

	start, err := itinerary.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	end := start
	if req.EndDate != "" {
		if end, err = itinerary.ParseDate(req.EndDate); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate %s is before startDate %s", ErrValidation, req.EndDate, req.StartDate)
	}
	if days := itinerary.DayCount(start, end); days > itinerary.MaxDays {
		return nil, fmt.Errorf("%w: %d days exceeds the maximum of %d", ErrValidation, days, itinerary.MaxDays)
	}

	return &dateRange{start: start, end: end}, nil
}
