// Package geometry computes aggregate slope and shape statistics of a route.
package geometry

import (
	"math"

	"github.com/jengzang/route-terrain-go/internal/analysis/terrain"
	"github.com/jengzang/route-terrain-go/internal/models"
	"github.com/jengzang/route-terrain-go/internal/spatial"
	"github.com/jengzang/route-terrain-go/internal/stats"
)

// Analyzer computes RouteGeometryStats in a single pass over consecutive pairs
type Analyzer struct {
	thresholds terrain.Thresholds
}

// NewAnalyzer creates a new route geometry analyzer
func NewAnalyzer(thresholds terrain.Thresholds) *Analyzer {
	return &Analyzer{thresholds: thresholds}
}

// Analyze expects elevations positionally parallel to route. Routes with fewer
// than two points yield a zero result labelled "insufficient data". Extra
// elevation values are ignored; missing ones contribute no slope.
func (a *Analyzer) Analyze(route []spatial.Point, elevations []float64) models.RouteGeometryStats {
	if len(route) < 2 {
		return models.RouteGeometryStats{ElevationProfile: models.InsufficientData}
	}

	var (
		pathDistance  float64
		totalAbsSlope float64
		maxAbsSlope   float64
		steep         int
	)

	for i := 1; i < len(route); i++ {
		d := spatial.Distance(route[i-1], route[i])
		pathDistance += d

		if i >= len(elevations) {
			continue
		}
		slope := math.Abs(spatial.SlopePercent(elevations[i]-elevations[i-1], d))
		totalAbsSlope += slope
		if slope > maxAbsSlope {
			maxAbsSlope = slope
		}
		if slope > a.thresholds.SteepSlopePercent {
			steep++
		}
	}

	segments := len(route) - 1
	result := models.RouteGeometryStats{
		AvgSlope:           totalAbsSlope / float64(segments),
		MaxSlope:           maxAbsSlope,
		SteepSections:      steep,
		PathDistanceMeters: pathDistance,
	}

	if s, ok := spatial.Sinuosity(route); ok {
		result.Sinuosity = &s
	}

	summary := stats.Summarize(elevations)
	result.MinElevation = summary.Min
	result.MaxElevation = summary.Max
	result.ElevationProfile = terrain.Profile(summary.Range(), a.thresholds)

	return result
}
