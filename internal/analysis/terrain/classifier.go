// Package terrain classifies a route's overall relief from elevation and
// slope statistics.
package terrain

import (
	"math"

	"github.com/jengzang/route-terrain-go/internal/spatial"
	"github.com/jengzang/route-terrain-go/internal/stats"
)

// Terrain categories
const (
	Mountainous     = "mountainous"
	Hilly           = "hilly"
	Rugged          = "rugged"
	UndulatingPlain = "undulating plain"
	Lowland         = "lowland"
	Upland          = "upland"
	FlatPlain       = "flat plain"
	Unknown         = "unknown"

	// Flat is the fallback bucket of the range-only profile
	Flat = "flat"
)

// Thresholds are the hand-tuned cut-offs of the classifier. They are not
// physical constants and can be overridden through configuration.
type Thresholds struct {
	MountainousRange  float64 `mapstructure:"mountainous_range"`   // m
	HillyRange        float64 `mapstructure:"hilly_range"`         // m
	RuggedRange       float64 `mapstructure:"rugged_range"`        // m
	UndulatingSlope   float64 `mapstructure:"undulating_slope"`    // %
	LowlandElevation  float64 `mapstructure:"lowland_elevation"`   // m
	UplandElevation   float64 `mapstructure:"upland_elevation"`    // m
	SteepSlopePercent float64 `mapstructure:"steep_slope_percent"` // %
}

// DefaultThresholds returns the stock cut-offs
func DefaultThresholds() Thresholds {
	return Thresholds{
		MountainousRange:  1000,
		HillyRange:        500,
		RuggedRange:       200,
		UndulatingSlope:   8,
		LowlandElevation:  50,
		UplandElevation:   500,
		SteepSlopePercent: 15,
	}
}

// Input is what the classifier looks at
type Input struct {
	PointCount     int
	ElevationRange float64
	AvgSlope       float64 // %
	AvgElevation   float64 // m
}

// Classify maps the input to exactly one category. Ruggedness wins over
// slope, slope over base elevation.
func Classify(in Input, t Thresholds) string {
	if in.PointCount < 2 || !stats.AllFinite([]float64{in.ElevationRange, in.AvgSlope, in.AvgElevation}) {
		return Unknown
	}

	switch {
	case in.ElevationRange > t.MountainousRange:
		return Mountainous
	case in.ElevationRange > t.HillyRange:
		return Hilly
	case in.ElevationRange > t.RuggedRange:
		return Rugged
	case in.AvgSlope > t.UndulatingSlope:
		return UndulatingPlain
	case in.AvgElevation < t.LowlandElevation:
		return Lowland
	case in.AvgElevation > t.UplandElevation:
		return Upland
	default:
		return FlatPlain
	}
}

// ClassifyRoute derives the classifier input from a route and its parallel
// elevation profile. Mismatched or short inputs classify as Unknown.
func ClassifyRoute(points []spatial.Point, elevations []float64, t Thresholds) string {
	if len(points) < 2 || len(elevations) != len(points) {
		return Unknown
	}
	return Classify(InputFromProfile(points, elevations), t)
}

// InputFromProfile computes range, mean elevation and mean absolute slope.
// Zero-length segments contribute a slope of 0.
func InputFromProfile(points []spatial.Point, elevations []float64) Input {
	summary := stats.Summarize(elevations)

	var totalSlope float64
	for i := 1; i < len(points) && i < len(elevations); i++ {
		d := spatial.Distance(points[i-1], points[i])
		totalSlope += math.Abs(spatial.SlopePercent(elevations[i]-elevations[i-1], d))
	}

	avgSlope := 0.0
	if len(points) > 1 {
		avgSlope = totalSlope / float64(len(points)-1)
	}

	return Input{
		PointCount:     len(points),
		ElevationRange: summary.Range(),
		AvgSlope:       avgSlope,
		AvgElevation:   summary.Mean,
	}
}

// Profile is the simplified, range-only bucketing used in geometry stats
func Profile(elevationRange float64, t Thresholds) string {
	switch {
	case elevationRange > t.MountainousRange:
		return Mountainous
	case elevationRange > t.HillyRange:
		return Hilly
	case elevationRange > t.RuggedRange:
		return Rugged
	default:
		return Flat
	}
}
