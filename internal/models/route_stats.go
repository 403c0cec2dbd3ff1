package models

// InsufficientData labels geometry results for routes with fewer than two points
const InsufficientData = "insufficient data"

// RouteGeometryStats holds aggregate slope/shape statistics of a route.
// Sinuosity is nil when the endpoints coincide.
type RouteGeometryStats struct {
	AvgSlope           float64  `json:"avgSlope"`
	MaxSlope           float64  `json:"maxSlope"`
	SteepSections      int      `json:"steepSections"`
	Sinuosity          *float64 `json:"sinuosity"`
	MinElevation       float64  `json:"minElevation"`
	MaxElevation       float64  `json:"maxElevation"`
	ElevationProfile   string   `json:"elevationProfile"`
	PathDistanceMeters float64  `json:"pathDistanceMeters"`
}
