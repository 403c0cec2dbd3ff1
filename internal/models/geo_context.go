package models

// Unknown is the sentinel used for unresolved administrative fields
const Unknown = "unknown"

// GeographicLocation is the administrative breakdown of one geocoded point
type GeographicLocation struct {
	Point    Coordinate `json:"point"`
	Country  string     `json:"country"`
	Region   string     `json:"region"`
	Area     string     `json:"area"`
	Locality string     `json:"locality"`
	Type     string     `json:"type"`
}

// GeographicContext aggregates the administrative units a route passes through
type GeographicContext struct {
	Countries           []string `json:"countries"`
	Regions             []string `json:"regions"`
	Areas               []string `json:"areas"`
	Localities          []string `json:"localities"`
	MultiRegion         bool     `json:"multiRegion"`
	MultiCountry        bool     `json:"multiCountry"`
	TotalPointsAnalyzed int      `json:"totalPointsAnalyzed"`
}

// UnknownGeographicContext is returned when no point could be resolved
func UnknownGeographicContext() GeographicContext {
	return GeographicContext{
		Countries:  []string{Unknown},
		Regions:    []string{Unknown},
		Areas:      []string{Unknown},
		Localities: []string{Unknown},
	}
}

// IsUnknown reports whether the context carries no resolved country
func (g GeographicContext) IsUnknown() bool {
	return len(g.Countries) == 0 || g.Countries[0] == Unknown
}

// GeoContextRequest is the body of POST /api/v1/geo-context
type GeoContextRequest struct {
	Coordinates []Coordinate `json:"coordinates" binding:"required,min=1,dive"`
}

// GeoContextResponse pairs the aggregated context with its text rendering
type GeoContextResponse struct {
	GeographicContext   GeographicContext `json:"geographicContext"`
	FormattedGeoContext string            `json:"formattedGeoContext"`
}
