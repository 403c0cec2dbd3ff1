package models

// RouteAnalysisRequest is the body of POST /api/v1/analyze-route.
// Either Coordinates ([lat, lon] tuples) or Points ({lat, lng} objects) carries the route.
type RouteAnalysisRequest struct {
	Coordinates   Route     `json:"coordinates,omitempty" binding:"omitempty,dive"`
	Points        Route     `json:"points,omitempty" binding:"omitempty,dive"`
	ElevationData []float64 `json:"elevationData,omitempty"`
	LengthKm      *float64  `json:"lengthKm,omitempty"`
	ElevationGain *float64  `json:"elevationGain,omitempty"`
	TourismType   string    `json:"tourismType"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
}

// Route returns the coordinates, falling back to the points form
func (r *RouteAnalysisRequest) Route() Route {
	if len(r.Coordinates) > 0 {
		return r.Coordinates
	}
	return r.Points
}

// RouteAnalysisResponse is the assembled analysis result
type RouteAnalysisResponse struct {
	Analysis            string              `json:"analysis"`
	AnalysisStructured  *StructuredAnalysis `json:"analysisStructured,omitempty"`
	Stats               RouteGeometryStats  `json:"stats"`
	TerrainType         string              `json:"terrainType"`
	GeographicContext   GeographicContext   `json:"geographicContext"`
	FormattedGeoContext string              `json:"formattedGeoContext"`
	DailyRoutes         []DailyRoute        `json:"dailyRoutes"`
	TotalDays           int                 `json:"totalDays"`
	LengthKm            float64             `json:"lengthKm"`
	ElevationGain       float64             `json:"elevationGain"`
}

// StructuredAnalysis is the JSON document the reasoning service is asked to return
type StructuredAnalysis struct {
	Summary struct {
		DifficultyScore     float64 `json:"difficultyScore"`
		DifficultyReasoning string  `json:"difficultyReasoning"`
	} `json:"summary"`
	Stats struct {
		DistanceKm      float64 `json:"distanceKm"`
		ElevationGainM  float64 `json:"elevationGainM"`
		MinElevationM   float64 `json:"minElevationM"`
		MaxElevationM   float64 `json:"maxElevationM"`
		AvgSlopePercent float64 `json:"avgSlopePercent"`
		MaxSlopePercent float64 `json:"maxSlopePercent"`
		Sinuosity       float64 `json:"sinuosity"`
	} `json:"stats"`
	Geography struct {
		TerrainType string   `json:"terrainType"`
		Countries   []string `json:"countries"`
		Regions     []string `json:"regions"`
		Areas       []string `json:"areas"`
		Localities  []string `json:"localities"`
		Notes       string   `json:"notes"`
	} `json:"geography"`
	Days            []StructuredDay `json:"days"`
	Recommendations []string        `json:"recommendations"`
	Warnings        []string        `json:"warnings"`
}

// StructuredDay is one day entry of StructuredAnalysis
type StructuredDay struct {
	Day            int      `json:"day"`
	Date           string   `json:"date"`
	DistanceKm     float64  `json:"distanceKm"`
	ElevationGainM float64  `json:"elevationGainM"`
	KeyPoints      []string `json:"keyPoints"`
	Weather        struct {
		TemperatureMin float64 `json:"temperatureMin"`
		TemperatureMax float64 `json:"temperatureMax"`
		Conditions     string  `json:"conditions"`
		WindSpeed      float64 `json:"windSpeed"`
		Precipitation  float64 `json:"precipitation"`
	} `json:"weather"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}
