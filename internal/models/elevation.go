package models

// LatLng is the location echoed back with each elevation sample
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ElevationSample is the provider-independent elevation result for one
// coordinate. Missing provider values are normalized to NaN and never
// survive validation.
type ElevationSample struct {
	Elevation float64 `json:"elevation"`
	Location  LatLng  `json:"location"`
}

// ElevationRequest is the body of POST /api/v1/elevation
type ElevationRequest struct {
	Coordinates []Coordinate `json:"coordinates" binding:"required"`
}

// ElevationResponse is the normalized elevation payload
type ElevationResponse struct {
	Results []ElevationSample `json:"results"`
	Status  string            `json:"status"`
	Source  string            `json:"source,omitempty"`
}

// Elevations extracts the elevation values in order
func (r *ElevationResponse) Elevations() []float64 {
	values := make([]float64, len(r.Results))
	for i, res := range r.Results {
		values[i] = res.Elevation
	}
	return values
}
