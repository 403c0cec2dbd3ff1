package elevation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/jengzang/route-terrain-go/internal/models"
)

// OpenElevation queries an Open-Elevation instance (POST /api/v1/lookup)
type OpenElevation struct {
	baseURL string
	client  *http.Client
}

// NewOpenElevation creates a new Open-Elevation adapter
func NewOpenElevation(baseURL string, client *http.Client) *OpenElevation {
	return &OpenElevation{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Name returns the provider name
func (p *OpenElevation) Name() string {
	return "open-elevation"
}

type openElevationLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type openElevationResponse struct {
	Results []struct {
		Latitude  float64  `json:"latitude"`
		Longitude float64  `json:"longitude"`
		Elevation *float64 `json:"elevation"`
	} `json:"results"`
}

// Fetch implements Provider. Locations are echoed from the request since the
// service rounds them in its response.
func (p *OpenElevation) Fetch(ctx context.Context, coords []models.Coordinate) ([]models.ElevationSample, error) {
	payload := struct {
		Locations []openElevationLocation `json:"locations"`
	}{Locations: make([]openElevationLocation, len(coords))}
	for i, c := range coords {
		payload.Locations[i] = openElevationLocation{Latitude: c.Lat, Longitude: c.Lon}
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", p.Name(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/v1/lookup", bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", p.Name(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body openElevationResponse
	if err := doJSON(p.client, p.Name(), req, &body); err != nil {
		return nil, err
	}
	if body.Results == nil {
		return nil, fmt.Errorf("%s response has no results array", p.Name())
	}

	samples := make([]models.ElevationSample, len(body.Results))
	for i, r := range body.Results {
		elev := math.NaN()
		if r.Elevation != nil {
			elev = *r.Elevation
		}
		loc := models.LatLng{Lat: r.Latitude, Lng: r.Longitude}
		if i < len(coords) {
			loc = models.LatLng{Lat: coords[i].Lat, Lng: coords[i].Lon}
		}
		samples[i] = models.ElevationSample{Elevation: elev, Location: loc}
	}
	return samples, nil
}
