package elevation

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/jengzang/route-terrain-go/internal/models"
)

// OpenTopoData queries one dataset of an OpenTopoData instance
// (GET /v1/{dataset}?locations=lat,lon|lat,lon)
type OpenTopoData struct {
	baseURL string
	dataset string
	client  *http.Client
}

// NewOpenTopoData creates a new OpenTopoData adapter
func NewOpenTopoData(baseURL, dataset string, client *http.Client) *OpenTopoData {
	return &OpenTopoData{
		baseURL: strings.TrimRight(baseURL, "/"),
		dataset: dataset,
		client:  client,
	}
}

// Name returns the provider name
func (p *OpenTopoData) Name() string {
	return "opentopodata/" + p.dataset
}

type openTopoDataResponse struct {
	Results []struct {
		Elevation *float64 `json:"elevation"`
		Location  struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"results"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Fetch implements Provider
func (p *OpenTopoData) Fetch(ctx context.Context, coords []models.Coordinate) ([]models.ElevationSample, error) {
	locations := make([]string, len(coords))
	for i, c := range coords {
		locations[i] = c.String()
	}

	endpoint := fmt.Sprintf("%s/v1/%s?%s", p.baseURL, url.PathEscape(p.dataset),
		url.Values{"locations": {strings.Join(locations, "|")}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", p.Name(), err)
	}

	var body openTopoDataResponse
	if err := doJSON(p.client, p.Name(), req, &body); err != nil {
		return nil, err
	}
	if body.Status != "" && body.Status != "OK" {
		return nil, fmt.Errorf("%s returned status %q: %s", p.Name(), body.Status, body.Error)
	}

	samples := make([]models.ElevationSample, len(body.Results))
	for i, r := range body.Results {
		elev := math.NaN()
		if r.Elevation != nil {
			elev = *r.Elevation
		}
		samples[i] = models.ElevationSample{
			Elevation: elev,
			Location:  models.LatLng{Lat: r.Location.Lat, Lng: r.Location.Lng},
		}
	}
	return samples, nil
}
