// Package geocoding resolves administrative place names for coordinates.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jengzang/route-terrain-go/internal/models"
)

// ReverseGeocoder resolves one coordinate at the given zoom level
type ReverseGeocoder interface {
	Reverse(ctx context.Context, c models.Coordinate, zoom int) (*models.GeographicLocation, error)
}

// Field alias chains, first non-empty wins
var (
	countryFields  = []string{"country"}
	regionFields   = []string{"state", "region", "province"}
	areaFields     = []string{"county", "district"}
	localityFields = []string{"city", "town", "village"}
)

// Nominatim is a client for the OSM Nominatim /reverse endpoint
type Nominatim struct {
	baseURL   string
	userAgent string
	language  string
	client    *http.Client
}

// NewNominatim creates a new Nominatim client. Nominatim's usage policy
// requires an identifying User-Agent.
func NewNominatim(baseURL, userAgent, language string, client *http.Client) *Nominatim {
	return &Nominatim{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		language:  language,
		client:    client,
	}
}

type nominatimResponse struct {
	Address     map[string]string `json:"address"`
	AddressType string            `json:"addresstype"`
	Error       string            `json:"error"`
}

// Reverse implements ReverseGeocoder
func (n *Nominatim) Reverse(ctx context.Context, c models.Coordinate, zoom int) (*models.GeographicLocation, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(c.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(c.Lon, 'f', -1, 64))
	q.Set("zoom", strconv.Itoa(zoom))
	if n.language != "" {
		q.Set("accept-language", n.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build reverse geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse geocoding returned HTTP %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode reverse geocoding response: %w", err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("reverse geocoding error: %s", body.Error)
	}
	if len(body.Address) == 0 {
		return nil, fmt.Errorf("reverse geocoding returned no address for %s", c)
	}

	return &models.GeographicLocation{
		Point:    c,
		Country:  firstOf(body.Address, countryFields),
		Region:   firstOf(body.Address, regionFields),
		Area:     firstOf(body.Address, areaFields),
		Locality: firstOf(body.Address, localityFields),
		Type:     orUnknown(body.AddressType),
	}, nil
}

func firstOf(address map[string]string, keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(address[k]); v != "" {
			return v
		}
	}
	return models.Unknown
}

func orUnknown(s string) string {
	if s == "" {
		return models.Unknown
	}
	return s
}
