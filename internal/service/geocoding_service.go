package service

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/jengzang/route-terrain-go/internal/geocoding"
	"github.com/jengzang/route-terrain-go/internal/logging"
	"github.com/jengzang/route-terrain-go/internal/metrics"
	"github.com/jengzang/route-terrain-go/internal/models"
)

// maxStrideSamples is the number of evenly spaced samples before the
// endpoints are appended
const maxStrideSamples = 5

// GeocodingService builds a GeographicContext from a sparse, paced sample of
// reverse geocoding lookups
type GeocodingService struct {
	geocoder geocoding.ReverseGeocoder
	delay    time.Duration
	zoom     int
	logger   *slog.Logger
}

// NewGeocodingService creates a new geocoding service
func NewGeocodingService(geocoder geocoding.ReverseGeocoder, delay time.Duration, zoom int) *GeocodingService {
	return &GeocodingService{
		geocoder: geocoder,
		delay:    delay,
		zoom:     zoom,
		logger:   logging.Component("geocoding"),
	}
}

// SamplePoints picks at most maxStrideSamples evenly spaced points plus both
// endpoints, without duplicates
func SamplePoints(route []models.Coordinate) []models.Coordinate {
	if len(route) == 0 {
		return nil
	}

	stride := max(1, len(route)/maxStrideSamples)
	candidates := make([]models.Coordinate, 0, maxStrideSamples+2)
	for i := 0; i < len(route) && len(candidates) < maxStrideSamples; i += stride {
		candidates = append(candidates, route[i])
	}
	candidates = append(candidates, route[0], route[len(route)-1])

	seen := make(map[models.Coordinate]struct{}, len(candidates))
	samples := candidates[:0]
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		samples = append(samples, c)
	}
	return samples
}

// Aggregate resolves the sampled points one after another and merges their
// administrative units. Lookup failures only shrink the result; it never errors.
func (s *GeocodingService) Aggregate(ctx context.Context, route []models.Coordinate) models.GeographicContext {
	samples := SamplePoints(route)

	pace := rate.Inf
	if s.delay > 0 {
		pace = rate.Every(s.delay)
	}
	limiter := rate.NewLimiter(pace, 1)

	locations := make([]*models.GeographicLocation, 0, len(samples))
	for i, pt := range samples {
		if err := limiter.Wait(ctx); err != nil {
			s.logger.Warn("geocoding stopped early", "resolved", len(locations), "remaining", len(samples)-i, "error", err)
			break
		}

		loc, err := s.geocoder.Reverse(ctx, pt, s.zoom)
		if err != nil {
			metrics.GeocodeLookups.WithLabelValues(metrics.OutcomeDegraded).Inc()
			s.logger.Warn("reverse geocoding failed", "index", i, "point", pt.String(), "error", err)
			continue
		}
		metrics.GeocodeLookups.WithLabelValues(metrics.OutcomeSuccess).Inc()
		locations = append(locations, loc)
	}

	s.logger.Info("geographic context resolved", "sampled", len(samples), "resolved", len(locations))

	return mergeLocations(locations)
}

func mergeLocations(locations []*models.GeographicLocation) models.GeographicContext {
	if len(locations) == 0 {
		return models.UnknownGeographicContext()
	}

	var countries, regions, areas, localities orderedSet
	for _, loc := range locations {
		countries.add(loc.Country)
		regions.add(loc.Region)
		areas.add(loc.Area)
		localities.add(loc.Locality)
	}

	return models.GeographicContext{
		Countries:           countries.list(),
		Regions:             regions.list(),
		Areas:               areas.list(),
		Localities:          localities.list(),
		MultiRegion:         len(regions.items) > 1,
		MultiCountry:        len(countries.items) > 1,
		TotalPointsAnalyzed: len(locations),
	}
}

// orderedSet keeps first-seen order and drops the unknown sentinel
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func (o *orderedSet) add(v string) {
	if v == "" || v == models.Unknown {
		return
	}
	if o.seen == nil {
		o.seen = make(map[string]struct{})
	}
	if _, ok := o.seen[v]; ok {
		return
	}
	o.seen[v] = struct{}{}
	o.items = append(o.items, v)
}

func (o *orderedSet) list() []string {
	if o.items == nil {
		return []string{}
	}
	return o.items
}
