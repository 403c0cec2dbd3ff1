package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/jengzang/route-terrain-go/internal/elevation"
	"github.com/jengzang/route-terrain-go/internal/logging"
	"github.com/jengzang/route-terrain-go/internal/metrics"
	"github.com/jengzang/route-terrain-go/internal/models"
)

// Plausible elevation bounds in meters
const (
	MinPlausibleElevation = -500.0
	MaxPlausibleElevation = 10000.0
)

var errImplausible = errors.New("implausible elevation data")

// ElevationService acquires elevations by walking an ordered provider chain
type ElevationService struct {
	providers []elevation.Provider
	batchSize int
	logger    *slog.Logger
}

// NewElevationService creates a new elevation service
func NewElevationService(providers []elevation.Provider, batchSize int) *ElevationService {
	if batchSize <= 0 || batchSize > elevation.MaxLocationsPerRequest {
		batchSize = elevation.MaxLocationsPerRequest
	}
	return &ElevationService{
		providers: providers,
		batchSize: batchSize,
		logger:    logging.Component("elevation"),
	}
}

// Acquire returns one elevation per coordinate. Coordinates are processed in
// batches; every batch walks the full provider chain, strictly in order.
func (s *ElevationService) Acquire(ctx context.Context, coords []models.Coordinate) (*models.ElevationResponse, error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("%w: no coordinates to look up", ErrValidation)
	}

	results := make([]models.ElevationSample, 0, len(coords))
	var sources []string

	for start := 0; start < len(coords); start += s.batchSize {
		end := min(start+s.batchSize, len(coords))

		samples, source, err := s.fetchBatch(ctx, coords[start:end])
		if err != nil {
			return nil, err
		}
		results = append(results, samples...)
		if len(sources) == 0 || sources[len(sources)-1] != source {
			sources = append(sources, source)
		}
	}

	s.logger.Info("elevation acquired", "points", len(coords), "source", strings.Join(sources, ","))

	return &models.ElevationResponse{
		Results: results,
		Status:  "OK",
		Source:  strings.Join(sources, ","),
	}, nil
}

func (s *ElevationService) fetchBatch(ctx context.Context, batch []models.Coordinate) ([]models.ElevationSample, string, error) {
	for _, p := range s.providers {
		if err := ctx.Err(); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrAcquisition, err)
		}

		samples, err := p.Fetch(ctx, batch)
		if err != nil {
			metrics.ElevationProviderAttempts.WithLabelValues(p.Name(), metrics.OutcomeError).Inc()
			s.logger.Warn("elevation provider failed", "provider", p.Name(), "points", len(batch), "error", err)
			continue
		}

		if err := ValidateSamples(samples, len(batch)); err != nil {
			metrics.ElevationProviderAttempts.WithLabelValues(p.Name(), metrics.OutcomeRejected).Inc()
			s.logger.Warn("elevation provider returned unusable data", "provider", p.Name(), "points", len(batch), "error", err)
			continue
		}

		metrics.ElevationProviderAttempts.WithLabelValues(p.Name(), metrics.OutcomeSuccess).Inc()
		s.logger.Debug("elevation provider succeeded", "provider", p.Name(), "points", len(batch))
		return samples, p.Name(), nil
	}

	s.logger.Error("all elevation providers failed", "providers", len(s.providers), "points", len(batch))
	return nil, "", fmt.Errorf("%w: %d providers tried for %d points", ErrAcquisition, len(s.providers), len(batch))
}

// ValidateSamples rejects empty, short, missing or out-of-range provider data
func ValidateSamples(samples []models.ElevationSample, expected int) error {
	values := make([]float64, len(samples))
	for i, sample := range samples {
		values[i] = sample.Elevation
	}
	return ValidateProfile(values, expected)
}

// ValidateProfile applies the provider plausibility rules to a bare elevation
// profile, one value per route point
func ValidateProfile(values []float64, expected int) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: no samples", errImplausible)
	}
	if len(values) != expected {
		return fmt.Errorf("%w: got %d samples for %d points", errImplausible, len(values), expected)
	}
	for i, e := range values {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return fmt.Errorf("%w: missing value at index %d", errImplausible, i)
		}
		if e < MinPlausibleElevation || e > MaxPlausibleElevation {
			return fmt.Errorf("%w: %.1f m at index %d", errImplausible, e, i)
		}
	}
	return nil
}
