package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/route-terrain-go/internal/models"
)

type fakeGeocoder struct {
	mu      sync.Mutex
	reverse func(c models.Coordinate) (*models.GeographicLocation, error)
	times   []time.Time
	points  []models.Coordinate
}

func (f *fakeGeocoder) Reverse(_ context.Context, c models.Coordinate, _ int) (*models.GeographicLocation, error) {
	f.mu.Lock()
	f.times = append(f.times, time.Now())
	f.points = append(f.points, c)
	f.mu.Unlock()
	return f.reverse(c)
}

func place(country, region, area, locality string) *models.GeographicLocation {
	return &models.GeographicLocation{Country: country, Region: region, Area: area, Locality: locality}
}

func TestSamplePoints(t *testing.T) {
	route := line(12)
	samples := SamplePoints(route)

	assert.LessOrEqual(t, len(samples), 7)
	assert.Equal(t, []models.Coordinate{route[0], route[2], route[4], route[6], route[8], route[11]}, samples)

	assert.Equal(t, line(1), SamplePoints(line(1)))
	assert.Len(t, SamplePoints(line(3)), 3)
	assert.Len(t, SamplePoints(line(1000)), 6)
	assert.Nil(t, SamplePoints(nil))
}

func TestSamplePoints_DeduplicatesIdenticalPoints(t *testing.T) {
	p := models.Coordinate{Lat: 1, Lon: 1}
	q := models.Coordinate{Lat: 2, Lon: 2}

	assert.Equal(t, []models.Coordinate{p, q}, SamplePoints([]models.Coordinate{p, p, q, p}))
}

func TestGeocodingService_AggregateCrossBorder(t *testing.T) {
	g := &fakeGeocoder{reverse: func(c models.Coordinate) (*models.GeographicLocation, error) {
		if c.Lat < 45.0025 {
			return place("France", "Savoie", models.Unknown, "Modane"), nil
		}
		return place("Italy", "Piedmont", "Turin", models.Unknown), nil
	}}

	ctx := NewGeocodingService(g, 0, 8).Aggregate(context.Background(), line(6))

	assert.Equal(t, []string{"France", "Italy"}, ctx.Countries)
	assert.Equal(t, []string{"Savoie", "Piedmont"}, ctx.Regions)
	assert.Equal(t, []string{"Turin"}, ctx.Areas)
	assert.Equal(t, []string{"Modane"}, ctx.Localities)
	assert.True(t, ctx.MultiCountry)
	assert.True(t, ctx.MultiRegion)
	assert.Equal(t, 6, ctx.TotalPointsAnalyzed)
}

func TestGeocodingService_SkipsFailedPoints(t *testing.T) {
	n := 0
	g := &fakeGeocoder{reverse: func(c models.Coordinate) (*models.GeographicLocation, error) {
		n++
		if n%2 == 0 {
			return nil, errors.New("429 too many requests")
		}
		return place("Spain", "Navarre", "Pamplona", "Pamplona"), nil
	}}

	ctx := NewGeocodingService(g, 0, 8).Aggregate(context.Background(), line(12))

	assert.Equal(t, 3, ctx.TotalPointsAnalyzed)
	assert.Equal(t, []string{"Spain"}, ctx.Countries)
	assert.False(t, ctx.MultiCountry)
	assert.False(t, ctx.MultiRegion)
}

func TestGeocodingService_AllFailuresYieldUnknown(t *testing.T) {
	g := &fakeGeocoder{reverse: func(models.Coordinate) (*models.GeographicLocation, error) {
		return nil, errors.New("offline")
	}}

	ctx := NewGeocodingService(g, 0, 8).Aggregate(context.Background(), line(4))

	assert.Equal(t, models.UnknownGeographicContext(), ctx)
	assert.Equal(t, 0, ctx.TotalPointsAnalyzed)
	assert.Equal(t, []string{models.Unknown}, ctx.Countries)
}

func TestGeocodingService_PacesLookups(t *testing.T) {
	g := &fakeGeocoder{reverse: func(models.Coordinate) (*models.GeographicLocation, error) {
		return place("Norway", models.Unknown, models.Unknown, models.Unknown), nil
	}}
	delay := 30 * time.Millisecond

	NewGeocodingService(g, delay, 8).Aggregate(context.Background(), line(3))

	require.Len(t, g.times, 3)
	first := g.times[0]
	for i, at := range g.times {
		// small tolerance for limiter token accounting
		assert.GreaterOrEqual(t, at.Sub(first), time.Duration(i)*delay-2*time.Millisecond, "call %d", i)
	}
}

func TestGeocodingService_StopsWhenContextEnds(t *testing.T) {
	g := &fakeGeocoder{reverse: func(models.Coordinate) (*models.GeographicLocation, error) {
		return place("Chile", "Aysén", models.Unknown, models.Unknown), nil
	}}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result := NewGeocodingService(g, time.Second, 8).Aggregate(ctx, line(12))

	assert.Equal(t, 1, result.TotalPointsAnalyzed)
	assert.Equal(t, []string{"Chile"}, result.Countries)
	assert.Equal(t, []string{"Aysén"}, result.Regions)
}
