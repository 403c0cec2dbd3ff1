// Package itinerary splits a route into daily segments with simulated weather
// and advisories. The split is uniform: every day gets the same share of
// distance and ascent regardless of where the difficulty actually lies.
package itinerary

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jengzang/route-terrain-go/internal/models"
	"github.com/jengzang/route-terrain-go/internal/stats"
)

const dateLayout = "2006-01-02"

// MaxDays bounds the itinerary length
const MaxDays = 365

// ErrInvalidDateRange is returned for unparsable, reversed or oversized ranges
var ErrInvalidDateRange = errors.New("invalid date range")

// Request describes the trip to segment
type Request struct {
	TotalDistanceKm    float64
	TotalElevationGain float64
	Activity           Activity
	Start              time.Time
	End                time.Time
	Latitude           float64 // reference latitude for the weather simulation
}

// Segmenter partitions a trip into DailyRoutes
type Segmenter struct {
	weather *WeatherGenerator
}

// NewSegmenter creates a segmenter. A nil rnd uses a time-seeded source.
func NewSegmenter(rnd RandSource) *Segmenter {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Segmenter{weather: NewWeatherGenerator(rnd)}
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and truncates to the calendar day (UTC)
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: cannot parse date %q", ErrInvalidDateRange, s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// DayCount returns the inclusive number of calendar days between start and end
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Round(24*time.Hour)/(24*time.Hour)) + 1
}

// Segment builds one DailyRoute per day of the inclusive date range
func (s *Segmenter) Segment(req Request) ([]models.DailyRoute, error) {
	if req.End.Before(req.Start) {
		return nil, fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidDateRange, req.End.Format(dateLayout), req.Start.Format(dateLayout))
	}

	days := DayCount(req.Start, req.End)
	if days > MaxDays {
		return nil, fmt.Errorf("%w: %d days exceeds the maximum of %d", ErrInvalidDateRange, days, MaxDays)
	}

	distancePerDay := stats.Round(req.TotalDistanceKm/float64(days), 2)
	gainPerDay := stats.Round(req.TotalElevationGain/float64(days), 0)

	routes := make([]models.DailyRoute, 0, days)
	for i := 0; i < days; i++ {
		day := i + 1
		date := req.Start.AddDate(0, 0, i)
		weather := s.weather.Generate(date, req.Latitude)

		routes = append(routes, models.DailyRoute{
			Day:             day,
			Date:            date.Format(dateLayout),
			Distance:        distancePerDay,
			ElevationGain:   gainPerDay,
			Description:     Describe(day, days, req.Activity, distancePerDay, gainPerDay),
			Weather:         weather,
			Recommendations: Advisories(day, req.Activity, weather),
		})
	}

	return routes, nil
}
