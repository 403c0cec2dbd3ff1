package itinerary

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/route-terrain-go/internal/models"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestSegment_SingleDayCarriesEverything(t *testing.T) {
	s := NewSegmenter(seeded())
	d := mustDate(t, "2025-07-01")

	routes, err := s.Segment(Request{
		TotalDistanceKm: 23.456, TotalElevationGain: 812, Activity: Foot,
		Start: d, End: d, Latitude: 46,
	})

	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, 1, routes[0].Day)
	assert.Equal(t, "2025-07-01", routes[0].Date)
	assert.Equal(t, 23.46, routes[0].Distance)
	assert.Equal(t, 812.0, routes[0].ElevationGain)
	assert.Contains(t, routes[0].Recommendations, EquipmentCheckAdvisory)
	assert.Contains(t, routes[0].Description, "One-day hike")
}

func TestSegment_DailyQuotasSumToTotal(t *testing.T) {
	s := NewSegmenter(seeded())

	for _, tc := range []struct {
		total      float64
		start, end string
	}{
		{100, "2025-05-01", "2025-05-03"},
		{47.31, "2025-05-01", "2025-05-07"},
		{1234.567, "2024-12-30", "2025-01-12"},
		{0.05, "2025-02-27", "2025-03-02"},
	} {
		routes, err := s.Segment(Request{
			TotalDistanceKm: tc.total, TotalElevationGain: 1000, Activity: Bike,
			Start: mustDate(t, tc.start), End: mustDate(t, tc.end), Latitude: 55,
		})
		require.NoError(t, err)

		var sum float64
		for _, r := range routes {
			sum += r.Distance
		}
		assert.InDeltaf(t, tc.total, sum, 0.01*float64(len(routes)), "total %v over %s..%s", tc.total, tc.start, tc.end)
	}
}

func TestSegment_DayCountAndDates(t *testing.T) {
	s := NewSegmenter(seeded())

	routes, err := s.Segment(Request{
		TotalDistanceKm: 30, Activity: Water,
		Start: mustDate(t, "2024-02-28"), End: mustDate(t, "2024-03-01"),
	})

	require.NoError(t, err)
	require.Len(t, routes, 3)
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		[]string{routes[0].Date, routes[1].Date, routes[2].Date})
	assert.Contains(t, routes[0].Description, "Launch day")
	assert.Contains(t, routes[1].Description, "Paddling day")
	assert.Contains(t, routes[2].Description, "Take-out day")
	assert.Contains(t, routes[0].Recommendations, EquipmentCheckAdvisory)
	assert.NotContains(t, routes[1].Recommendations, EquipmentCheckAdvisory)
}

func TestSegment_ReversedRange(t *testing.T) {
	s := NewSegmenter(seeded())

	_, err := s.Segment(Request{Start: mustDate(t, "2025-05-03"), End: mustDate(t, "2025-05-01")})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestSegment_TooLong(t *testing.T) {
	s := NewSegmenter(seeded())

	_, err := s.Segment(Request{Start: mustDate(t, "2020-01-01"), End: mustDate(t, "2025-01-01")})

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestSegment_SeededSourceIsReproducible(t *testing.T) {
	req := Request{
		TotalDistanceKm: 60, TotalElevationGain: 900, Activity: Mountain,
		Start: mustDate(t, "2025-01-10"), End: mustDate(t, "2025-01-14"), Latitude: 62,
	}

	a, err := NewSegmenter(seeded()).Segment(req)
	require.NoError(t, err)
	b, err := NewSegmenter(seeded()).Segment(req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	for _, r := range a {
		assert.True(t, r.Weather.Simulated)
		assert.LessOrEqual(t, r.Weather.Temperature.Min, r.Weather.Temperature.Max)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-04T18:30:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04", d.Format(dateLayout))

	_, err = ParseDate("04/03/2025")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestParseActivity(t *testing.T) {
	assert.Equal(t, Bike, ParseActivity(" Cycling "))
	assert.Equal(t, Motorbike, ParseActivity("мото"))
	assert.Equal(t, Water, ParseActivity("водный"))
	assert.Equal(t, Foot, ParseActivity("teleportation"))
	assert.Equal(t, Foot, ParseActivity(""))
}

func TestDescribe_Phrasing(t *testing.T) {
	assert.Contains(t, Describe(1, 3, Ski, 10, 500), "First ski day")
	assert.Contains(t, Describe(2, 3, Ski, 10, 500), "Ski touring day")
	assert.Contains(t, Describe(3, 3, Ski, 10, 500), "Last ski day")
	assert.Contains(t, Describe(1, 1, Car, 10, 500), "Road trip")
	assert.Contains(t, Describe(2, 4, Activity("unknown"), 10, 500), "Hiking day")
}

func weather(min, precip, wind float64, cond string) models.DailyWeather {
	return models.DailyWeather{
		Temperature:   models.Temperature{Min: min, Max: min + 8},
		Precipitation: precip,
		WindSpeed:     wind,
		Conditions:    cond,
	}
}

func TestAdvisories_GenericRules(t *testing.T) {
	got := Advisories(2, Foot, weather(-2, 12, 11, HeavyRain))

	assert.Len(t, got, 3)
	assert.Contains(t, got[0], "rain gear")
	assert.Contains(t, got[1], "Frost")
	assert.Contains(t, got[2], "Strong wind")

	assert.Empty(t, Advisories(2, Foot, weather(10, 0, 2, Clear)))
	assert.Equal(t, []string{EquipmentCheckAdvisory}, Advisories(1, Foot, weather(10, 0, 2, Clear)))
}

func TestAdvisories_ActivitySpecific(t *testing.T) {
	mild := weather(10, 0, 7.5, Overcast)
	assert.Len(t, Advisories(2, Water, mild), 1)
	assert.Empty(t, Advisories(2, Foot, mild))

	wet := weather(10, 6, 1, LightRain)
	assert.Len(t, Advisories(2, Bike, wet), 1)
	assert.Len(t, Advisories(2, Motorbike, wet), 1)
	assert.Empty(t, Advisories(2, Car, wet))

	assert.Len(t, Advisories(2, Air, weather(10, 0, 1, Fog)), 1)
	assert.Len(t, Advisories(2, Mountain, weather(10, 0, 1, Fog)), 1)

	freezing := Advisories(2, Ski, weather(-15, 0, 1, Clear))
	assert.Len(t, freezing, 2)
}

// fixedRand returns predetermined values so weather-dependent advisories are deterministic
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return r.n }

func TestWeather_FixedSourceDrivesAdvisories(t *testing.T) {
	// index 4 = heavy rain, upper end of every band
	s := NewSegmenter(fixedRand{f: 0.99, n: 4})
	d := mustDate(t, "2025-07-15")

	routes, err := s.Segment(Request{TotalDistanceKm: 10, Activity: Foot, Start: d, End: d, Latitude: 20})
	require.NoError(t, err)

	w := routes[0].Weather
	assert.Equal(t, HeavyRain, w.Conditions)
	// 27 base + 10 July offset, ±6.96
	assert.InDelta(t, 30.0, w.Temperature.Min, 0.1)
	assert.InDelta(t, 44.0, w.Temperature.Max, 0.1)
	assert.Greater(t, w.Precipitation, RainGearPrecipitation)
	assert.Contains(t, routes[0].Recommendations[0], "rain gear")
}

func TestWeather_SnowOnlyWhenCold(t *testing.T) {
	g := NewWeatherGenerator(fixedRand{f: 0.5, n: 7})

	warm := g.Generate(mustDate(t, "2025-07-15"), 10)
	assert.Equal(t, LightRain, warm.Conditions)

	cold := g.Generate(mustDate(t, "2025-01-15"), 70)
	assert.Equal(t, Snow, cold.Conditions)
}

func TestSeasonalOffset_SouthernHemisphere(t *testing.T) {
	assert.Equal(t, SeasonalOffset(time.January, 45), SeasonalOffset(time.July, -45))
	assert.Equal(t, 20.0, BaseTemperature(-35))
	assert.Equal(t, 5.0, BaseTemperature(75))
}
