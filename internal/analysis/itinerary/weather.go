package itinerary

import (
	"fmt"
	"math"
	"time"

	"github.com/jengzang/route-terrain-go/internal/models"
	"github.com/jengzang/route-terrain-go/internal/stats"
)

// RandSource is the randomness used by the weather simulation.
// *math/rand/v2.Rand satisfies it.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

// Weather conditions
const (
	Clear        = "clear"
	PartlyCloudy = "partly cloudy"
	Overcast     = "overcast"
	LightRain    = "light rain"
	HeavyRain    = "heavy rain"
	Thunderstorm = "thunderstorm"
	Fog          = "fog"
	Snow         = "snow"
)

type band struct{ lo, hi float64 }

type conditionProfile struct {
	name   string
	precip band // mm
	wind   band // m/s
}

var conditions = []conditionProfile{
	{Clear, band{0, 0}, band{0, 5}},
	{PartlyCloudy, band{0, 1}, band{1, 6}},
	{Overcast, band{0, 2}, band{2, 8}},
	{LightRain, band{1, 8}, band{2, 9}},
	{HeavyRain, band{10, 35}, band{5, 14}},
	{Thunderstorm, band{8, 40}, band{8, 20}},
	{Fog, band{0, 1}, band{0, 3}},
	{Snow, band{2, 20}, band{3, 12}},
}

// Seasonal offset in °C per calendar month, northern hemisphere
var monthOffset = [12]float64{-10, -8, -4, 0, 4, 8, 10, 9, 5, 0, -5, -9}

// WeatherGenerator produces simulated daily weather. Output is a heuristic
// from latitude and season only and is random unless the source is seeded.
type WeatherGenerator struct {
	rnd RandSource
}

// NewWeatherGenerator creates a generator drawing from rnd
func NewWeatherGenerator(rnd RandSource) *WeatherGenerator {
	return &WeatherGenerator{rnd: rnd}
}

// BaseTemperature returns the latitude-bracket mean temperature in °C
func BaseTemperature(lat float64) float64 {
	abs := math.Abs(lat)
	switch {
	case abs > 60:
		return 5
	case abs > 45:
		return 12
	case abs > 30:
		return 20
	default:
		return 27
	}
}

// SeasonalOffset returns the month adjustment, shifted half a year south of the equator
func SeasonalOffset(month time.Month, lat float64) float64 {
	idx := int(month) - 1
	if lat < 0 {
		idx = (idx + 6) % 12
	}
	return monthOffset[idx]
}

// Generate simulates the weather for one day at the given latitude
func (g *WeatherGenerator) Generate(date time.Time, lat float64) models.DailyWeather {
	mean := BaseTemperature(lat) + SeasonalOffset(date.Month(), lat)
	tMin := stats.Round(mean-g.between(band{3, 7}), 1)
	tMax := stats.Round(mean+g.between(band{3, 7}), 1)

	c := conditions[g.rnd.IntN(len(conditions))]
	switch {
	case c.name == Snow && mean > 2:
		c = conditions[3] // light rain
	case (c.name == LightRain || c.name == HeavyRain) && tMax <= 0:
		c = conditions[7] // snow
	}

	precip := stats.Round(g.between(c.precip), 1)
	wind := stats.Round(g.between(c.wind), 1)

	return models.DailyWeather{
		Date:          date.Format(dateLayout),
		Temperature:   models.Temperature{Min: tMin, Max: tMax},
		Conditions:    c.name,
		Precipitation: precip,
		WindSpeed:     wind,
		Description: fmt.Sprintf("Simulated, not a forecast: %s, %.0f to %.0f °C, wind %.1f m/s, precipitation %.1f mm",
			c.name, tMin, tMax, wind, precip),
		Simulated: true,
	}
}

func (g *WeatherGenerator) between(b band) float64 {
	return b.lo + g.rnd.Float64()*(b.hi-b.lo)
}
