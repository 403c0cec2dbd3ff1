package models

// Temperature is a daily min/max pair in °C
type Temperature struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DailyWeather is simulated weather for one itinerary day. It is generated
// heuristically and is not a forecast.
type DailyWeather struct {
	Date          string      `json:"date"`
	Temperature   Temperature `json:"temperature"`
	Conditions    string      `json:"conditions"`
	Precipitation float64     `json:"precipitation"` // mm
	WindSpeed     float64     `json:"windSpeed"`     // m/s
	Description   string      `json:"description"`
	Simulated     bool        `json:"simulated"`
}

// DailyRoute is one day's slice of the itinerary
type DailyRoute struct {
	Day             int          `json:"day"`
	Date            string       `json:"date"`
	Distance        float64      `json:"distance"`      // km
	ElevationGain   float64      `json:"elevationGain"` // m
	Description     string       `json:"description"`
	Weather         DailyWeather `json:"weather"`
	Recommendations []string     `json:"recommendations"`
}
