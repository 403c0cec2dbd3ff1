package itinerary

import "github.com/jengzang/route-terrain-go/internal/models"

// Advisory thresholds
const (
	RainGearPrecipitation = 10.0 // mm
	FrostTemperature      = 0.0  // °C
	WindCautionSpeed      = 10.0 // m/s
)

// EquipmentCheckAdvisory is always attached to the first day
const EquipmentCheckAdvisory = "Check all equipment before departure."

type advisoryRule struct {
	applies func(Activity, models.DailyWeather) bool
	text    string
}

var advisoryRules = []advisoryRule{
	{func(_ Activity, w models.DailyWeather) bool { return w.Precipitation > RainGearPrecipitation },
		"Heavy precipitation expected: pack rain gear and waterproof your kit."},
	{func(_ Activity, w models.DailyWeather) bool { return w.Temperature.Min < FrostTemperature },
		"Frost possible: bring insulating layers and watch for ice."},
	{func(_ Activity, w models.DailyWeather) bool { return w.WindSpeed > WindCautionSpeed },
		"Strong wind: take care on exposed sections."},

	{func(a Activity, w models.DailyWeather) bool { return a == Water && w.WindSpeed > 7 },
		"Wind above 7 m/s makes open water hazardous: stay close to shore or wait it out."},
	{func(a Activity, w models.DailyWeather) bool { return a == Bike && w.Precipitation > 5 },
		"Wet roads: expect slippery surfaces and longer braking distances."},
	{func(a Activity, w models.DailyWeather) bool { return a == Bike && w.WindSpeed > 8 },
		"Crosswinds: keep a firm grip on descents."},
	{func(a Activity, w models.DailyWeather) bool { return a == Motorbike && w.Precipitation > 3 },
		"Rain on the road: reduce speed and increase following distance."},
	{func(a Activity, w models.DailyWeather) bool { return a == Motorbike && w.WindSpeed > 12 },
		"Gusty wind: be careful on bridges and open plains."},
	{func(a Activity, w models.DailyWeather) bool { return a == Car && w.Precipitation > 15 },
		"Heavy rain: watch for aquaplaning and flooded sections."},
	{func(a Activity, w models.DailyWeather) bool {
		return a == Air && (w.WindSpeed > 8 || w.Conditions == Thunderstorm || w.Conditions == Fog)
	}, "Flying conditions are poor: consider postponing."},
	{func(a Activity, w models.DailyWeather) bool {
		return (a == Mountain || a == Ski) && w.Temperature.Min < -10
	}, "Extreme cold: risk of frostbite, protect face and hands."},
	{func(a Activity, w models.DailyWeather) bool {
		return (a == Mountain || a == Ski) && w.Conditions == Fog
	}, "Low visibility: navigate by GPS and avoid unfamiliar terrain."},
}

// Advisories evaluates the rule list for one day
func Advisories(day int, activity Activity, w models.DailyWeather) []string {
	out := []string{}
	for _, r := range advisoryRules {
		if r.applies(activity, w) {
			out = append(out, r.text)
		}
	}
	if day == 1 {
		out = append(out, EquipmentCheckAdvisory)
	}
	return out
}
