package itinerary

import "strings"

// Activity is the normalized travel mode of an itinerary
type Activity string

// Supported activities
const (
	Foot      Activity = "foot"
	Bike      Activity = "bike"
	Water     Activity = "water"
	Mountain  Activity = "mountain"
	Ski       Activity = "ski"
	Car       Activity = "car"
	Air       Activity = "air"
	Motorbike Activity = "motorbike"
)

var activityAliases = map[string]Activity{
	"foot": Foot, "hiking": Foot, "walking": Foot, "trekking": Foot, "пеший": Foot, "пешком": Foot,
	"bike": Bike, "bicycle": Bike, "cycling": Bike, "велосипедный": Bike, "велосипед": Bike,
	"water": Water, "kayak": Water, "canoe": Water, "rafting": Water, "водный": Water,
	"mountain": Mountain, "mountaineering": Mountain, "alpine": Mountain, "climbing": Mountain, "горный": Mountain,
	"ski": Ski, "skiing": Ski, "лыжный": Ski,
	"car": Car, "auto": Car, "driving": Car, "автомобильный": Car,
	"air": Air, "flight": Air, "paragliding": Air, "воздушный": Air,
	"motorbike": Motorbike, "moto": Motorbike, "motorcycle": Motorbike, "мото": Motorbike, "мотоциклетный": Motorbike,
}

// ParseActivity normalizes a free-form tourism type. Unrecognized tags map to Foot.
func ParseActivity(tag string) Activity {
	if a, ok := activityAliases[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return a
	}
	return Foot
}
