package itinerary

import "fmt"

type phrasing struct {
	single string
	first  string
	middle string
	last   string
}

// Each template takes distance (km) and elevation gain (m)
var descriptionTemplates = map[Activity]phrasing{
	Foot: {
		single: "One-day hike: %.1f km with %.0f m of ascent. Start early and keep a steady pace.",
		first:  "Trail start: %.1f km with %.0f m of ascent. Ease into the pace and check your footwear.",
		middle: "Hiking day: %.1f km with %.0f m of ascent. Plan water refills and a long midday rest.",
		last:   "Final stretch: %.1f km with %.0f m of ascent to the finish. Leave time for the return trip.",
	},
	Bike: {
		single: "One-day ride: %.1f km with %.0f m of climbing.",
		first:  "First day in the saddle: %.1f km with %.0f m of climbing. Check brakes and tyre pressure before rolling out.",
		middle: "Cycling stage: %.1f km with %.0f m of climbing. Fuel regularly on the climbs.",
		last:   "Closing stage: %.1f km with %.0f m of climbing to the finish.",
	},
	Water: {
		single: "One-day paddle: %.1f km (%.0f m elevation change along the banks).",
		first:  "Launch day: %.1f km on the water (%.0f m elevation change). Practice rescue drills before departure.",
		middle: "Paddling day: %.1f km (%.0f m elevation change). Scout rapids and portages ahead.",
		last:   "Take-out day: %.1f km (%.0f m elevation change). Plan the landing and gear drying.",
	},
	Mountain: {
		single: "Summit push: %.1f km with %.0f m of ascent. Set a firm turnaround time.",
		first:  "Approach day: %.1f km with %.0f m of ascent. Go slow to acclimatize.",
		middle: "Alpine day: %.1f km with %.0f m of ascent. Start before dawn to avoid afternoon weather.",
		last:   "Descent day: %.1f km with %.0f m of ascent. Most accidents happen on the way down, stay focused.",
	},
	Ski: {
		single: "Ski day: %.1f km with %.0f m of climbing.",
		first:  "First ski day: %.1f km with %.0f m of climbing. Check bindings and avalanche gear.",
		middle: "Ski touring day: %.1f km with %.0f m of climbing. Re-assess snowpack each morning.",
		last:   "Last ski day: %.1f km with %.0f m of climbing to the trailhead.",
	},
	Car: {
		single: "Road trip: %.1f km with %.0f m of elevation gain.",
		first:  "Departure: %.1f km of driving (%.0f m elevation gain). Check fuel, tyres and documents.",
		middle: "Driving day: %.1f km (%.0f m elevation gain). Take a break every two hours.",
		last:   "Return drive: %.1f km (%.0f m elevation gain).",
	},
	Air: {
		single: "Flight day: %.1f km of ground track over %.0f m of relief.",
		first:  "First flight day: %.1f km over %.0f m of relief. Brief on airspace and landing sites.",
		middle: "Flight day: %.1f km over %.0f m of relief. Watch thermals and cloud base.",
		last:   "Final flight day: %.1f km over %.0f m of relief.",
	},
	Motorbike: {
		single: "One-day ride: %.1f km with %.0f m of elevation gain.",
		first:  "Setting off: %.1f km (%.0f m elevation gain). Check chain, tyres and luggage mounts.",
		middle: "Riding day: %.1f km (%.0f m elevation gain). Watch for gravel in corners.",
		last:   "Homeward ride: %.1f km (%.0f m elevation gain).",
	},
}

// Describe renders the description for one day, distinguishing the first,
// middle and last day of a multi-day trip
func Describe(day, totalDays int, activity Activity, distanceKm, gain float64) string {
	p, ok := descriptionTemplates[activity]
	if !ok {
		p = descriptionTemplates[Foot]
	}

	var tmpl string
	switch {
	case totalDays == 1:
		tmpl = p.single
	case day == 1:
		tmpl = p.first
	case day == totalDays:
		tmpl = p.last
	default:
		tmpl = p.middle
	}
	return fmt.Sprintf("Day %d of %d. ", day, totalDays) + fmt.Sprintf(tmpl, distanceKm, gain)
}
