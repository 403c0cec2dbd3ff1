package reasoning

import (
	"fmt"
	"strings"

	"github.com/jengzang/route-terrain-go/internal/models"
)

// SystemInstruction asks the model for a single JSON document
const SystemInstruction = "You are an expert in travel route safety and terrain assessment. " +
	"Respond with strictly valid JSON that matches the requested schema. " +
	"Do not write any text outside the JSON object."

// profilePreview is how many leading elevation samples go into the prompt
const profilePreview = 10

// PromptInput is everything the orchestrator knows about the route
type PromptInput struct {
	LengthKm      float64
	ElevationGain float64
	PointCount    int
	TourismType   string
	StartDate     string
	EndDate       string
	TerrainType   string
	Elevations    []float64
	Stats         models.RouteGeometryStats
	Geo           models.GeographicContext
	FormattedGeo  string
	Days          []models.DailyRoute
}

const schemaHint = `{
  "summary": {"difficultyScore": number (1-10), "difficultyReasoning": string},
  "stats": {"distanceKm": number, "elevationGainM": number, "minElevationM": number, "maxElevationM": number,
            "avgSlopePercent": number, "maxSlopePercent": number, "sinuosity": number},
  "geography": {"terrainType": string, "countries": [string], "regions": [string], "areas": [string],
                "localities": [string], "notes": string},
  "days": [{"day": number, "date": "YYYY-MM-DD", "distanceKm": number, "elevationGainM": number,
            "keyPoints": [string],
            "weather": {"temperatureMin": number, "temperatureMax": number, "conditions": string,
                        "windSpeed": number, "precipitation": number},
            "description": string, "recommendations": [string]}],
  "recommendations": [string],
  "warnings": [string]
}`

// BuildPrompt renders the user prompt for one route
func BuildPrompt(in PromptInput, maxTokens int, temperature float32) Prompt {
	var b strings.Builder

	b.WriteString("Assess the difficulty and safety of the following route.\n\n")
	b.WriteString("Route parameters:\n")
	fmt.Fprintf(&b, "- Tourism type: %s\n", orDash(in.TourismType))
	fmt.Fprintf(&b, "- Length: %.2f km\n", in.LengthKm)
	fmt.Fprintf(&b, "- Elevation gain: %.0f m\n", in.ElevationGain)
	fmt.Fprintf(&b, "- Points: %d\n", in.PointCount)
	fmt.Fprintf(&b, "- Terrain type: %s\n", in.TerrainType)
	if in.StartDate != "" {
		fmt.Fprintf(&b, "- Dates: %s to %s\n", in.StartDate, orDash(in.EndDate))
	}

	b.WriteString("\nGeometry:\n")
	fmt.Fprintf(&b, "- Elevation: min %.0f m, max %.0f m, profile %s\n",
		in.Stats.MinElevation, in.Stats.MaxElevation, in.Stats.ElevationProfile)
	fmt.Fprintf(&b, "- Slope: average %.1f%%, max %.1f%%, steep sections %d\n",
		in.Stats.AvgSlope, in.Stats.MaxSlope, in.Stats.SteepSections)
	if in.Stats.Sinuosity != nil {
		fmt.Fprintf(&b, "- Sinuosity: %.2f\n", *in.Stats.Sinuosity)
	} else {
		b.WriteString("- Sinuosity: undefined (closed loop)\n")
	}
	if len(in.Elevations) > 0 {
		n := min(len(in.Elevations), profilePreview)
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			parts[i] = fmt.Sprintf("%.0f", in.Elevations[i])
		}
		fmt.Fprintf(&b, "- Elevation samples: %s", strings.Join(parts, ", "))
		if len(in.Elevations) > n {
			fmt.Fprintf(&b, " (+%d more)", len(in.Elevations)-n)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nGeography:\n")
	fmt.Fprintf(&b, "- %s\n", in.FormattedGeo)
	if in.Geo.MultiCountry {
		b.WriteString("- The route crosses a national border.\n")
	} else if in.Geo.MultiRegion {
		b.WriteString("- The route crosses regional boundaries.\n")
	}

	if len(in.Days) > 0 {
		b.WriteString("\nDaily plan (weather is simulated, not a forecast):\n")
		for _, d := range in.Days {
			fmt.Fprintf(&b, "- Day %d (%s): %.2f km, +%.0f m, %s, %.0f..%.0f C, wind %.1f m/s, precipitation %.1f mm\n",
				d.Day, d.Date, d.Distance, d.ElevationGain, d.Weather.Conditions,
				d.Weather.Temperature.Min, d.Weather.Temperature.Max,
				d.Weather.WindSpeed, d.Weather.Precipitation)
		}
	}

	b.WriteString("\nReturn a JSON object with this structure:\n")
	b.WriteString(schemaHint)
	b.WriteString("\n")

	return Prompt{
		System:      SystemInstruction,
		User:        b.String(),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
