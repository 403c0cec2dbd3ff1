package geocoding

import (
	"fmt"
	"strings"

	"github.com/jengzang/route-terrain-go/internal/models"
)

const maxListedLocalities = 3

// FormatContext renders a geographic context as one human-readable paragraph
func FormatContext(ctx models.GeographicContext) string {
	if ctx.IsUnknown() {
		return "geographic location could not be determined"
	}

	var b strings.Builder

	if ctx.MultiCountry {
		fmt.Fprintf(&b, "The route crosses several countries: %s. ", strings.Join(ctx.Countries, ", "))
	} else {
		fmt.Fprintf(&b, "Country: %s. ", ctx.Countries[0])
	}

	if ctx.MultiRegion {
		fmt.Fprintf(&b, "Regions crossed: %s. ", strings.Join(ctx.Regions, ", "))
	} else if len(ctx.Regions) > 0 {
		fmt.Fprintf(&b, "Region: %s. ", ctx.Regions[0])
	}

	if len(ctx.Areas) > 0 {
		fmt.Fprintf(&b, "Districts: %s. ", strings.Join(ctx.Areas, ", "))
	}

	if n := len(ctx.Localities); n > maxListedLocalities {
		fmt.Fprintf(&b, "Localities: %s and %d more. ",
			strings.Join(ctx.Localities[:maxListedLocalities], ", "), n-maxListedLocalities)
	} else if n > 0 {
		fmt.Fprintf(&b, "Localities: %s. ", strings.Join(ctx.Localities, ", "))
	}

	return strings.TrimSpace(b.String())
}
