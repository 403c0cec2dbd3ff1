package elevation

import (
	"fmt"
	"net/http"
	"strings"
)

// Provider identifiers accepted in configuration
const (
	KindOpenTopoDataSRTM  = "opentopodata-srtm90m"
	KindOpenTopoDataASTER = "opentopodata-aster30m"
	KindOpenElevation     = "open-elevation"
)

// Endpoints holds the base URLs of the supported services
type Endpoints struct {
	OpenTopoData  string
	OpenElevation string
}

// BuildProviders instantiates providers in the given priority order
func BuildProviders(order []string, endpoints Endpoints, client *http.Client) ([]Provider, error) {
	providers := make([]Provider, 0, len(order))
	for _, kind := range order {
		switch strings.ToLower(strings.TrimSpace(kind)) {
		case KindOpenTopoDataSRTM:
			providers = append(providers, NewOpenTopoData(endpoints.OpenTopoData, "srtm90m", client))
		case KindOpenTopoDataASTER:
			providers = append(providers, NewOpenTopoData(endpoints.OpenTopoData, "aster30m", client))
		case KindOpenElevation:
			providers = append(providers, NewOpenElevation(endpoints.OpenElevation, client))
		default:
			return nil, fmt.Errorf("unknown elevation provider %q", kind)
		}
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("no elevation providers configured")
	}
	return providers, nil
}
