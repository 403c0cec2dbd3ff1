// Package elevation adapts public elevation APIs to a common sample model.
package elevation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jengzang/route-terrain-go/internal/models"
)

// MaxLocationsPerRequest is the per-call coordinate limit shared by the providers
const MaxLocationsPerRequest = 100

const maxResponseBytes = 4 << 20

// Provider fetches elevations for up to MaxLocationsPerRequest coordinates and
// normalizes the payload. Implementations issue exactly one request per call.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, coords []models.Coordinate) ([]models.ElevationSample, error)
}

// StatusError is returned when a provider answers with a non-2xx status
type StatusError struct {
	Provider   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.Provider, e.StatusCode)
}

// doJSON executes req and decodes a JSON body into out
func doJSON(client *http.Client, provider string, req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &StatusError{Provider: provider, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("%s returned malformed JSON: %w", provider, err)
	}
	return nil
}
