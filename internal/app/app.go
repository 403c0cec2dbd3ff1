// Package app builds the service graph from configuration.
package app

import (
	"fmt"
	"net/http"

	"github.com/jengzang/route-terrain-go/internal/api"
	"github.com/jengzang/route-terrain-go/internal/config"
	"github.com/jengzang/route-terrain-go/internal/elevation"
	"github.com/jengzang/route-terrain-go/internal/geocoding"
	"github.com/jengzang/route-terrain-go/internal/reasoning"
	"github.com/jengzang/route-terrain-go/internal/service"
)

// App holds the constructed services
type App struct {
	Elevation *service.ElevationService
	Geocoding *service.GeocodingService
	Analysis  *service.AnalysisService
}

// New wires every service from cfg
func New(cfg *config.Config) (*App, error) {
	providers, err := elevation.BuildProviders(cfg.Elevation.Providers, elevation.Endpoints{
		OpenTopoData:  cfg.Elevation.OpenTopoDataURL,
		OpenElevation: cfg.Elevation.OpenElevationURL,
	}, &http.Client{Timeout: cfg.Elevation.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to build elevation providers: %w", err)
	}
	elev := service.NewElevationService(providers, cfg.Elevation.BatchSize)

	nominatim := geocoding.NewNominatim(cfg.Geocoding.BaseURL, cfg.Geocoding.UserAgent, cfg.Geocoding.Language,
		&http.Client{Timeout: cfg.Geocoding.Timeout})
	geo := service.NewGeocodingService(nominatim, cfg.Geocoding.Delay, cfg.Geocoding.Zoom)

	reasoner := reasoning.NewClient(reasoning.Config{
		APIKey:   cfg.Reasoning.APIKey,
		BaseURL:  cfg.Reasoning.BaseURL,
		Model:    cfg.Reasoning.Model,
		Referer:  cfg.Reasoning.Referer,
		Title:    cfg.Reasoning.Title,
		Timeout:  cfg.Reasoning.Timeout,
		JSONMode: cfg.Reasoning.JSONMode,
	})

	analysis := service.NewAnalysisService(elev, geo, reasoner, service.AnalysisOptions{
		Thresholds:  cfg.Terrain,
		MaxTokens:   cfg.Reasoning.MaxTokens,
		Temperature: cfg.Reasoning.Temperature,
	})

	return &App{
		Elevation: elev,
		Geocoding: geo,
		Analysis:  analysis,
	}, nil
}

// Services exposes the app to the HTTP layer
func (a *App) Services() api.Services {
	return api.Services{
		Analyzer:  a.Analysis,
		Elevation: a.Elevation,
		Geo:       a.Geocoding,
	}
}
