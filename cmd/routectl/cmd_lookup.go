package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jengzang/route-terrain-go/internal/geocoding"
	"github.com/jengzang/route-terrain-go/internal/models"
)

func newElevationCmd() *cobra.Command {
	var coords string

	cmd := &cobra.Command{
		Use:     "elevation",
		Short:   "Look up elevations through the provider chain",
		Example: `  routectl elevation --coords "46.55,7.98;46.56,7.99"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := ParseCoordinates(coords)
			if err != nil {
				return err
			}
			a, _, err := loadApp()
			if err != nil {
				return err
			}

			result, err := a.Elevation.Acquire(cmd.Context(), points)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&coords, "coords", "", `coordinates as "lat,lon;lat,lon"`)
	_ = cmd.MarkFlagRequired("coords")

	return cmd
}

func newGeoContextCmd() *cobra.Command {
	var coords string

	cmd := &cobra.Command{
		Use:   "geocontext",
		Short: "Resolve the countries and regions a route passes through",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := ParseCoordinates(coords)
			if err != nil {
				return err
			}
			a, _, err := loadApp()
			if err != nil {
				return err
			}

			ctx := a.Geocoding.Aggregate(cmd.Context(), points)
			return printJSON(cmd.OutOrStdout(), models.GeoContextResponse{
				GeographicContext:   ctx,
				FormattedGeoContext: geocoding.FormatContext(ctx),
			})
		},
	}
	cmd.Flags().StringVar(&coords, "coords", "", `coordinates as "lat,lon;lat,lon"`)
	_ = cmd.MarkFlagRequired("coords")

	return cmd
}

// ParseCoordinates parses "lat,lon;lat,lon" into range checked coordinates
func ParseCoordinates(s string) ([]models.Coordinate, error) {
	var out []models.Coordinate
	for i, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		latStr, lonStr, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("coordinate %d: expected lat,lon, got %q", i, pair)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: bad latitude: %w", i, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: bad longitude: %w", i, err)
		}
		c := models.Coordinate{Lat: lat, Lon: lon}
		if !c.Valid() {
			return nil, fmt.Errorf("coordinate %d: %s is out of range", i, c)
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no coordinates given")
	}
	return out, nil
}
