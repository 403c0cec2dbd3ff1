package models

import (
	"encoding/json"
	"fmt"

	"github.com/jengzang/route-terrain-go/internal/spatial"
)

// Coordinate is a WGS84 position. On the wire it is a [lat, lon] tuple; the
// object forms {"lat":..,"lng":..} and {"lat":..,"lon":..} are accepted on input.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Valid reports whether lat is in [-90,90] and lon in [-180,180]
func (c Coordinate) Valid() bool {
	return c.Point().Valid()
}

// Point converts the coordinate to a spatial point
func (c Coordinate) Point() spatial.Point {
	return spatial.Point{Lat: c.Lat, Lon: c.Lon}
}

// MarshalJSON encodes the coordinate as [lat, lon]
func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lon})
}

// UnmarshalJSON decodes a [lat, lon] tuple or a {lat, lng|lon} object
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var tuple []float64
	if err := json.Unmarshal(data, &tuple); err == nil {
		if len(tuple) != 2 {
			return fmt.Errorf("coordinate must have exactly 2 elements, got %d", len(tuple))
		}
		c.Lat, c.Lon = tuple[0], tuple[1]
		return nil
	}

	var obj struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
		Lon *float64 `json:"lon"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", string(data), err)
	}
	if obj.Lat == nil || (obj.Lng == nil && obj.Lon == nil) {
		return fmt.Errorf("invalid coordinate %s: lat and lng are required", string(data))
	}
	c.Lat = *obj.Lat
	if obj.Lng != nil {
		c.Lon = *obj.Lng
	} else {
		c.Lon = *obj.Lon
	}
	return nil
}

// String formats the coordinate as "lat,lon"
func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lon)
}

// Route is an ordered sequence of coordinates
type Route []Coordinate

// Points converts the route for use with the spatial package
func (r Route) Points() []spatial.Point {
	points := make([]spatial.Point, len(r))
	for i, c := range r {
		points[i] = c.Point()
	}
	return points
}

// LengthMeters returns the great-circle path length of the route
func (r Route) LengthMeters() float64 {
	return spatial.PathLength(r.Points())
}

// FirstInvalid returns the index of the first out-of-range coordinate, or -1
func (r Route) FirstInvalid() int {
	for i, c := range r {
		if !c.Valid() {
			return i
		}
	}
	return -1
}
