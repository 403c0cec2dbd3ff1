package spatial

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// Valid reports whether the point lies within the WGS84 degree ranges
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Centroid calculates the arithmetic centroid of a set of points
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	return Point{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}
}

// PathLength calculates the total length of a path (sequence of points) in meters
func PathLength(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}

	var totalDist float64
	for i := 1; i < len(points); i++ {
		totalDist += Distance(points[i-1], points[i])
	}

	return totalDist
}

// StraightLineDistance returns the distance between the first and last point
func StraightLineDistance(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}
	return Distance(points[0], points[len(points)-1])
}

// Sinuosity calculates path length / straight-line distance.
// The second return value is false when the ratio is undefined: fewer than
// two points or coincident endpoints (closed loops).
func Sinuosity(points []Point) (float64, bool) {
	straight := StraightLineDistance(points)
	if straight == 0 {
		return 0, false
	}
	ratio := PathLength(points) / straight
	if ratio < 1 {
		// floating point noise on straight paths
		ratio = 1
	}
	return ratio, true
}
