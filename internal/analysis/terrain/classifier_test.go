package terrain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jengzang/route-terrain-go/internal/spatial"
)

func TestClassify_DecisionOrder(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name string
		in   Input
		want string
	}{
		{"mountainous", Input{PointCount: 3, ElevationRange: 1100, AvgSlope: 0, AvgElevation: 10}, Mountainous},
		{"hilly", Input{PointCount: 3, ElevationRange: 600, AvgSlope: 20, AvgElevation: 10}, Hilly},
		{"rugged", Input{PointCount: 3, ElevationRange: 300, AvgSlope: 20, AvgElevation: 900}, Rugged},
		{"undulating beats altitude", Input{PointCount: 3, ElevationRange: 100, AvgSlope: 9, AvgElevation: 900}, UndulatingPlain},
		{"lowland", Input{PointCount: 3, ElevationRange: 10, AvgSlope: 1, AvgElevation: 20}, Lowland},
		{"upland", Input{PointCount: 3, ElevationRange: 10, AvgSlope: 1, AvgElevation: 800}, Upland},
		{"flat plain", Input{PointCount: 3, ElevationRange: 10, AvgSlope: 1, AvgElevation: 150}, FlatPlain},
		{"boundary 1000 is hilly", Input{PointCount: 2, ElevationRange: 1000, AvgElevation: 100}, Hilly},
		{"boundary slope 8 is not undulating", Input{PointCount: 2, ElevationRange: 0, AvgSlope: 8, AvgElevation: 100}, FlatPlain},
		{"single point", Input{PointCount: 1, ElevationRange: 2000}, Unknown},
		{"nan slope", Input{PointCount: 4, AvgSlope: math.NaN()}, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in, th))
		})
	}
}

func TestClassify_IsTotal(t *testing.T) {
	th := DefaultThresholds()
	valid := map[string]bool{
		Mountainous: true, Hilly: true, Rugged: true, UndulatingPlain: true,
		Lowland: true, Upland: true, FlatPlain: true,
	}

	for _, r := range []float64{0, 50, 200, 201, 499, 501, 999, 1001, 5000} {
		for _, s := range []float64{-3, 0, 7.9, 8.1, 40} {
			for _, e := range []float64{-400, 0, 49, 50, 300, 500, 501, 8000} {
				got := Classify(Input{PointCount: 2, ElevationRange: r, AvgSlope: s, AvgElevation: e}, th)
				assert.Truef(t, valid[got], "range=%v slope=%v elev=%v gave %q", r, s, e, got)
				// deterministic
				assert.Equal(t, got, Classify(Input{PointCount: 2, ElevationRange: r, AvgSlope: s, AvgElevation: e}, th))
			}
		}
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	th := DefaultThresholds()
	th.MountainousRange = 400

	assert.Equal(t, Mountainous, Classify(Input{PointCount: 2, ElevationRange: 450, AvgElevation: 100}, th))
}

func TestClassifyRoute(t *testing.T) {
	th := DefaultThresholds()
	moscow := []spatial.Point{{Lat: 55.75, Lon: 37.61}, {Lat: 55.76, Lon: 37.62}}

	assert.Equal(t, FlatPlain, ClassifyRoute(moscow, []float64{100, 100}, th))
	assert.Equal(t, Lowland, ClassifyRoute(moscow, []float64{10, 12}, th))
	assert.Equal(t, Unknown, ClassifyRoute(moscow[:1], []float64{100}, th))
	assert.Equal(t, Unknown, ClassifyRoute(moscow, []float64{100}, th))
}

func TestInputFromProfile_ZeroLengthSegment(t *testing.T) {
	points := []spatial.Point{{Lat: 10, Lon: 10}, {Lat: 10, Lon: 10}, {Lat: 10.001, Lon: 10}}
	in := InputFromProfile(points, []float64{0, 50, 50})

	assert.Equal(t, 3, in.PointCount)
	assert.Equal(t, 50.0, in.ElevationRange)
	assert.Equal(t, 0.0, in.AvgSlope)
}

func TestProfile(t *testing.T) {
	th := DefaultThresholds()
	assert.Equal(t, Mountainous, Profile(1100, th))
	assert.Equal(t, Hilly, Profile(700, th))
	assert.Equal(t, Rugged, Profile(250, th))
	assert.Equal(t, Flat, Profile(0, th))
}
