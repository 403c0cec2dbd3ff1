package stats

import "math"

// Summary holds basic descriptive statistics of a series
type Summary struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	Sum   float64
}

// Range returns Max - Min
func (s Summary) Range() float64 {
	return s.Max - s.Min
}

// Summarize computes count, min, max, mean and sum in one pass.
// An empty series yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{Count: len(values), Min: values[0], Max: values[0]}
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Sum += v
	}
	s.Mean = s.Sum / float64(len(values))
	return s
}

// AllFinite reports whether no value is NaN or ±Inf
func AllFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// PositiveDeltaSum returns the cumulative sum of positive differences between
// consecutive values (total ascent for an elevation series)
func PositiveDeltaSum(values []float64) float64 {
	var gain float64
	for i := 1; i < len(values); i++ {
		if d := values[i] - values[i-1]; d > 0 {
			gain += d
		}
	}
	return gain
}

// Round rounds v to the given number of decimal places
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
