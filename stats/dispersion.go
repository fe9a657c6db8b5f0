package stats

import "math"

// Mean returns the arithmetic mean of values, skipping NaN cells. It returns
// 0 for an empty or all-NaN input.
func Mean(values []float64) float64 {
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// StdDev returns the sample standard deviation of values, skipping NaN
// cells. Fewer than two usable values yield 0.
func StdDev(values []float64) float64 {
	mean := Mean(values)
	var sum float64
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		d := v - mean
		sum += d * d
		n++
	}
	if n < 2 {
		return 0
	}
	return math.Sqrt(sum / float64(n-1))
}

// Range returns the minimum and maximum of values, skipping NaN cells.
// ok is false when no usable value exists.
func Range(values []float64) (min, max float64, ok bool) {
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			min, max = v, v
			ok = true
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}

// CoefficientOfVariation expresses std as a percentage of mean. A
// non-positive mean yields 0 rather than dividing by zero.
func CoefficientOfVariation(std, mean float64) float64 {
	if mean <= 0 {
		return 0
	}
	return std / mean * 100
}
