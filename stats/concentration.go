package stats

import "sort"

// ConcentrationIndex computes a Gini-style inequality coefficient over the
// given shares: with the values sorted ascending and ranked from 1,
//
//	(2 * Σ(rank_i * value_i)) / (n * Σvalue_i) - (n+1)/n
//
// It is a descriptive statistic over whatever slice it is handed (in
// practice the visible top-N shares), not the canonical Gini over a full
// population. An empty or zero-sum input yields 0.
func ConcentrationIndex(shares []float64) float64 {
	n := len(shares)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, shares)
	sort.Float64s(sorted)

	var sum, weighted float64
	for i, v := range sorted {
		sum += v
		weighted += float64(i+1) * v
	}
	if sum == 0 {
		return 0
	}

	return (2*weighted)/(float64(n)*sum) - float64(n+1)/float64(n)
}
