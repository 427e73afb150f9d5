package stats

import (
	"sort"

	"github.com/rotisserie/eris"
)

// QuantileBreaks returns the upper bound of each of k equal-count bins.
// The final break is the maximum value.
func QuantileBreaks(values []float64, k int) ([]float64, error) {
	if k < 1 {
		return nil, eris.Errorf("stats: need at least 1 bin, got %d", k)
	}
	if len(values) == 0 {
		return nil, eris.New("stats: no values to bin")
	}

	breaks := make([]float64, k)
	for i := 1; i <= k; i++ {
		breaks[i-1] = Quantile(values, float64(i)/float64(k))
	}
	return breaks, nil
}

// JenksBreaks returns the upper bound of each of k bins chosen by
// Fisher-Jenks natural breaks optimization, which minimizes the total
// within-bin squared deviation. k is capped at the number of values.
func JenksBreaks(values []float64, k int) ([]float64, error) {
	if k < 1 {
		return nil, eris.Errorf("stats: need at least 1 bin, got %d", k)
	}
	if len(values) == 0 {
		return nil, eris.New("stats: no values to bin")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if k > n {
		k = n
	}
	if k == 1 {
		return []float64{sorted[n-1]}, nil
	}

	// Prefix sums make the within-class sum of squared deviations for
	// any contiguous run an O(1) lookup.
	prefix := make([]float64, n+1)
	prefixSq := make([]float64, n+1)
	for i, v := range sorted {
		prefix[i+1] = prefix[i] + v
		prefixSq[i+1] = prefixSq[i] + v*v
	}
	ssd := func(lo, hi int) float64 { // [lo, hi)
		count := float64(hi - lo)
		sum := prefix[hi] - prefix[lo]
		sumSq := prefixSq[hi] - prefixSq[lo]
		return sumSq - sum*sum/count
	}

	// cost[j][i]: minimal total SSD splitting the first i values into j
	// classes. split[j][i] records where the last class begins.
	cost := make([][]float64, k+1)
	split := make([][]int, k+1)
	for j := range cost {
		cost[j] = make([]float64, n+1)
		split[j] = make([]int, n+1)
	}
	for i := 1; i <= n; i++ {
		cost[1][i] = ssd(0, i)
	}
	for j := 2; j <= k; j++ {
		for i := j; i <= n; i++ {
			best := -1.0
			bestAt := j - 1
			for m := j - 1; m < i; m++ {
				c := cost[j-1][m] + ssd(m, i)
				if best < 0 || c < best {
					best = c
					bestAt = m
				}
			}
			cost[j][i] = best
			split[j][i] = bestAt
		}
	}

	// Walk the split table back to bin upper bounds.
	breaks := make([]float64, k)
	end := n
	for j := k; j >= 1; j-- {
		breaks[j-1] = sorted[end-1]
		end = split[j][end]
	}
	return breaks, nil
}
