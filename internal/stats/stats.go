// Package stats implements the distribution-shape heuristics behind
// the book's choropleth binning advice.
package stats

import (
	"math"
	"sort"
)

// Shape labels.
const (
	ShapeSymmetric   = "symmetric"
	ShapeRightSkewed = "right_skewed"
	ShapeLeftSkewed  = "left_skewed"
)

// Spread labels.
const (
	SpreadUniform   = "uniform"
	SpreadClustered = "clustered"
)

// Binning method labels.
const (
	MethodQuantile    = "quantile"
	MethodFisherJenks = "fisher_jenks"
)

// Heuristic thresholds. Distributions with |skewness| at or below
// skewSymmetricMax are called symmetric; value spacings whose
// coefficient of variation is at or below gapCVUniformMax are called
// uniform.
const (
	skewSymmetricMax = 0.5
	gapCVUniformMax  = 0.75
)

// Mean returns the arithmetic mean. Empty input yields 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation. Empty input yields 0.
func StdDev(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n))
}

// Skewness returns the adjusted Fisher-Pearson sample skewness.
// Fewer than 3 values or zero variance yields 0.
func Skewness(values []float64) float64 {
	n := float64(len(values))
	if n < 3 {
		return 0
	}
	mean := Mean(values)
	var m2, m3 float64
	for _, v := range values {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	if m2 == 0 {
		return 0
	}
	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// Quantile returns the p-th quantile (p in [0,1]) using linear
// interpolation over a sorted copy of values. Empty input yields 0.
func Quantile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := p * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		hi = n - 1
	}
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Shape classifies the distribution of values as symmetric or skewed.
func Shape(values []float64) string {
	skew := Skewness(values)
	switch {
	case skew > skewSymmetricMax:
		return ShapeRightSkewed
	case skew < -skewSymmetricMax:
		return ShapeLeftSkewed
	default:
		return ShapeSymmetric
	}
}

// Uniformity reports whether values are spread evenly across their
// range or bunched into clusters, judged by the coefficient of
// variation of the gaps between sorted values.
func Uniformity(values []float64) string {
	if gapCV(values) <= gapCVUniformMax {
		return SpreadUniform
	}
	return SpreadClustered
}

// RecommendBinning suggests a choropleth binning method. Evenly spread,
// symmetric data bins well by quantiles; skewed or clustered data gets
// Fisher-Jenks natural breaks. Degenerate inputs default to quantiles.
func RecommendBinning(values []float64) string {
	if len(values) < 3 || StdDev(values) == 0 {
		return MethodQuantile
	}
	if Shape(values) == ShapeSymmetric && Uniformity(values) == SpreadUniform {
		return MethodQuantile
	}
	return MethodFisherJenks
}

// gapCV returns the coefficient of variation of adjacent gaps in the
// sorted values. Evenly spaced values approach 0; clustered values
// exceed 1. Degenerate inputs yield 0.
func gapCV(values []float64) float64 {
	if len(values) < 3 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	gaps := make([]float64, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		gaps[i-1] = sorted[i] - sorted[i-1]
	}
	mean := Mean(gaps)
	if mean == 0 {
		return 0
	}
	return StdDev(gaps) / mean
}
