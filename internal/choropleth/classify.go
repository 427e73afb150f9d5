package choropleth

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/mapkit/internal/stats"
)

// Classify assigns each value a bin index in [0, k) using the given
// binning method ("quantile" or "fisher_jenks"), and returns the bin
// upper bounds alongside the assignments.
func Classify(values []float64, k int, method string) ([]int, []float64, error) {
	var breaks []float64
	var err error

	switch method {
	case stats.MethodQuantile:
		breaks, err = stats.QuantileBreaks(values, k)
	case stats.MethodFisherJenks:
		breaks, err = stats.JenksBreaks(values, k)
	default:
		return nil, nil, eris.Errorf("choropleth: unknown binning method %q", method)
	}
	if err != nil {
		return nil, nil, err
	}

	bins := make([]int, len(values))
	for i, v := range values {
		bins[i] = binIndex(v, breaks)
	}
	return bins, breaks, nil
}

// binIndex returns the first bin whose upper bound contains v. Values
// above the last break land in the last bin.
func binIndex(v float64, breaks []float64) int {
	for i, upper := range breaks {
		if v <= upper {
			return i
		}
	}
	return len(breaks) - 1
}
