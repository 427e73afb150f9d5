package choropleth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/mapkit/internal/stats"
)

func TestClassify_Quantile(t *testing.T) {
	bins, breaks, err := Classify([]float64{1, 2, 3, 4}, 2, stats.MethodQuantile)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 4}, breaks)
	assert.Equal(t, []int{0, 0, 1, 1}, bins)
}

func TestClassify_FisherJenks(t *testing.T) {
	values := []float64{1, 2, 3, 10, 11, 12}
	bins, breaks, err := Classify(values, 2, stats.MethodFisherJenks)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 12}, breaks)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, bins)
}

func TestClassify_Errors(t *testing.T) {
	_, _, err := Classify([]float64{1, 2}, 2, "equal_interval")
	assert.Error(t, err)

	_, _, err = Classify(nil, 2, stats.MethodQuantile)
	assert.Error(t, err)
}
