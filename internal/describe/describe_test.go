package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		wantMean   float64
		wantMedian float64
		wantModes  []float64
	}{
		{
			name:       "all values equally frequent are all modal",
			values:     []float64{1, 2, 3, 4, 5},
			wantMean:   3,
			wantMedian: 3,
			wantModes:  []float64{1, 2, 3, 4, 5},
		},
		{
			name:       "two-way tie",
			values:     []float64{1, 1, 2, 2, 3},
			wantMean:   1.8,
			wantMedian: 2,
			wantModes:  []float64{1, 2},
		},
		{
			name:       "even length median averages the middle pair",
			values:     []float64{4, 4, 5, 6},
			wantMean:   4.75,
			wantMedian: 4.5,
			wantModes:  []float64{4},
		},
		{
			name:       "single value",
			values:     []float64{7},
			wantMean:   7,
			wantMedian: 7,
			wantModes:  []float64{7},
		},
		{
			name:       "unordered input",
			values:     []float64{3, 1, 2, 2, 1},
			wantMean:   1.8,
			wantMedian: 2,
			wantModes:  []float64{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := Describe(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantMean, summary.Mean, 1e-9)
			assert.InDelta(t, tt.wantMedian, summary.Median, 1e-9)
			assert.Equal(t, tt.wantModes, summary.Modes)
		})
	}
}

func TestDescribeEmptyInput(t *testing.T) {
	_, err := Describe(nil)
	assert.Error(t, err)

	_, err = Describe([]float64{})
	assert.Error(t, err)
}

func TestModesDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Modes(values)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}
