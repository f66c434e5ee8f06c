// Package describe computes per-column descriptive statistics on top of
// github.com/montanaflynn/stats.
package describe

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// Summary holds the descriptive statistics of one numeric sequence.
type Summary struct {
	Mean   float64
	Median float64
	Modes  []float64
}

// Describe computes mean, median and mode for values. It returns an
// error for an empty input so callers can skip all-missing columns
// instead of aborting.
func Describe(values []float64) (Summary, error) {
	mean, err := stats.Mean(values)
	if err != nil {
		return Summary{}, err
	}

	median, err := stats.Median(values)
	if err != nil {
		return Summary{}, err
	}

	modes, err := Modes(values)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Mean: mean, Median: median, Modes: modes}, nil
}

// Modes returns every value tied for the highest frequency, ascending.
//
// Tie policy: all tied values are reported. stats.Mode reports no mode
// when every value occurs equally often; under the all-ties policy each
// distinct value is modal in that case, so we fall back to the sorted
// distinct values.
func Modes(values []float64) ([]float64, error) {
	modes, err := stats.Mode(values)
	if err != nil {
		return nil, err
	}

	if len(modes) == 0 {
		return distinctSorted(values), nil
	}

	result := make([]float64, len(modes))
	copy(result, modes)
	sort.Float64s(result)
	return result, nil
}

func distinctSorted(values []float64) []float64 {
	seen := make(map[float64]struct{}, len(values))
	distinct := make([]float64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	sort.Float64s(distinct)
	return distinct
}
