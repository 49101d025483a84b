package harness

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes relative errors in percent.
type Stats struct {
	Max, Mean, Median float64
}

// Summarize returns the maximum, the arithmetic mean and the upper median
// (sorted[len/2]) of values. values is not modified.
//
// Errors: ErrInvalidPoints if values is empty.
func Summarize(values []float64) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, fmt.Errorf("Summarize: %w", ErrInvalidPoints)
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return Stats{
		Max:    floats.Max(values),
		Mean:   stat.Mean(values, nil),
		Median: sorted[len(sorted)/2],
	}, nil
}
