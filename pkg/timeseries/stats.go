package timeseries

import (
	"fmt"
	"math"
	"slices"

	"github.com/Robogera/tseries/pkg/gsma"
	"github.com/Robogera/tseries/pkg/seq"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary[T Number] struct {
	Size   int
	Mean   float64
	Median float64
	// NaN for a single sample
	StdDev float64
	Min    Item[T]
	Max    Item[T]
}

func (ts *TimeSeries[T]) Mean() (float64, error) {
	if len(ts.values) == 0 {
		return 0, fmt.Errorf("Mean: %w", ERR_EMPTY)
	}
	return stat.Mean(ts.values, nil), nil
}

// Middle value, or the average of the two
// middle values for an even number of samples.
// NaN if any value is NaN
func (ts *TimeSeries[T]) Median() (float64, error) {
	n := len(ts.values)
	if n == 0 {
		return 0, fmt.Errorf("Median: %w", ERR_EMPTY)
	}
	if floats.HasNaN(ts.values) {
		return math.NaN(), nil
	}
	sorted := slices.Sorted(ts.IterValues())
	return (sorted[(n-1)/2] + sorted[n/2]) / 2, nil
}

// Sample standard deviation
func (ts *TimeSeries[T]) StdDev() (float64, error) {
	if len(ts.values) < 2 {
		return 0, fmt.Errorf("StdDev needs at least 2 samples, got %d: %w", len(ts.values), ERR_TOO_FEW_SAMPLES)
	}
	return stat.StdDev(ts.values, nil), nil
}

// Sample with the smallest value, first one wins on ties
func (ts *TimeSeries[T]) Min() (Item[T], error) {
	if len(ts.values) == 0 {
		return Item[T]{}, fmt.Errorf("Min: %w", ERR_EMPTY)
	}
	index, value := seq.MinInd(slices.All(ts.values))
	return Item[T]{Time: ts.times[index], Value: value}, nil
}

// Sample with the largest value, first one wins on ties
func (ts *TimeSeries[T]) Max() (Item[T], error) {
	if len(ts.values) == 0 {
		return Item[T]{}, fmt.Errorf("Max: %w", ERR_EMPTY)
	}
	index, value := seq.MaxInd(slices.All(ts.values))
	return Item[T]{Time: ts.times[index], Value: value}, nil
}

func (ts *TimeSeries[T]) Summary() (Summary[T], error) {
	if len(ts.values) == 0 {
		return Summary[T]{}, fmt.Errorf("Summary: %w", ERR_EMPTY)
	}
	s := Summary[T]{Size: ts.Size(), StdDev: math.NaN()}
	s.Mean, _ = ts.Mean()
	s.Median, _ = ts.Median()
	if std_dev, err := ts.StdDev(); err == nil {
		s.StdDev = std_dev
	}
	s.Min, _ = ts.Min()
	s.Max, _ = ts.Max()
	return s, nil
}

// Returns a new TimeSeries with the same times and values replaced
// by a trailing moving average over window samples
func (ts *TimeSeries[T]) Smooth(window uint) (*TimeSeries[T], error) {
	sma, err := gsma.NewSMA[float64](window)
	if err != nil {
		return nil, fmt.Errorf("Smooth: %w", err)
	}
	values := make([]float64, 0, len(ts.values))
	for v := range ts.IterValues() {
		values = append(values, sma.Recalc(v))
	}
	return &TimeSeries[T]{
		times:  slices.Clone(ts.times),
		values: values,
	}, nil
}
