package timeseries

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/Robogera/tseries/pkg/enums"
	"gonum.org/v1/gonum/interp"
)

// Returns a new TimeSeries keyed by query with values linearly
// interpolated from ts. Queries outside the stored range take the
// nearest boundary value. Stored times must be sorted ascending.
//
// A flat segment yields its left value. A zero width segment, only
// possible with unsorted times, yields ±Inf or NaN.
func (ts *TimeSeries[T]) Interpolate(query []T) *TimeSeries[T] {
	values := make([]float64, len(query))
	for i, t := range query {
		values[i] = ts.interpolate(t)
	}
	return &TimeSeries[T]{
		times:  slices.Clone(query),
		values: values,
	}
}

func (ts *TimeSeries[T]) interpolate(t T) float64 {
	n := len(ts.times)
	if n == 0 {
		return math.NaN()
	}

	// first stored time strictly after t
	right_index := sort.Search(n, func(i int) bool { return ts.times[i] > t })
	if right_index == n {
		return ts.values[n-1]
	}
	if right_index == 0 {
		return ts.values[0]
	}
	left_index := right_index - 1

	time_delta := float64(ts.times[right_index]) - float64(ts.times[left_index])
	value_delta := ts.values[right_index] - ts.values[left_index]
	step := (float64(t) - float64(ts.times[left_index])) * value_delta / time_delta

	return ts.values[left_index] + step
}

// Same as Interpolate but with a choice of interpolator. Everything
// except linear is fitted with gonum/interp and needs at least two
// samples with strictly increasing times
func (ts *TimeSeries[T]) InterpolateWith(query []T, method enums.Method) (*TimeSeries[T], error) {
	var predictor interp.FittablePredictor
	switch method {
	case enums.MethodLinear:
		return ts.Interpolate(query), nil
	case enums.MethodConstant:
		predictor = &interp.PiecewiseConstant{}
	case enums.MethodAkima:
		predictor = &interp.AkimaSpline{}
	case enums.MethodFritschButland:
		predictor = &interp.FritschButland{}
	default:
		return nil, fmt.Errorf("Method %q: %w", method.Value, ERR_UNKNOWN_METHOD)
	}

	if len(ts.times) < 2 {
		return nil, fmt.Errorf(
			"%s needs at least 2 samples, got %d: %w",
			method, len(ts.times), ERR_TOO_FEW_SAMPLES)
	}

	xs := make([]float64, len(ts.times))
	for i, t := range ts.times {
		if i > 0 && ts.times[i-1] >= t {
			return nil, fmt.Errorf("At index %d: %w", i, ERR_NOT_STRICTLY_SORTED)
		}
		xs[i] = float64(t)
	}

	if err := predictor.Fit(xs, ts.values); err != nil {
		return nil, fmt.Errorf("Unable to fit %s: %w", method, err)
	}

	values := make([]float64, len(query))
	for i, t := range query {
		values[i] = predictor.Predict(float64(t))
	}
	return &TimeSeries[T]{
		times:  slices.Clone(query),
		values: values,
	}, nil
}
