// Package timeseries stores numeric samples keyed by time and provides
// lookup, in-place updates, interpolation and summary statistics.
//
// Times are not required to be unique: lookups read the first match while
// updates overwrite every match. Interpolation assumes the times are sorted
// ascending, which the container does not enforce (see IsSorted).
package timeseries

import (
	"fmt"
	"iter"
	"slices"

	"github.com/Robogera/tseries/pkg/lazy"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

type Number interface {
	constraints.Float | constraints.Integer
}

type Item[T Number] struct {
	Time  T
	Value float64
}

type TimeSeries[T Number] struct {
	times  []T
	values []float64
}

// Returns a new TimeSeries owning copies of times and values.
// A nil values slice means all zeros
func New[T Number](times []T, values []float64) (*TimeSeries[T], error) {
	if values == nil {
		values = make([]float64, len(times))
	}
	if len(times) != len(values) {
		return nil, fmt.Errorf(
			"Got %d times and %d values. Error: %w",
			len(times), len(values), ERR_SHAPE_MISMATCH)
	}
	return &TimeSeries[T]{
		times:  slices.Clone(times),
		values: slices.Clone(values),
	}, nil
}

func (ts *TimeSeries[T]) Size() int {
	return len(ts.times)
}

// Returns the value paired with the first occurrence of time
func (ts *TimeSeries[T]) Get(time T) (float64, error) {
	index := slices.Index(ts.times, time)
	if index < 0 {
		return 0, fmt.Errorf("Time (%v): %w", time, ERR_KEY_NOT_FOUND)
	}
	return ts.values[index], nil
}

// Overwrites the value of every occurrence of time
func (ts *TimeSeries[T]) Set(time T, value float64) error {
	found := false
	for i, t := range ts.times {
		if t == time {
			ts.values[i] = value
			found = true
		}
	}
	if !found {
		return fmt.Errorf("Time (%v): %w", time, ERR_KEY_NOT_FOUND)
	}
	return nil
}

func (ts *TimeSeries[T]) Contains(time T) bool {
	return slices.Contains(ts.times, time)
}

// Iterates over the values in storage order
func (ts *TimeSeries[T]) All() iter.Seq[float64] {
	return ts.IterValues()
}

func (ts *TimeSeries[T]) IterTimes() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range ts.times {
			if !yield(t) {
				return
			}
		}
	}
}

func (ts *TimeSeries[T]) IterValues() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range ts.values {
			if !yield(v) {
				return
			}
		}
	}
}

func (ts *TimeSeries[T]) IterItems() iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		for i, t := range ts.times {
			if !yield(t, ts.values[i]) {
				return
			}
		}
	}
}

// Snapshot of the times. Later calls to Set
// are not visible through it
func (ts *TimeSeries[T]) Times() []T {
	return slices.Clone(ts.times)
}

// Snapshot of the values
func (ts *TimeSeries[T]) Values() []float64 {
	return slices.Clone(ts.values)
}

func (ts *TimeSeries[T]) Items() []Item[T] {
	items := make([]Item[T], 0, len(ts.times))
	for t, v := range ts.IterItems() {
		items = append(items, Item[T]{Time: t, Value: v})
	}
	return items
}

// Two series are equal when their items are equal pairwise, in order
func (ts *TimeSeries[T]) Equal(other *TimeSeries[T]) bool {
	if ts == nil || other == nil {
		return ts == other
	}
	return slices.Equal(ts.times, other.times) && floats.Equal(ts.values, other.values)
}

func (ts *TimeSeries[T]) IsSorted() bool {
	return slices.IsSorted(ts.times)
}

// Returns a node that evaluates to ts itself
func (ts *TimeSeries[T]) Lazy() *lazy.Node {
	return lazy.NewNode(lazy.Identity, lazy.Val(ts))
}
