package seq

import (
	"cmp"
	"iter"
	"math"
)

type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Uint interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Int | Uint | Float
}

// Longest grid Seq will build
const MaxLen = 1 << 20

// Number of points in the half-open grid [floor, ceiling) with
// step delta, +Inf when delta is not positive or either bound is NaN
func Len[T Number](floor, ceiling, delta T) float64 {
	if !(delta > 0) {
		return math.Inf(1)
	}
	if !(ceiling > floor) {
		if math.IsNaN(float64(ceiling)) || math.IsNaN(float64(floor)) {
			return math.Inf(1)
		}
		return 0
	}
	return math.Ceil(float64(ceiling-floor) / float64(delta))
}

// Half-open grid [floor, ceiling) with step delta.
// Values are computed as floor + i*delta so float
// grids don't accumulate rounding error.
// Returns nil for empty grids and grids longer than MaxLen
func Seq[T Number](floor, ceiling, delta T) []T {
	n := Len(floor, ceiling, delta)
	if n == 0 || n > MaxLen {
		return nil
	}
	seq := make([]T, 0, int(n)+1)
	for i := 0; ; i++ {
		value := floor + T(i)*delta
		if value >= ceiling {
			break
		}
		seq = append(seq, value)
	}
	return seq
}

func SeqN[T Int | Uint](n T) []T {
	seq := make([]T, 0, int(n))
	var index T = 0
	for range cap(seq) {
		seq = append(seq, index)
		index++
	}
	return seq
}

// Index and value of the first maximum
func MaxInd[I any, T cmp.Ordered](it iter.Seq2[I, T]) (I, T) {
	var set bool
	var current_max T
	var current_max_ind I
	for i, v := range it {
		if !set || v > current_max {
			current_max_ind = i
			current_max = v
			set = true
		}
	}
	return current_max_ind, current_max
}

// Index and value of the first minimum
func MinInd[I any, T cmp.Ordered](it iter.Seq2[I, T]) (I, T) {
	var set bool
	var current_min T
	var current_min_ind I
	for i, v := range it {
		if !set || v < current_min {
			current_min_ind = i
			current_min = v
			set = true
		}
	}
	return current_min_ind, current_min
}
