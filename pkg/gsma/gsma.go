package gsma

import (
	"errors"
	"fmt"

	"github.com/Robogera/tseries/pkg/gring"
	"golang.org/x/exp/constraints"
)

var (
	ERR_VALUE = errors.New("Bad value")
)

type Number interface {
	constraints.Float | constraints.Integer
}

// Simple moving average over the last
// capacity values
type SMA[T Number] struct {
	data    *gring.Ring[T]
	average float64
}

func NewSMA[T Number](capacity uint) (*SMA[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("Invalid capacity: %d. Error: %w", capacity, ERR_VALUE)
	}
	return &SMA[T]{
		data:    gring.NewRing[T](int(capacity)),
		average: 0,
	}, nil
}

// Pushes new_value and recomputes the average over the whole
// window, so a large sample stops affecting it once evicted
func (s *SMA[T]) Recalc(new_value T) float64 {
	s.data.Push(new_value)
	var sum float64
	for v := range s.data.All() {
		sum += float64(v)
	}
	s.average = sum / float64(s.data.Size())
	return s.average
}

func (s *SMA[T]) Show() float64 {
	return s.average
}
