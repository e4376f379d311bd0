package gring

import (
	"iter"
)

// Fixed capacity ring buffer. Pushing into
// a full ring overwrites the oldest element
type Ring[T any] struct {
	l   int
	s   []T
	pos int
}

func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{
		l:   0,
		s:   make([]T, capacity),
		pos: 0,
	}
}

func (r *Ring[T]) Size() int  { return r.l }
func (r *Ring[T]) Cap() int   { return len(r.s) }
func (r *Ring[T]) Full() bool { return r.l == len(r.s) }

// Pushes e and returns the element it evicted, if any
func (r *Ring[T]) Push(e T) (T, bool) {
	var evicted T
	full := r.Full()
	if full {
		evicted = r.s[r.pos]
	}
	r.s[r.pos] = e
	r.pos++
	if r.pos >= len(r.s) {
		r.pos = 0
	}
	if r.l < len(r.s) {
		r.l++
	}
	return evicted, full
}

// i-th element counting back from the newest one
func (r *Ring[T]) at(i int) T {
	real_pos := r.pos - 1 - i
	if real_pos < 0 {
		real_pos += len(r.s)
	}
	return r.s[real_pos]
}

// Iterates from the newest element to the oldest
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range r.l {
			if !yield(r.at(i)) {
				return
			}
		}
	}
}
