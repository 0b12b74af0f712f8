package date

import (
	"iter"
	"slices"
)

type point[T any] struct {
	day   Date
	value T
}

// History is a series of values by day, in chronological order, with at most one value per
// day. Its zero value is an empty history.
type History[T any] struct {
	points []point[T]
}

func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.points, day, func(p point[T], day Date) int { return p.day.Compare(day) })
}

// Append sets the value of day, replacing the previous value of that day if any. Days can be
// appended in any order.
func (h *History[T]) Append(day Date, value T) *History[T] {
	i, found := h.search(day)
	if found {
		h.points[i].value = value
		return h
	}
	h.points = slices.Insert(h.points, i, point[T]{day, value})
	return h
}

// Len returns the number of days in the history.
func (h *History[T]) Len() int { return len(h.points) }

// Values iterates over the days and their value, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for _, p := range h.points {
			if !yield(p.day, p.value) {
				return
			}
		}
	}
}

// ValueAsOf returns the value of day, or else the value of the closest day before it.
// It returns false when the history starts after day.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := h.search(day)
	switch {
	case found:
		return h.points[i].value, true
	case i > 0:
		return h.points[i-1].value, true
	}
	var zero T
	return zero, false
}
