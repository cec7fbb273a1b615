package list

import (
	"fmt"
	"iter"
	"math"
)

// Array is a list backed by a growable ring buffer.
//
// The occupied window starts at slot first and spans size slots, wrapping at
// the end of the slot slice. last is the slot the next Push writes to.
// Slots outside the window are zeroed.
type Array[T any] struct {
	elements    []T
	first       int
	last        int
	size        int
	maxCapacity int // 0 = unbounded
	cursor      int // embedded iterator, logical index
}

// NewArray creates an array list with room for size elements.
// size must be at least 1.
func NewArray[T any](size int) (*Array[T], error) {
	if err := (Config{Backend: ArrayBackend, Capacity: size}).validate(); err != nil {
		return nil, err
	}
	return newArray[T](size, 0), nil
}

// NewBoundedArray creates an array list with room for size elements, which
// will never hold more than maxCapacity elements. maxCapacity = 0 means unbounded.
func NewBoundedArray[T any](size, maxCapacity int) (*Array[T], error) {
	cfg := Config{Backend: ArrayBackend, Capacity: size, MaxCapacity: maxCapacity}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newArray[T](size, maxCapacity), nil
}

func newArray[T any](size, maxCapacity int) *Array[T] {
	return &Array[T]{
		elements:    make([]T, size),
		maxCapacity: maxCapacity,
	}
}

// Capacity returns the number of slots currently allocated.
func (l *Array[T]) Capacity() int {
	return len(l.elements)
}

// physical translates a logical index into a slot index.
func (l *Array[T]) physical(i int) int {
	return (l.first + i) % len(l.elements)
}

// grow at least doubles the slot slice, unless bounded by MaxCapacity, and
// moves the window to start at slot 0. If the new capacity cannot be established, the array is left
// untouched.
func (l *Array[T]) grow() error {
	capacity := len(l.elements)
	var newCap int
	switch {
	case capacity == 0:
		newCap = 1
	case capacity > math.MaxInt/2:
		newCap = math.MaxInt
	default:
		newCap = 2 * capacity
	}
	if l.maxCapacity > 0 && newCap > l.maxCapacity {
		newCap = l.maxCapacity
	}
	if newCap <= capacity {
		tracer().Errorf("array list cannot grow beyond %d slots", capacity)
		return fmt.Errorf("%w: limit is %d elements", ErrCapacityExceeded, capacity)
	}
	tracer().Debugf("array list grows from %d to %d slots", capacity, newCap)
	elements := make([]T, newCap)
	l.copyWindow(elements)
	l.elements = elements
	l.first = 0
	l.last = l.size
	return nil
}

// copyWindow copies the occupied window to dst, head first.
func (l *Array[T]) copyWindow(dst []T) {
	if l.size == 0 {
		return
	}
	if l.first+l.size <= len(l.elements) {
		copy(dst, l.elements[l.first:l.first+l.size])
		return
	}
	n := copy(dst, l.elements[l.first:])
	copy(dst[n:], l.elements[:l.size-n])
}

// Push appends e at the tail, growing the buffer if it is full.
// On failure the array is unchanged.
func (l *Array[T]) Push(e T) error {
	if l.size >= len(l.elements) {
		if err := l.grow(); err != nil {
			return err
		}
	}
	assert(l.last == l.physical(l.size), "array list: tail slot out of sync")
	l.elements[l.last] = e
	l.last = (l.last + 1) % len(l.elements)
	l.size++
	return nil
}

// Pop removes and returns the tail element.
func (l *Array[T]) Pop() (T, bool) {
	var zero T
	if l.size == 0 {
		return zero, false
	}
	pos := l.physical(l.size - 1)
	e := l.elements[pos]
	l.elements[pos] = zero
	l.last = pos
	l.size--
	return e, true
}

// Shift removes and returns the head element.
func (l *Array[T]) Shift() (T, bool) {
	var zero T
	if l.size == 0 {
		return zero, false
	}
	e := l.elements[l.first]
	l.elements[l.first] = zero
	l.first = (l.first + 1) % len(l.elements)
	l.size--
	if l.cursor > 0 {
		l.cursor-- // stay on the same element
	}
	return e, true
}

// Get returns the element at logical index i.
func (l *Array[T]) Get(i int) (T, bool) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, false
	}
	return l.elements[l.physical(i)], true
}

// Replace overwrites the element at logical index i.
func (l *Array[T]) Replace(i int, e T) error {
	if i < 0 || i >= l.size {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, l.size)
	}
	l.elements[l.physical(i)] = e
	return nil
}

// Size returns the number of elements.
func (l *Array[T]) Size() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *Array[T]) Empty() bool {
	return l.size == 0
}

// IteratorReset places the embedded cursor at the head.
func (l *Array[T]) IteratorReset() {
	l.cursor = 0
}

// IteratorNext returns the element under the embedded cursor and advances
// the cursor. The boolean is false after the tail has been passed.
func (l *Array[T]) IteratorNext() (T, bool) {
	e, ok := l.Get(l.cursor)
	if ok {
		l.cursor++
	}
	return e, ok
}

// Values iterates the elements from head to tail. It uses an ArrayIterator,
// leaving the embedded cursor alone.
func (l *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iterator()
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

// Clear removes all elements and keeps the allocated slots.
func (l *Array[T]) Clear() {
	clear(l.elements)
	l.first, l.last, l.size, l.cursor = 0, 0, 0, 0
}

// Destroy releases the slot slice. A destroyed array is empty and has no
// capacity; a later Push allocates anew.
func (l *Array[T]) Destroy() {
	l.elements = nil
	l.first, l.last, l.size, l.cursor = 0, 0, 0, 0
}
