package list

import (
	"fmt"
	"iter"
)

// Linked is a list backed by a singly-linked chain of nodes.
type Linked[T any] struct {
	first       *node[T]
	last        *node[T]
	size        int
	maxCapacity int      // 0 = unbounded
	cursor      *node[T] // embedded iterator, next node to report
}

type node[T any] struct {
	data T
	next *node[T]
}

// NewLinked creates an empty linked list.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{}
}

// Push appends e at the tail in O(1).
func (l *Linked[T]) Push(e T) error {
	if l.maxCapacity > 0 && l.size >= l.maxCapacity {
		tracer().Errorf("linked list cannot grow beyond %d nodes", l.maxCapacity)
		return fmt.Errorf("%w: limit is %d elements", ErrCapacityExceeded, l.maxCapacity)
	}
	n := &node[T]{data: e}
	if l.last == nil {
		l.first = n
	} else {
		l.last.next = n
	}
	l.last = n
	l.size++
	return nil
}

// Pop removes and returns the tail element. The chain has no back links,
// so Pop scans for the predecessor of the tail.
func (l *Linked[T]) Pop() (T, bool) {
	var zero T
	if l.first == nil {
		return zero, false
	}
	var prev *node[T]
	n := l.first
	for n.next != nil {
		prev, n = n, n.next
	}
	assert(n == l.last, "linked list: tail pointer out of sync")
	if prev == nil {
		l.first = nil
	} else {
		prev.next = nil
	}
	l.last = prev
	if l.cursor == n {
		l.cursor = nil
	}
	l.size--
	return n.data, true
}

// Shift removes and returns the head element in O(1).
func (l *Linked[T]) Shift() (T, bool) {
	var zero T
	n := l.first
	if n == nil {
		return zero, false
	}
	l.first = n.next
	if l.first == nil {
		l.last = nil
	}
	if l.cursor == n {
		l.cursor = n.next
	}
	n.next = nil
	l.size--
	return n.data, true
}

func (l *Linked[T]) nodeAt(i int) *node[T] {
	if i < 0 || i >= l.size {
		return nil
	}
	n := l.first
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// Get returns the element at index i in O(i).
func (l *Linked[T]) Get(i int) (T, bool) {
	n := l.nodeAt(i)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.data, true
}

// Replace overwrites the element at index i in O(i).
func (l *Linked[T]) Replace(i int, e T) error {
	n := l.nodeAt(i)
	if n == nil {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, l.size)
	}
	n.data = e
	return nil
}

// Size returns the number of elements.
func (l *Linked[T]) Size() int {
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *Linked[T]) Empty() bool {
	return l.first == nil
}

// IteratorReset places the embedded cursor at the head.
func (l *Linked[T]) IteratorReset() {
	l.cursor = l.first
}

// IteratorNext returns the element under the embedded cursor and advances it.
func (l *Linked[T]) IteratorNext() (T, bool) {
	n := l.cursor
	if n == nil {
		var zero T
		return zero, false
	}
	l.cursor = n.next
	return n.data, true
}

// Values iterates the elements from head to tail without touching the
// embedded cursor.
func (l *Linked[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.first; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Clear removes all elements.
func (l *Linked[T]) Clear() {
	n := l.first
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
	l.first, l.last, l.cursor = nil, nil, nil
	l.size = 0
}

// Destroy releases all nodes. Payloads are not touched.
func (l *Linked[T]) Destroy() {
	l.Clear()
}
