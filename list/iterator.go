package list

// ArrayIterator walks an Array independently of the array's embedded cursor.
//
// The iterator is owned by the caller and only reads from the array. Any number
// of iterators may walk the same array. They remember logical indices, so a
// growing array does not confuse them, but removals at the head do.
type ArrayIterator[T any] struct {
	l     *Array[T]
	index int
}

// Iterator returns an iterator positioned at the head of l.
func (l *Array[T]) Iterator() ArrayIterator[T] {
	return ArrayIterator[T]{l: l}
}

// Init binds it to l and positions it at the head.
func (it *ArrayIterator[T]) Init(l *Array[T]) {
	it.l = l
	it.index = 0
}

// Next returns the next element and advances the iterator. The boolean is false
// once all elements have been visited, or if the iterator is not bound to an array.
func (it *ArrayIterator[T]) Next() (T, bool) {
	if it.l == nil {
		var zero T
		return zero, false
	}
	e, ok := it.l.Get(it.index)
	if ok {
		it.index++
	}
	return e, ok
}
