package list

import "iter"

// List is the set of operations shared by all backends.
//
// Operations which remove or look up an element return the element and a
// boolean, which is false if the list is empty or the index is out of range.
type List[T any] interface {
	// Push appends e at the tail.
	Push(e T) error
	// Pop removes and returns the tail element.
	Pop() (T, bool)
	// Shift removes and returns the head element.
	Shift() (T, bool)
	// Get returns the element at logical index i.
	Get(i int) (T, bool)
	// Replace overwrites the element at logical index i.
	Replace(i int, e T) error
	Size() int
	Empty() bool
	// IteratorReset places the embedded cursor at the head.
	IteratorReset()
	// IteratorNext returns the element under the embedded cursor and advances it.
	IteratorNext() (T, bool)
	// Values iterates from head to tail without touching the embedded cursor.
	Values() iter.Seq[T]
	// Clear removes all elements.
	Clear()
	// Destroy releases the list's storage. Payloads are not touched.
	Destroy()
}

var _ List[any] = (*Array[any])(nil)
var _ List[any] = (*Linked[any])(nil)

// New creates a list with the backend selected by cfg.
//
// The backend cannot be changed after construction.
func New[T any](cfg Config) (List[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	switch cfg.Backend {
	case LinkedBackend:
		l := NewLinked[T]()
		l.maxCapacity = cfg.MaxCapacity
		return l, nil
	default:
		return newArray[T](cfg.Capacity, cfg.MaxCapacity), nil
	}
}
