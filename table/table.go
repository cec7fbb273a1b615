/*
Package table implements an ordered table keyed by byte-strings.

Entries are kept in insertion order in an array list. Keys may repeat;
lookups scan linearly and return the value of the first matching key.
Tables are meant for small collections, such as the header lines of an HTTP
request, where a scan beats hashing.

Keys belong to the table: Add stores a copy of the caller's key, Adopt stores
the caller's key itself and takes over the duty of releasing it. Values are
never owned by the table. Clear and Destroy release keys, but callers have to
dispose of values on their own.

Tables are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package table

import (
	"fmt"
	"iter"

	"github.com/npillmayer/dslib/bstr"
	"github.com/npillmayer/dslib/list"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Table is an ordered multi-map from byte-string keys to values of type V.
type Table[V any] struct {
	list *list.Array[pair[V]]
}

// pair is one table entry; it occupies one slot of the backing list.
type pair[V any] struct {
	key   *bstr.Bstr
	value V
}

// New creates a table with initial room for size entries.
func New[V any](size int) (*Table[V], error) {
	return NewBounded[V](size, 0)
}

// NewBounded creates a table with initial room for size entries, which will
// never hold more than maxEntries entries. 0 means unbounded.
func NewBounded[V any](size, maxEntries int) (*Table[V], error) {
	l, err := list.NewBoundedArray[pair[V]](size, maxEntries)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	return &Table[V]{list: l}, nil
}

// Add appends an entry, storing a copy of key. The caller keeps ownership
// of key.
//
// If the entry cannot be added, the table is unchanged.
func (t *Table[V]) Add(key *bstr.Bstr, value V) error {
	if key == nil {
		return ErrIllegalArguments
	}
	dup, err := key.Dup()
	if err != nil {
		return fmt.Errorf("table: cannot copy key: %w", err)
	}
	if err := t.push(dup, value); err != nil {
		dup.Release()
		return err
	}
	return nil
}

// Adopt appends an entry, storing key itself. On success the table owns key
// and will release it; the caller must neither release nor modify it.
// On failure, ownership stays with the caller.
func (t *Table[V]) Adopt(key *bstr.Bstr, value V) error {
	if key == nil || key.Released() {
		return ErrIllegalArguments
	}
	return t.push(key, value)
}

func (t *Table[V]) push(key *bstr.Bstr, value V) error {
	if t.list == nil {
		return fmt.Errorf("%w: table has been destroyed", ErrIllegalArguments)
	}
	if err := t.list.Push(pair[V]{key: key, value: value}); err != nil {
		tracer().Errorf("table: cannot add entry %q: %v", key, err)
		return err
	}
	return nil
}

// Get returns the value of the first entry whose key equals key.
// A nil or released key matches nothing.
func (t *Table[V]) Get(key *bstr.Bstr) (V, bool) {
	if key == nil || key.Released() {
		var zero V
		return zero, false
	}
	return t.find(func(k *bstr.Bstr) bool { return k.Equal(key) })
}

// GetString returns the value of the first entry whose key equals s.
func (t *Table[V]) GetString(s string) (V, bool) {
	return t.find(func(k *bstr.Bstr) bool { return k.EqualString(s) })
}

func (t *Table[V]) find(match func(*bstr.Bstr) bool) (V, bool) {
	if t.list != nil {
		it := t.list.Iterator()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if match(p.key) {
				return p.value, true
			}
		}
	}
	var zero V
	return zero, false
}

// GetIndex returns key and value of the i-th entry in insertion order.
// The key is owned by the table.
func (t *Table[V]) GetIndex(i int) (*bstr.Bstr, V, bool) {
	if t.list != nil {
		if p, ok := t.list.Get(i); ok {
			return p.key, p.value, true
		}
	}
	var zero V
	return nil, zero, false
}

// Size returns the number of entries.
func (t *Table[V]) Size() int {
	if t == nil || t.list == nil {
		return 0
	}
	return t.list.Size()
}

// IteratorReset places the table's cursor at the first entry.
func (t *Table[V]) IteratorReset() {
	if t.list != nil {
		t.list.IteratorReset()
	}
}

// IteratorNext returns key and value of the entry under the cursor and
// advances the cursor. After the last entry it returns a nil key.
func (t *Table[V]) IteratorNext() (*bstr.Bstr, V) {
	if t.list != nil {
		if p, ok := t.list.IteratorNext(); ok {
			return p.key, p.value
		}
	}
	var zero V
	return nil, zero
}

// All iterates the entries in insertion order without touching the table's
// cursor.
func (t *Table[V]) All() iter.Seq2[*bstr.Bstr, V] {
	return func(yield func(*bstr.Bstr, V) bool) {
		if t.list == nil {
			return
		}
		for p := range t.list.Values() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Clear releases all keys and removes all entries. Values are not touched.
func (t *Table[V]) Clear() {
	if t.list == nil {
		return
	}
	for p := range t.list.Values() {
		p.key.Release()
	}
	t.list.Clear()
}

// Destroy clears the table and releases its storage. Calling Destroy on a
// destroyed table is a no-op.
func (t *Table[V]) Destroy() {
	if t == nil || t.list == nil {
		return
	}
	t.Clear()
	t.list.Destroy()
	t.list = nil
}
