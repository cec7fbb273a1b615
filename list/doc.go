/*
Package list provides a sequence container with two backends.

Array is a ring buffer over a growable slot slice. It appends at the tail and
removes from either end in O(1), and addresses elements by logical index,
where index 0 is always the current head. When the buffer is full, the next
Push doubles the capacity and re-linearizes the elements into a fresh slice.

Linked is a singly-linked chain of nodes. It appends and removes at the head
in O(1); removing the tail needs a scan for the predecessor.

Both implement List, so client code may be written without knowing the
backend. New selects the backend from a Config, once, at construction time.

Lists never own their payloads. Destroy releases the list's bookkeeping
(slots or nodes), but payloads are left to the caller.

Iteration:
  - every list carries one embedded cursor (IteratorReset/IteratorNext). It is
    shared state on the list and supports one traversal at a time;
  - Values returns an iter.Seq which does not touch the embedded cursor;
  - for Array, ArrayIterator is a caller-owned cursor. Any number of them may
    walk the same array side by side, as long as nobody mutates the array.

Shift keeps the embedded cursor on the element it would report next; if
that element is the one removed, the cursor moves on to its successor. Pop
of the element under the cursor exhausts the cursor. Both backends behave
alike in this respect.

Calling Replace on the element under an active cursor is allowed, but which
value the cursor then reports is up to the caller's ordering of calls.

Nothing in this package is safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package list

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
