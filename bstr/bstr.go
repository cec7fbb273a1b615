/*
Package bstr implements the byte-string type used as table keys.

A Bstr is a binary string with an explicit lifetime: it is created, may be
duplicated into an independently owned copy, and is finally released by its
owner. Containers which adopt a Bstr take over the duty of releasing it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bstr

import (
	"bytes"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Bstr is a byte-string. Comparison is binary, without case folding.
type Bstr struct {
	data     []byte
	released bool
}

// New creates a byte-string holding a copy of b.
func New(b []byte) *Bstr {
	return &Bstr{data: append([]byte(nil), b...)}
}

// FromString creates a byte-string from a Go string.
func FromString(s string) *Bstr {
	return &Bstr{data: []byte(s)}
}

// Len returns the length in bytes. A released or nil string has length 0.
func (b *Bstr) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Bytes returns the content of b. The slice is shared with b and must not
// be modified.
func (b *Bstr) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

func (b *Bstr) String() string {
	if b == nil {
		return ""
	}
	return string(b.data)
}

// Released reports whether Release has been called on b.
func (b *Bstr) Released() bool {
	return b != nil && b.released
}

// Dup creates an independently owned copy of b.
//
// Duplicating a nil or released byte-string fails with ErrReleased.
func (b *Bstr) Dup() (*Bstr, error) {
	if b == nil || b.released {
		return nil, ErrReleased
	}
	return New(b.data), nil
}

// Release drops the content of b. Releasing twice is a no-op, but is
// reported to the tracer as it hints at an ownership error.
func (b *Bstr) Release() {
	if b == nil {
		return
	}
	if b.released {
		tracer().Errorf("bstr: double release of byte-string")
		return
	}
	b.data = nil
	b.released = true
}

// Equal reports whether b and other hold the same bytes.
func (b *Bstr) Equal(other *Bstr) bool {
	return bytes.Equal(b.Bytes(), other.Bytes())
}

// EqualString reports whether b holds the bytes of s.
func (b *Bstr) EqualString(s string) bool {
	return string(b.Bytes()) == s
}

// Compare compares b and other lexicographically, as bytes.Compare does.
func (b *Bstr) Compare(other *Bstr) int {
	return bytes.Compare(b.Bytes(), other.Bytes())
}
