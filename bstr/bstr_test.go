package bstr

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDupIsIndependent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	orig := FromString("Host")
	cp, err := orig.Dup()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	orig.Release()
	if !orig.Released() || orig.Len() != 0 {
		t.Errorf("expected original to be released and empty")
	}
	if cp.Released() || cp.String() != "Host" {
		t.Errorf("expected copy to survive release of original, have %q", cp)
	}
}

func TestDupOfReleasedFails(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	b := FromString("x")
	b.Release()
	b.Release()
	if _, err := b.Dup(); err != ErrReleased {
		t.Errorf("expected ErrReleased, have %v", err)
	}
	var null *Bstr
	if _, err := null.Dup(); err != ErrReleased {
		t.Errorf("expected ErrReleased for nil string, have %v", err)
	}
}

func TestEqualityIsBinary(t *testing.T) {
	a := New([]byte("Content-Length"))
	if !a.Equal(FromString("Content-Length")) {
		t.Errorf("expected equal strings to compare equal")
	}
	if a.Equal(FromString("content-length")) {
		t.Errorf("expected comparison to be case sensitive")
	}
	if !a.EqualString("Content-Length") || a.EqualString("Content") {
		t.Errorf("EqualString mismatch")
	}
	if a.Compare(FromString("Content-Type")) >= 0 {
		t.Errorf("expected Content-Length < Content-Type")
	}
}

func TestNewCopiesInput(t *testing.T) {
	raw := []byte("abc")
	b := New(raw)
	raw[0] = 'x'
	if b.String() != "abc" {
		t.Errorf("expected New to copy its input, have %q", b)
	}
}
