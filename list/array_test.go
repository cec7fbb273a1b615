package list

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestArrayGrowthKeepsOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l, err := NewArray[int](8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 16; i++ {
		if err := l.Push(i); err != nil {
			t.Fatalf("push %d failed: %v", i, err)
		}
	}
	if l.Capacity() < 16 {
		t.Errorf("expected capacity to at least double, is %d", l.Capacity())
	}
	for i := 0; i < 16; i++ {
		if e, ok := l.Get(i); !ok || e != i {
			t.Errorf("get(%d) = %d/%v, expected %d", i, e, ok, i)
		}
	}
}

func TestArrayGrowthOfWrappedWindow(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	l, _ := NewArray[int](4)
	for i := 0; i < 4; i++ {
		l.Push(i)
	}
	l.Shift()
	l.Shift()
	l.Push(4)
	l.Push(5) // window now wraps: slots hold 4 5 2 3
	if l.first != 2 || l.last != 2 || l.Capacity() != 4 {
		t.Fatalf("unexpected layout first=%d last=%d cap=%d", l.first, l.last, l.Capacity())
	}
	l.Push(6) // full: relinearize
	if l.first != 0 || l.Capacity() != 8 {
		t.Errorf("expected relinearized window at slot 0 in 8 slots, have first=%d cap=%d", l.first, l.Capacity())
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5, 6}, l.elements[:5]); diff != "" {
		t.Errorf("unexpected slots (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5, 6}, slices.Collect(l.Values())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
}

func TestArrayPopClearsSlot(t *testing.T) {
	l, _ := NewArray[*int](2)
	x, y := 1, 2
	l.Push(&x)
	l.Push(&y)
	l.Pop()
	l.Shift()
	for i, p := range l.elements {
		if p != nil {
			t.Errorf("expected slot %d to be cleared", i)
		}
	}
}

func TestArrayBoundedGrowthFailsCleanly(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	l, err := New[int](Config{Backend: ArrayBackend, Capacity: 2, MaxCapacity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr := l.(*Array[int])
	arr.Push(1)
	arr.Push(2)
	arr.Shift()
	arr.Push(3) // wraps
	if err := arr.Push(4); err != nil {
		t.Fatalf("expected growth up to the bound, have %v", err)
	}
	if arr.Capacity() != 3 {
		t.Errorf("expected capacity clamped to 3, is %d", arr.Capacity())
	}
	first, last, size := arr.first, arr.last, arr.size
	err = arr.Push(5)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, have %v", err)
	}
	if arr.first != first || arr.last != last || arr.size != size || arr.Capacity() != 3 {
		t.Errorf("failed push modified the buffer")
	}
	if diff := cmp.Diff([]int{2, 3, 4}, slices.Collect(arr.Values())); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
}

func TestArrayPushAfterDestroy(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	l, _ := NewArray[string](2)
	l.Push("a")
	l.Destroy()
	if l.Capacity() != 0 || !l.Empty() {
		t.Fatalf("expected destroyed array without slots")
	}
	if err := l.Push("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e, ok := l.Get(0); !ok || e != "b" {
		t.Errorf("expected b at head, have %q", e)
	}
}

func TestExternalIteratorsAreIndependent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	l, _ := NewArray[int](3)
	for i := 0; i < 7; i++ {
		l.Push(i * i)
	}
	l.Shift()
	l.IteratorReset()
	l.IteratorNext()
	var it1, it2 ArrayIterator[int]
	it1.Init(l)
	it2.Init(l)
	var seq1, seq2 []int
	// advance the two iterators in lock-step with different strides
	for {
		e, ok := it1.Next()
		if !ok {
			break
		}
		seq1 = append(seq1, e)
		if len(seq1)%2 == 0 {
			if e, ok := it2.Next(); ok {
				seq2 = append(seq2, e)
			}
		}
	}
	for e, ok := it2.Next(); ok; e, ok = it2.Next() {
		seq2 = append(seq2, e)
	}
	if diff := cmp.Diff(seq1, seq2); diff != "" {
		t.Errorf("iterators disagree (-it1 +it2):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 4, 9, 16, 25, 36}, seq1); diff != "" {
		t.Errorf("unexpected sequence (-want +got):\n%s", diff)
	}
	if e, ok := l.IteratorNext(); !ok || e != 4 {
		t.Errorf("external iterators disturbed embedded cursor, next is %d/%v", e, ok)
	}
	var unbound ArrayIterator[int]
	if _, ok := unbound.Next(); ok {
		t.Errorf("expected unbound iterator to be exhausted")
	}
}

func TestExternalIteratorSurvivesGrowth(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	l, _ := NewArray[int](2)
	l.Push(0)
	l.Push(1)
	it := l.Iterator()
	it.Next()
	l.Push(2) // grows
	var rest []int
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		rest = append(rest, e)
	}
	if diff := cmp.Diff([]int{1, 2}, rest); diff != "" {
		t.Errorf("unexpected tail after growth (-want +got):\n%s", diff)
	}
}

func TestNewBoundedArray(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if _, err := NewBoundedArray[int](4, 2); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for bound below capacity, have %v", err)
	}
	l, err := NewBoundedArray[int](1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Push(1)
	l.Push(2)
	if err := l.Push(3); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, have %v", err)
	}
	if l.Size() != 2 || l.Capacity() != 2 {
		t.Errorf("expected 2 elements in 2 slots, have %d in %d", l.Size(), l.Capacity())
	}
}
