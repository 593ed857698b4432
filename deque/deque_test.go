package deque_test

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/twoadic/deque"
)

func TestEmpty(t *testing.T) {
	d := deque.New[int](10)
	qt.Assert(t, qt.Equals(d.Len(), 0))
	qt.Assert(t, qt.IsNil(d.Slice()))

	qt.Assert(t, qt.PanicMatches(func() { d.PopFront() }, `deque.PopFront called on empty deque`))
	qt.Assert(t, qt.PanicMatches(func() { d.PopBack() }, `deque.PopBack called on empty deque`))
	qt.Assert(t, qt.PanicMatches(func() { d.Get(0) }, `deque.Get called with index out of range`))
}

func TestZeroValue(t *testing.T) {
	var d deque.Deque[string]
	d.PushFront("b")
	d.PushFront("a")
	d.PushBack("c")
	qt.Assert(t, qt.DeepEquals(d.Slice(), []string{"a", "b", "c"}))
}

func TestPushFrontReverses(t *testing.T) {
	var d deque.Deque[int]
	for i := range 100 {
		d.PushFront(i)
	}
	qt.Assert(t, qt.Equals(d.Len(), 100))
	for i := range 100 {
		qt.Assert(t, qt.Equals(d.Get(i), 99-i))
	}
	qt.Assert(t, qt.DeepEquals(slices.Collect(d.Backward()), seqUpTo(100)))
}

func TestWrapAround(t *testing.T) {
	d := deque.New[int](4)
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)
	qt.Assert(t, qt.Equals(d.PopFront(), 1))
	d.PushBack(4)
	d.PushBack(5)
	// The backing slice is now full and wrapped.
	qt.Assert(t, qt.DeepEquals(d.Slice(), []int{2, 3, 4, 5}))
	qt.Assert(t, qt.DeepEquals(slices.Collect(d.All()), []int{2, 3, 4, 5}))
	qt.Assert(t, qt.DeepEquals(slices.Collect(d.Backward()), []int{5, 4, 3, 2}))

	// Growing must preserve the order of a wrapped buffer.
	d.PushFront(0)
	qt.Assert(t, qt.DeepEquals(d.Slice(), []int{0, 2, 3, 4, 5}))
}

func TestMixedOperations(t *testing.T) {
	var d deque.Deque[string]
	d.PushBack("A")
	d.PushBack("B")
	d.PushBack("C")
	qt.Assert(t, qt.Equals(d.PopFront(), "A"))
	d.PushFront("Z")
	qt.Assert(t, qt.Equals(d.PopBack(), "C"))
	d.PushBack("D")
	qt.Assert(t, qt.DeepEquals(d.Slice(), []string{"Z", "B", "D"}))
	qt.Assert(t, qt.Equals(d.Len(), 3))
}

func TestIterationStopsEarly(t *testing.T) {
	var d deque.Deque[int]
	for i := range 10 {
		d.PushBack(i)
	}
	var got []int
	for x := range d.All() {
		if x == 3 {
			break
		}
		got = append(got, x)
	}
	qt.Assert(t, qt.DeepEquals(got, []int{0, 1, 2}))
}

func TestIndexOutOfRange(t *testing.T) {
	var d deque.Deque[int]
	d.PushBack(1)
	qt.Assert(t, qt.PanicMatches(func() { d.Get(-1) }, `.*out of range`))
	qt.Assert(t, qt.PanicMatches(func() { d.Get(1) }, `.*out of range`))
}

func BenchmarkPushFront(b *testing.B) {
	for b.Loop() {
		var d deque.Deque[byte]
		for range 32 {
			d.PushFront(1)
		}
		d.Slice()
	}
}

func seqUpTo(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
