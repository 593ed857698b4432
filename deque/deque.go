// Package deque provides a slice-backed double-ended queue.
package deque

import (
	"iter"
	"math/bits"
)

// Deque holds a slice-backed ring of elements. Elements
// can be added and removed at both the front and
// the back.
//
// Elements are indexed from zero (the front)
// to the back. Pushing elements at the front
// will implicitly reindex all previous elements.
//
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	// buf holds the backing slice. Its length
	// is always a power of two or zero.
	buf []T

	// head holds the index into buf of the front element.
	head int

	// n holds the number of elements in the deque.
	n int
}

// New returns a deque with room for at least minCap elements.
func New[T any](minCap int) *Deque[T] {
	var d Deque[T]
	d.grow(minCap)
	return &d
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.n
}

// PushFront adds x at the front of the deque.
func (d *Deque[T]) PushFront(x T) {
	d.grow(d.n + 1)
	d.head = d.mod(d.head - 1)
	d.buf[d.head] = x
	d.n++
}

// PushBack adds x at the back of the deque.
func (d *Deque[T]) PushBack(x T) {
	d.grow(d.n + 1)
	d.buf[d.mod(d.head+d.n)] = x
	d.n++
}

// PopFront removes and returns the front element.
// It panics if the deque is empty.
func (d *Deque[T]) PopFront() T {
	if d.n == 0 {
		panic("deque.PopFront called on empty deque")
	}
	x := d.buf[d.head]
	d.buf[d.head] = *new(T)
	d.head = d.mod(d.head + 1)
	d.n--
	return x
}

// PopBack removes and returns the back element.
// It panics if the deque is empty.
func (d *Deque[T]) PopBack() T {
	if d.n == 0 {
		panic("deque.PopBack called on empty deque")
	}
	i := d.mod(d.head + d.n - 1)
	x := d.buf[i]
	d.buf[i] = *new(T)
	d.n--
	return x
}

// Get returns the i'th element; the front element
// is at index zero, the back at d.Len() - 1.
// It panics if i is out of range.
func (d *Deque[T]) Get(i int) T {
	if i < 0 || i >= d.n {
		panic("deque.Get called with index out of range")
	}
	return d.buf[d.mod(d.head+i)]
}

// All returns an iterator over the elements from front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range d.n {
			if !yield(d.buf[d.mod(d.head+i)]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := d.n - 1; i >= 0; i-- {
			if !yield(d.buf[d.mod(d.head+i)]) {
				return
			}
		}
	}
}

// Slice returns a newly allocated slice holding the elements
// from front to back. It returns nil when the deque is empty.
func (d *Deque[T]) Slice() []T {
	if d.n == 0 {
		return nil
	}
	s := make([]T, d.n)
	if end := d.head + d.n; end <= len(d.buf) {
		copy(s, d.buf[d.head:end])
	} else {
		k := copy(s, d.buf[d.head:])
		copy(s[k:], d.buf[:d.n-k])
	}
	return s
}

// grow ensures that the capacity is at least n.
func (d *Deque[T]) grow(n int) {
	if n <= len(d.buf) {
		return
	}
	newCap := 1 << bits.Len(uint(n-1))
	buf := make([]T, newCap)
	if d.n > 0 {
		if end := d.head + d.n; end <= len(d.buf) {
			copy(buf, d.buf[d.head:end])
		} else {
			k := copy(buf, d.buf[d.head:])
			copy(buf[k:], d.buf[:d.n-k])
		}
	}
	d.buf = buf
	d.head = 0
}

// mod returns x modulo the capacity. It relies on the
// capacity always being a power of two.
func (d *Deque[T]) mod(x int) int {
	return x & (len(d.buf) - 1)
}
