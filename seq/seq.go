// Package seq provides helpers for building and comparing
// possibly infinite iter.Seq values.
package seq

import (
	"cmp"
	"iter"
)

// Once returns a sequence holding the single value x.
func Once[T any](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		yield(x)
	}
}

// Repeat returns an infinite sequence that yields x forever.
// Callers must stop ranging over it themselves.
func Repeat[T any](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(x) {
		}
	}
}

// RepeatN returns a sequence that yields x n times.
func RepeatN[T any](x T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range n {
			if !yield(x) {
				return
			}
		}
	}
}

// Concat returns a sequence that yields all the values of each
// sequence in turn. If one of the sequences is infinite, the
// sequences after it are never started.
func Concat[T any](its ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, it := range its {
			for x := range it {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// Map returns a sequence holding f applied to each value of it.
func Map[T, U any](it iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range it {
			if !yield(f(x)) {
				return
			}
		}
	}
}

// Take returns a slice holding at most the first n values of it.
// It is safe to use on infinite sequences.
func Take[T any](it iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	s := make([]T, 0, n)
	for x := range it {
		s = append(s, x)
		if len(s) == n {
			break
		}
	}
	return s
}

// Compare compares the two sequences lexicographically
// and returns -1, 0 or 1.
// At least one of the sequences must be finite.
func Compare[T cmp.Ordered](it0, it1 iter.Seq[T]) int {
	return CompareFunc(it0, it1, cmp.Compare[T])
}

// CompareFunc is like Compare but uses a custom
// comparison function on each pair of elements.
// A sequence that is a strict prefix of the other compares less.
func CompareFunc[T any](it0, it1 iter.Seq[T], cmp func(x, y T) int) int {
	next0, stop0 := iter.Pull(it0)
	defer stop0()
	next1, stop1 := iter.Pull(it1)
	defer stop1()
	for {
		x0, ok0 := next0()
		x1, ok1 := next1()
		switch {
		case !ok0 && !ok1:
			return 0
		case !ok0:
			return -1
		case !ok1:
			return 1
		}
		if c := cmp(x0, x1); c != 0 {
			return sign(c)
		}
	}
}

// CompareSlices compares two slices lexicographically
// and returns -1, 0 or 1.
func CompareSlices[T cmp.Ordered](s0, s1 []T) int {
	return CompareSlicesFunc(s0, s1, cmp.Compare[T])
}

// CompareSlicesFunc is like CompareSlices but uses a custom
// comparison function on each pair of elements.
func CompareSlicesFunc[T any](s0, s1 []T, cmp func(x, y T) int) int {
	for i := 0; i < len(s0) && i < len(s1); i++ {
		if c := cmp(s0[i], s1[i]); c != 0 {
			return sign(c)
		}
	}
	switch {
	case len(s0) == len(s1):
		return 0
	case len(s0) < len(s1):
		return -1
	}
	return 1
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}
