package twoadic

import (
	"cmp"
	"iter"

	"github.com/rogpeppe/twoadic/seq"
)

// Compare returns -1, 0 or 1 according to whether a is
// less than, equal to or greater than b.
//
// Values of different shapes order as
// NegativeTail < MinusOne < Zero < PositiveTail, which is
// the integer order. Two values of the same tailed shape are
// compared by their expansions truncated just past the
// longer delimiter, most significant bit first; beyond that
// point both expansions are the same constant tail.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.shape.rank(), b.shape.rank()); c != 0 {
		return c
	}
	switch a.shape {
	case ShapeZero, ShapeMinusOne:
		return 0
	}
	tail := a.shape.tail()
	n := max(len(a.prefix), len(b.prefix)) + 2
	return seq.Compare(
		truncated(a.prefix, tail, n),
		truncated(b.prefix, tail, n),
	)
}

// Cmp is shorthand for Compare(v, w).
func (v Value) Cmp(w Value) int {
	return Compare(v, w)
}

// Less reports whether v orders before w.
func (v Value) Less(w Value) bool {
	return Compare(v, w) < 0
}

// truncated returns the first n bits, most significant first,
// of the expansion prefix, tail.Not(), tail, tail, ...
// It requires n >= len(prefix)+2.
func truncated(prefix []Bit, tail Bit, n int) iter.Seq[Bit] {
	// The expansion in order of significance is the prefix,
	// the delimiter, the first tail bit, then padding. Reversed,
	// the padding and first tail bit are one run.
	return seq.Concat(
		seq.RepeatN(tail, n-len(prefix)-1),
		seq.Once(tail.Not()),
		backward(prefix),
	)
}

func backward(bs []Bit) iter.Seq[Bit] {
	return func(yield func(Bit) bool) {
		for i := len(bs) - 1; i >= 0; i-- {
			if !yield(bs[i]) {
				return
			}
		}
	}
}
