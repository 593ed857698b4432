package twoadic

import (
	"iter"
	"slices"

	"github.com/rogpeppe/twoadic/seq"
)

// Bits returns the infinite binary expansion of v, least
// significant bit first. The sequence never ends, so callers
// must break out of any range loop over it. Each call to the
// returned function starts again from bit zero.
func (v Value) Bits() iter.Seq[Bit] {
	tail := v.shape.tail()
	switch v.shape {
	case ShapeZero, ShapeMinusOne:
		return seq.Repeat(tail)
	}
	return seq.Concat(
		slices.Values(v.prefix),
		seq.Once(tail.Not()),
		seq.Repeat(tail),
	)
}

// Head returns the first n bits of the expansion of v,
// least significant first.
func (v Value) Head(n int) []Bit {
	return seq.Take(v.Bits(), n)
}

// Tail returns the bit that the expansion of v
// eventually repeats forever.
func (v Value) Tail() Bit {
	return v.shape.tail()
}

// Bit returns bit i of the expansion of v, where bit 0 is the
// least significant. It panics if i is negative.
func (v Value) Bit(i int) Bit {
	if i < 0 {
		panic("twoadic: negative bit index")
	}
	tail := v.shape.tail()
	switch {
	case v.shape == ShapeZero || v.shape == ShapeMinusOne:
		return tail
	case i < len(v.prefix):
		return v.prefix[i]
	case i == len(v.prefix):
		return tail.Not()
	}
	return tail
}

// BitReader reads the expansion of a Value one bit at a time.
// Unlike the sequence returned by Value.Bits, it can be
// stopped and resumed without holding any goroutine or
// iterator state.
type BitReader struct {
	v   Value
	pos int
}

// Reader returns a BitReader positioned at bit zero of v.
func (v Value) Reader() *BitReader {
	return &BitReader{v: v}
}

// Next returns the next bit and advances the reader.
// The expansion is infinite, so Next always succeeds.
func (r *BitReader) Next() Bit {
	b := r.v.Bit(r.pos)
	r.pos++
	return b
}

// Pos returns the index of the bit that the next call
// to Next will return.
func (r *BitReader) Pos() int {
	return r.pos
}

// Reset moves the reader back to bit zero.
func (r *BitReader) Reset() {
	r.pos = 0
}
