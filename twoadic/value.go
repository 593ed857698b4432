// Package twoadic implements 2-adic integers whose binary
// expansion is eventually constant: an infinite sequence of bits,
// least significant first, that ends in an infinite run of zeros
// or of ones. The ordinary integers embed into these values by
// two's-complement sign extension.
//
// A Value is stored as one of four shapes: a finite prefix
// followed by a delimiter bit and a constant tail, or one of
// the two tails on its own (-1 and 0). Values are immutable
// and safe for concurrent use.
package twoadic

import (
	"fmt"
	"slices"
	"strings"
)

// Shape identifies which of the four forms a Value takes.
type Shape uint8

const (
	// ShapeZero is infinitely many zeros: the integer 0.
	ShapeZero Shape = iota

	// ShapeNegative is the prefix, then a zero delimiter,
	// then infinitely many ones. It covers the integers <= -2.
	ShapeNegative

	// ShapeMinusOne is infinitely many ones: the integer -1.
	ShapeMinusOne

	// ShapePositive is the prefix, then a one delimiter,
	// then infinitely many zeros. It covers the integers >= 1.
	ShapePositive
)

var shapeNames = [...]string{
	ShapeZero:     "Zero",
	ShapeNegative: "NegativeTail",
	ShapeMinusOne: "MinusOne",
	ShapePositive: "PositiveTail",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// rank returns the position of the shape in the
// order NegativeTail < MinusOne < Zero < PositiveTail.
func (s Shape) rank() int {
	switch s {
	case ShapeNegative:
		return 0
	case ShapeMinusOne:
		return 1
	case ShapeZero:
		return 2
	case ShapePositive:
		return 3
	}
	panic(fmt.Sprintf("twoadic: invalid shape %d", uint8(s)))
}

// tail returns the bit repeated forever at the end
// of every value of the shape.
func (s Shape) tail() Bit {
	switch s {
	case ShapeNegative, ShapeMinusOne:
		return I
	}
	return O
}

// Value is a 2-adic integer with an eventually constant
// expansion. The zero Value represents 0.
//
// Values compare equal with Equal when they have the same
// shape and the same prefix. Every sequence of bits is a
// valid prefix and no two (shape, prefix) pairs denote the
// same expansion, so this agrees with Compare.
type Value struct {
	shape Shape

	// prefix holds the bits before the delimiter,
	// least significant first. It is always nil for
	// ShapeZero and ShapeMinusOne and is never modified
	// once the Value has been created.
	prefix []Bit
}

// Zero returns the value 0.
func Zero() Value {
	return Value{}
}

// MinusOne returns the value -1.
func MinusOne() Value {
	return Value{shape: ShapeMinusOne}
}

// Negative returns the value whose expansion is the
// given prefix (least significant first), then a zero,
// then infinitely many ones. The result is always <= -2.
// It panics if any element of prefix is not O or I.
func Negative(prefix ...Bit) Value {
	mustValid(prefix)
	return Value{
		shape:  ShapeNegative,
		prefix: clonePrefix(prefix),
	}
}

// Positive returns the value whose expansion is the
// given prefix (least significant first), then a one,
// then infinitely many zeros. The result is always >= 1.
// It panics if any element of prefix is not O or I.
func Positive(prefix ...Bit) Value {
	mustValid(prefix)
	return Value{
		shape:  ShapePositive,
		prefix: clonePrefix(prefix),
	}
}

// Shape returns the shape of v.
func (v Value) Shape() Shape {
	return v.shape
}

// Prefix returns a copy of the bits of v that come
// before its delimiter, least significant first.
// It returns nil for 0 and -1.
func (v Value) Prefix() []Bit {
	return clonePrefix(v.prefix)
}

// PrefixLen returns the number of bits in the prefix of v.
func (v Value) PrefixLen() int {
	return len(v.prefix)
}

// Sign returns -1, 0 or 1 according to whether v is
// negative, zero or positive.
func (v Value) Sign() int {
	switch v.shape {
	case ShapeNegative, ShapeMinusOne:
		return -1
	case ShapePositive:
		return 1
	}
	return 0
}

// Equal reports whether v and w have the same shape and prefix.
func (v Value) Equal(w Value) bool {
	return v.shape == w.shape && slices.Equal(v.prefix, w.prefix)
}

// GoString returns a Go expression that builds v.
func (v Value) GoString() string {
	switch v.shape {
	case ShapeZero:
		return "twoadic.Zero()"
	case ShapeMinusOne:
		return "twoadic.MinusOne()"
	}
	var b strings.Builder
	if v.shape == ShapeNegative {
		b.WriteString("twoadic.Negative(")
	} else {
		b.WriteString("twoadic.Positive(")
	}
	for i, bit := range v.prefix {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(bit.GoString())
	}
	b.WriteString(")")
	return b.String()
}

func clonePrefix(p []Bit) []Bit {
	if len(p) == 0 {
		return nil
	}
	return slices.Clone(p)
}
