package twoadic

import "github.com/rogpeppe/twoadic/deque"

// Signed is satisfied by the signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// FromInt32 returns the 2-adic value of x: its 32-bit two's
// complement pattern, sign-extended forever.
func FromInt32(x int32) Value {
	return fromPattern(int64(x), 32)
}

// FromInt64 returns the 2-adic value of x: its 64-bit two's
// complement pattern, sign-extended forever.
func FromInt64(x int64) Value {
	return fromPattern(x, 64)
}

// FromInt returns the 2-adic value of x. The representation
// does not depend on the width of T, so FromInt(int8(-3))
// is equal to FromInt64(-3).
func FromInt[T Signed](x T) Value {
	return FromInt64(int64(x))
}

// fromPattern builds a value from the low width bits of x
// read most significant first: the leading run of sign bits
// is dropped, then the first bit that differs from it, which
// becomes the delimiter. The remaining bits form the prefix.
func fromPattern(x int64, width int) Value {
	var (
		shape Shape
		tail  Bit
	)
	switch {
	case x == -1:
		return MinusOne()
	case x == 0:
		return Zero()
	case x < 0:
		shape, tail = ShapeNegative, I
	default:
		shape, tail = ShapePositive, O
	}
	bitAt := func(i int) Bit {
		return Bit(uint64(x)>>uint(i)) & 1
	}
	i := width - 1
	for bitAt(i) == tail {
		i--
	}
	// Skip the delimiter.
	i--
	// Reading from the top down, pushing at the front
	// leaves the least significant bit first.
	var d deque.Deque[Bit]
	for ; i >= 0; i-- {
		d.PushFront(bitAt(i))
	}
	return Value{
		shape:  shape,
		prefix: d.Slice(),
	}
}
