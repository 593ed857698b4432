package twoadic_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/twoadic/twoadic"
)

var (
	o = twoadic.O
	i = twoadic.I
)

var fromInt32Tests = []struct {
	x    int32
	want twoadic.Value
}{
	{-8, twoadic.Negative(o, o)}, // ...11000
	{-4, twoadic.Negative(o)},    // ...1100
	{-3, twoadic.Negative(i)},    // ...1101
	{-2, twoadic.Negative()},     // ...110
	{-1, twoadic.MinusOne()},     // ...11
	{0, twoadic.Zero()},          // ...00
	{1, twoadic.Positive()},      // ...001
	{2, twoadic.Positive(o)},     // ...0010
	{3, twoadic.Positive(i)},     // ...0011
	{7, twoadic.Positive(i, i)},  // ...00111
}

func TestFromInt32(t *testing.T) {
	for _, test := range fromInt32Tests {
		t.Run(fmt.Sprint(test.x), func(t *testing.T) {
			got := twoadic.FromInt32(test.x)
			qt.Assert(t, qt.CmpEquals(got, test.want), qt.Commentf("got %#v", got))
		})
	}
}

func TestFromInt32Scenarios(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(twoadic.FromInt32(-8).Head(6), []twoadic.Bit{o, o, o, i, i, i}))
	qt.Assert(t, qt.DeepEquals(twoadic.FromInt32(-2).Head(4), []twoadic.Bit{o, i, i, i}))
	qt.Assert(t, qt.DeepEquals(twoadic.FromInt32(-1).Head(3), []twoadic.Bit{i, i, i}))
	qt.Assert(t, qt.DeepEquals(twoadic.FromInt32(0).Head(3), []twoadic.Bit{o, o, o}))
	qt.Assert(t, qt.DeepEquals(twoadic.FromInt32(1).Head(3), []twoadic.Bit{i, o, o}))
	qt.Assert(t, qt.DeepEquals(twoadic.FromInt32(7).Head(5), []twoadic.Bit{i, i, i, o, o}))
}

func TestBitsMatchEveryInt8(t *testing.T) {
	for _, x := range allInt8() {
		got := twoadic.FromInt32(x).Head(8)
		qt.Assert(t, qt.DeepEquals(got, twosComplement(int64(x), 8)), qt.Commentf("x=%d", x))
	}
}

func TestSignExtension(t *testing.T) {
	xs := []int32{math.MinInt32, math.MinInt32 + 1, -65536, -3, 5, 1 << 20, math.MaxInt32}
	for _, x := range xs {
		got := twoadic.FromInt32(x).Head(64)
		qt.Assert(t, qt.DeepEquals(got, twosComplement(int64(x), 64)), qt.Commentf("x=%d", x))
	}
}

func TestFromInt32Extremes(t *testing.T) {
	minPrefix := make([]twoadic.Bit, 30)
	qt.Assert(t, qt.CmpEquals(twoadic.FromInt32(math.MinInt32), twoadic.Negative(minPrefix...)))

	maxPrefix := make([]twoadic.Bit, 30)
	for j := range maxPrefix {
		maxPrefix[j] = i
	}
	qt.Assert(t, qt.CmpEquals(twoadic.FromInt32(math.MaxInt32), twoadic.Positive(maxPrefix...)))
}

func TestWidthIndependent(t *testing.T) {
	xs := []int32{math.MinInt32, -1000, -2, -1, 0, 1, 12345, math.MaxInt32}
	got := make([]twoadic.Value, len(xs))
	want := make([]twoadic.Value, len(xs))
	for j, x := range xs {
		got[j] = twoadic.FromInt32(x)
		want[j] = twoadic.FromInt64(int64(x))
	}
	qt.Assert(t, qt.CmpEquals(got, want, cmp.Comparer(twoadic.Value.Equal)))

	qt.Assert(t, qt.CmpEquals(twoadic.FromInt(int8(-3)), twoadic.Negative(i)))
	qt.Assert(t, qt.CmpEquals(twoadic.FromInt(int16(300)), twoadic.FromInt32(300)))
	qt.Assert(t, qt.CmpEquals(twoadic.FromInt(int64(math.MinInt64)), twoadic.FromInt64(math.MinInt64)))
}

func TestFromInt64Extremes(t *testing.T) {
	qt.Assert(t, qt.Equals(twoadic.FromInt64(math.MinInt64).PrefixLen(), 62))
	qt.Assert(t, qt.DeepEquals(twoadic.FromInt64(math.MinInt64).Head(65), twosComplement(math.MinInt64, 65)))
	qt.Assert(t, qt.Equals(twoadic.FromInt64(math.MaxInt64).PrefixLen(), 62))
}
