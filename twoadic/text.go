package twoadic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned, wrapped, when text cannot be
// parsed as a Value.
var ErrSyntax = errors.New("invalid 2-adic syntax")

// String returns v in 2-adic notation: "..." followed by the
// tail bit, the delimiter and the prefix, most significant
// first. For example -8 is "...1000" and 7 is "...0111".
func (v Value) String() string {
	return string(v.AppendText(nil))
}

// AppendText implements encoding.TextAppender.
func (v Value) AppendText(buf []byte) []byte {
	tail := v.shape.tail()
	buf = append(buf, "..."...)
	buf = append(buf, '0'+byte(tail))
	switch v.shape {
	case ShapeZero, ShapeMinusOne:
		return buf
	}
	buf = append(buf, '0'+byte(tail.Not()))
	for i := len(v.prefix) - 1; i >= 0; i-- {
		buf = append(buf, '0'+byte(v.prefix[i]))
	}
	return buf
}

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return v.AppendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts anything that Parse accepts.
func (v *Value) UnmarshalText(data []byte) error {
	v1, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = v1
	return nil
}

// Parse parses s as a Value. It accepts 2-adic notation as
// produced by Value.String, where the tail bit may be
// written any number of times ("...11000" is the same as
// "...1000") and the dots may be written as a single
// ellipsis character. It also accepts a decimal integer
// that fits in an int64.
func Parse(s string) (Value, error) {
	digits, ok := strings.CutPrefix(s, "...")
	if !ok {
		digits, ok = strings.CutPrefix(s, "…")
	}
	if !ok {
		x, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("cannot parse %q: %w", s, ErrSyntax)
		}
		return FromInt64(x), nil
	}
	if digits == "" {
		return Value{}, fmt.Errorf("cannot parse %q: no digits after ellipsis: %w", s, ErrSyntax)
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c != '0' && c != '1' {
			return Value{}, fmt.Errorf("cannot parse %q: unexpected character %q: %w", s, c, ErrSyntax)
		}
	}
	tail := Bit(digits[0] - '0')
	digits = strings.TrimLeft(digits, digits[:1])
	if digits == "" {
		if tail == I {
			return MinusOne(), nil
		}
		return Zero(), nil
	}
	// digits[0] is now the delimiter.
	var prefix []Bit
	for i := len(digits) - 1; i > 0; i-- {
		prefix = append(prefix, Bit(digits[i]-'0'))
	}
	if tail == I {
		return Value{shape: ShapeNegative, prefix: prefix}, nil
	}
	return Value{shape: ShapePositive, prefix: prefix}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}
