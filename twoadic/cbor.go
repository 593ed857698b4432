package twoadic

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborValue is the CBOR form of a Value: a three element
// array holding the shape, the number of prefix bits and
// the prefix packed eight bits to a byte, least significant
// bit first.
type cborValue struct {
	_      struct{} `cbor:",toarray"`
	Shape  uint8
	Len    int
	Prefix []byte
}

// MarshalCBOR implements cbor.Marshaler.
func (v Value) MarshalCBOR() ([]byte, error) {
	packed := make([]byte, (len(v.prefix)+7)/8)
	for i, b := range v.prefix {
		packed[i/8] |= byte(b) << (i % 8)
	}
	return cbor.Marshal(cborValue{
		Shape:  uint8(v.shape),
		Len:    len(v.prefix),
		Prefix: packed,
	})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var cv cborValue
	if err := cbor.Unmarshal(data, &cv); err != nil {
		return fmt.Errorf("cannot unmarshal 2-adic value: %w", err)
	}
	shape := Shape(cv.Shape)
	switch shape {
	case ShapeZero, ShapeMinusOne:
		if cv.Len != 0 || len(cv.Prefix) != 0 {
			return fmt.Errorf("2-adic value with shape %v has non-empty prefix", shape)
		}
		*v = Value{shape: shape}
		return nil
	case ShapeNegative, ShapePositive:
	default:
		return fmt.Errorf("invalid 2-adic shape %d", cv.Shape)
	}
	if cv.Len < 0 || len(cv.Prefix) != (cv.Len+7)/8 {
		return fmt.Errorf("2-adic prefix length %d does not match %d encoded bytes", cv.Len, len(cv.Prefix))
	}
	if r := cv.Len % 8; r != 0 && cv.Prefix[len(cv.Prefix)-1]>>r != 0 {
		return fmt.Errorf("2-adic prefix has bits set beyond its length")
	}
	var prefix []Bit
	if cv.Len > 0 {
		prefix = make([]Bit, cv.Len)
		for i := range prefix {
			prefix[i] = Bit(cv.Prefix[i/8]>>(i%8)) & 1
		}
	}
	*v = Value{shape: shape, prefix: prefix}
	return nil
}
