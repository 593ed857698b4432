package twoadic

// Not returns the bitwise complement of v: every bit of
// its expansion, including the infinite tail, is flipped.
// For integers this is -v-1.
func (v Value) Not() Value {
	switch v.shape {
	case ShapeNegative:
		return Value{shape: ShapePositive, prefix: notEach(v.prefix)}
	case ShapeMinusOne:
		return Value{}
	case ShapeZero:
		return Value{shape: ShapeMinusOne}
	case ShapePositive:
		return Value{shape: ShapeNegative, prefix: notEach(v.prefix)}
	}
	panic("unreachable")
}
