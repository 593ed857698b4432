package twoadic

import "fmt"

// Bit is a single binary digit. O orders before I.
type Bit uint8

const (
	O Bit = 0
	I Bit = 1
)

// Not returns the complement of b.
func (b Bit) Not() Bit {
	return b ^ 1
}

// Valid reports whether b is O or I.
func (b Bit) Valid() bool {
	return b <= I
}

func (b Bit) String() string {
	switch b {
	case O:
		return "0"
	case I:
		return "1"
	}
	return fmt.Sprintf("Bit(%d)", uint8(b))
}

// GoString implements fmt.GoStringer.
func (b Bit) GoString() string {
	switch b {
	case O:
		return "twoadic.O"
	case I:
		return "twoadic.I"
	}
	return fmt.Sprintf("twoadic.Bit(%d)", uint8(b))
}

func mustValid(bs []Bit) {
	for i, b := range bs {
		if !b.Valid() {
			panic(fmt.Sprintf("twoadic: invalid bit %d at prefix index %d", uint8(b), i))
		}
	}
}

func notEach(bs []Bit) []Bit {
	if len(bs) == 0 {
		return nil
	}
	nbs := make([]Bit, len(bs))
	for i, b := range bs {
		nbs[i] = b.Not()
	}
	return nbs
}
