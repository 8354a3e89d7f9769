package naming

import (
	"cmp"
	"fmt"
	"math/big"
)

// Ordinal is a version packed into one unsigned integer, 80 bits wide:
//
//	component 1  bits 64..127  (Hi)
//	component 2  bits 48..63   (Lo)
//	component 3  bits 32..47   (Lo)
//	component 4  bits 16..31   (Lo)
//
// Component 4 holds either a fourth numeric component or the character code
// of a trailing patch letter, so "1.2.3.100" and "1.2.3d" compare equal.
// Ordinals are only meaningful between versions parsed by the same rule.
type Ordinal struct {
	Hi uint64
	Lo uint64
}

// maxField is the largest value a 16-bit component field can hold.
const maxField = 1<<16 - 1

// PackOrdinal builds an Ordinal from its four components.
func PackOrdinal(c1 uint64, c2, c3, c4 uint16) Ordinal {
	return Ordinal{
		Hi: c1,
		Lo: uint64(c2)<<48 | uint64(c3)<<32 | uint64(c4)<<16,
	}
}

// Components unpacks the four fields of o.
func (o Ordinal) Components() (c1 uint64, c2, c3, c4 uint16) {
	return o.Hi, uint16(o.Lo >> 48), uint16(o.Lo >> 32), uint16(o.Lo >> 16)
}

// Compare returns -1, 0 or +1 as o is less than, equal to or greater than other.
func (o Ordinal) Compare(other Ordinal) int {
	if c := cmp.Compare(o.Hi, other.Hi); c != 0 {
		return c
	}
	return cmp.Compare(o.Lo, other.Lo)
}

// Int returns the ordinal as a single integer.
func (o Ordinal) Int() *big.Int {
	n := new(big.Int).SetUint64(o.Hi)
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(o.Lo))
}

// String renders the four fields dotted, e.g. "1.2.3.0".
func (o Ordinal) String() string {
	c1, c2, c3, c4 := o.Components()
	return fmt.Sprintf("%d.%d.%d.%d", c1, c2, c3, c4)
}
