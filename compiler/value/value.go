// Package value implements the constant pool of the compiler.
//
// Every literal the frontend produces becomes one of the value kinds here:
// an interned atom, a sign-magnitude integer or an IEEE-754 float.
// Atoms and big integers are interned through a Ctx, so identity comparison
// is enough everywhere downstream.
package value

import (
	"bytes"
	"math"
)

type (
	// Atom is a handle to an interned symbolic constant.
	// Ids are only meaningful within the Ctx that produced them.
	Atom uint32

	Sign int8

	// Int is a sign-magnitude integer of arbitrary size.
	// Handles are canonical within one Ctx: equal content is the same pointer.
	Int struct {
		sign Sign
		mag  []byte // big-endian, no leading zero byte
	}
)

const (
	Neg  Sign = -1
	Zero Sign = 0
	Pos  Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Neg:
		return "negative"
	case Zero:
		return "zero"
	case Pos:
		return "positive"
	}

	return "invalid"
}

func (x *Int) Sign() Sign { return x.sign }

// Magnitude returns the big-endian magnitude bytes.
// The slice is backed by the owning Ctx and must not be modified.
func (x *Int) Magnitude() []byte { return x.mag }

func (x *Int) IsZero() bool { return x.sign == Zero }

// Cmp compares numeric values: -1 if x < y, 0 if equal, 1 if x > y.
func (x *Int) Cmp(y *Int) int {
	if x.sign != y.sign {
		if x.sign < y.sign {
			return -1
		}

		return 1
	}

	c := cmpMag(x.mag, y.mag)

	if x.sign == Neg {
		return -c
	}

	return c
}

// Int64 converts the value to a native word.
// ok is false when the value does not fit.
func (x *Int) Int64() (v int64, ok bool) {
	u, ok := x.magUint64()
	if !ok {
		return 0, false
	}

	if x.sign == Neg {
		if u > 1<<63 {
			return 0, false
		}

		return -int64(u), true
	}

	if u > math.MaxInt64 {
		return 0, false
	}

	return int64(u), true
}

// Uint64 converts the value to an unsigned native word.
// ok is false when the value is negative or does not fit.
func (x *Int) Uint64() (v uint64, ok bool) {
	if x.sign == Neg {
		return 0, false
	}

	return x.magUint64()
}

func (x *Int) magUint64() (v uint64, ok bool) {
	if len(x.mag) > 8 {
		return 0, false
	}

	for _, d := range x.mag {
		v = v<<8 | uint64(d)
	}

	return v, true
}

func cmpMag(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}

		return 1
	}

	return bytes.Compare(a, b)
}
