// Package layout maps constant value kinds to the runtime term
// representation code generation must materialize.
//
// The mapping is a fixed table keyed by kind and target pointer width and
// has to agree with the runtime's tagged-value scheme bit for bit.
package layout

import (
	"fmt"

	"github.com/ember-lang/ember/compiler/value"
)

type (
	// Kind is a constant value kind as the resolver sees it.
	Kind uint8

	// Class tells whether a value is carried inline in a tagged word
	// or behind a pointer to tagged heap storage.
	Class uint8

	// Tag identifies the runtime layout of the value.
	Tag uint8

	Repr struct {
		Class Class
		Tag   Tag
	}
)

const (
	Atom Kind = iota
	Fixnum
	BigInt
	Float
)

const (
	Immediate Class = iota
	Boxed
)

const (
	TagAtom Tag = iota
	TagFixnum
	TagBigInt
	TagFloat
)

// tagBits is the number of low bits the runtime reserves in an immediate.
const tagBits = 4

// Of returns the runtime representation of a value kind on a target with
// the given pointer width. Pure: the same inputs always map to the same
// representation. Unsupported widths and kinds panic.
func Of(k Kind, ptrBits int) Repr {
	if ptrBits != 32 && ptrBits != 64 {
		panic(fmt.Sprintf("unsupported pointer width: %d", ptrBits))
	}

	switch k {
	case Atom:
		return Repr{Class: Immediate, Tag: TagAtom}
	case Fixnum:
		return Repr{Class: Immediate, Tag: TagFixnum}
	case BigInt:
		return Repr{Class: Boxed, Tag: TagBigInt}
	case Float:
		// a double does not fit an immediate alongside the tag on 32 bit
		if ptrBits == 64 {
			return Repr{Class: Immediate, Tag: TagFloat}
		}

		return Repr{Class: Boxed, Tag: TagFloat}
	}

	panic(fmt.Sprintf("unsupported value kind: %d", k))
}

// OfInt classifies a concrete integer: Fixnum when it fits an immediate,
// BigInt otherwise.
func OfInt(x *value.Int, ptrBits int) Repr {
	if FitsFixnum(x, ptrBits) {
		return Of(Fixnum, ptrBits)
	}

	return Of(BigInt, ptrBits)
}

// FitsFixnum reports whether x can be carried as an immediate fixnum,
// leaving tagBits low bits for the runtime tag.
func FitsFixnum(x *value.Int, ptrBits int) bool {
	v, ok := x.Int64()
	if !ok {
		return false
	}

	n := uint(ptrBits - tagBits)

	return v >= -(int64(1)<<(n-1)) && v < int64(1)<<(n-1)
}

func (k Kind) String() string {
	switch k {
	case Atom:
		return "atom"
	case Fixnum:
		return "fixnum"
	case BigInt:
		return "bigint"
	case Float:
		return "float"
	}

	return "invalid"
}

func (c Class) String() string {
	switch c {
	case Immediate:
		return "immediate"
	case Boxed:
		return "boxed"
	}

	return "invalid"
}

func (t Tag) String() string {
	switch t {
	case TagAtom:
		return "atom"
	case TagFixnum:
		return "fixnum"
	case TagBigInt:
		return "bigint"
	case TagFloat:
		return "float"
	}

	return "invalid"
}
