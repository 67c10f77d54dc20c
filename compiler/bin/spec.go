// Package bin defines the segment specifier of binary matches and
// constructions: how one contiguous run of bits is interpreted.
//
// A specifier is a single packed word. Constructors zero every bit the kind
// does not use, so logically equal specifiers are bit-identical and == on
// the word is structural equality. That lets later passes fold duplicate
// segments with a plain comparison instead of interning.
package bin

import (
	"fmt"

	"tlog.app/go/errors"
	"tlog.app/go/tlog/tlwire"

	"github.com/ember-lang/ember/compiler/value"
)

type (
	Kind uint8

	// Spec is a packed segment descriptor.
	//
	// bits 0..2  kind
	// bit  3     signed (Integer only)
	// bits 4..5  endianness (Integer, Float, Utf16, Utf32)
	// bits 8..15 unit (Integer, Float, Bytes)
	Spec uint64
)

const (
	Integer Kind = iota
	Float
	Bytes
	Utf8
	Utf16
	Utf32
)

const (
	kindMask = 0x7

	signedBit = 1 << 3

	endianShift = 4
	endianMask  = 0x3

	unitShift = 8
	unitMask  = 0xff
)

func NewInteger(signed bool, e value.Endian, unit int) (Spec, error) {
	s, err := pack(Integer, e, unit)
	if err != nil {
		return 0, err
	}

	if signed {
		s |= signedBit
	}

	return s, nil
}

func NewFloat(e value.Endian, unit int) (Spec, error) {
	return pack(Float, e, unit)
}

// NewBytes creates a raw bytes segment. A unit of 8 denotes whole-byte
// alignment, any other value denotes sub-byte bit-packing.
func NewBytes(unit int) (Spec, error) {
	if unit < 1 || unit > 255 {
		return 0, errors.New("unit out of range: %d", unit)
	}

	return Spec(Bytes) | Spec(unit)<<unitShift, nil
}

func NewUtf8() Spec {
	return Spec(Utf8)
}

func NewUtf16(e value.Endian) Spec {
	s, _ := pack(Utf16, e, 0)
	return s
}

func NewUtf32(e value.Endian) Spec {
	s, _ := pack(Utf32, e, 0)
	return s
}

func pack(k Kind, e value.Endian, unit int) (Spec, error) {
	if e > value.Native {
		return 0, errors.New("invalid endianness: %d", e)
	}

	if k == Utf16 || k == Utf32 {
		return Spec(k) | Spec(e)<<endianShift, nil
	}

	if unit < 1 || unit > 255 {
		return 0, errors.New("unit out of range: %d", unit)
	}

	return Spec(k) | Spec(e)<<endianShift | Spec(unit)<<unitShift, nil
}

func (s Spec) Kind() Kind {
	return Kind(s & kindMask)
}

// Signed reports the signedness of an Integer segment.
// Panics for any other kind: reading an inapplicable field is an
// invariant violation upstream, not a recoverable condition.
func (s Spec) Signed() bool {
	if s.Kind() != Integer {
		panic(fmt.Sprintf("signedness of %v segment", s.Kind()))
	}

	return s&signedBit != 0
}

func (s Spec) Endian() value.Endian {
	switch s.Kind() {
	case Integer, Float, Utf16, Utf32:
		return value.Endian(s >> endianShift & endianMask)
	}

	panic(fmt.Sprintf("endianness of %v segment", s.Kind()))
}

func (s Spec) Unit() int {
	switch s.Kind() {
	case Integer, Float, Bytes:
		return int(s >> unitShift & unitMask)
	}

	panic(fmt.Sprintf("unit of %v segment", s.Kind()))
}

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Bytes:
		return "bytes"
	case Utf8:
		return "utf8"
	case Utf16:
		return "utf16"
	case Utf32:
		return "utf32"
	}

	return "invalid"
}

func (s Spec) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendFormat(b, "%s", s)
}
