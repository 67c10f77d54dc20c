package value

import (
	"math"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Float is an IEEE-754 double-precision constant.
	// Equality is bitwise: +0.0 != -0.0 and NaN payloads are preserved.
	Float struct {
		bits uint64
	}
)

func FloatOf(v float64) Float {
	return Float{bits: math.Float64bits(v)}
}

func FloatFromBits(bits uint64) Float {
	return Float{bits: bits}
}

func (x Float) Bits() uint64 { return x.bits }

func (x Float) Value() float64 { return math.Float64frombits(x.bits) }

func (x Float) IsNaN() bool { return math.IsNaN(x.Value()) }

func (x Float) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	return e.AppendFormat(b, "%s", x)
}
