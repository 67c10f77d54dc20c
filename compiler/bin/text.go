package bin

import (
	"strconv"

	"github.com/ember-lang/ember/compiler/value"
)

// Textual form: the kind keyword, then only the fields meaningful for that
// kind, in fixed order: signed flag, then endianness, then unit.
//
//	integer, signed, little, unit = 16
//	bytes, unit = 8
//	utf16, big
//	utf8
//
// The fixed order keeps dumps deterministic for diffing and snapshots.
func (s Spec) AppendText(b []byte) []byte {
	k := s.Kind()

	b = append(b, k.String()...)

	switch k {
	case Integer:
		if s.Signed() {
			b = append(b, ", signed"...)
		}

		b = append(b, ", "...)
		b = s.Endian().AppendText(b)
		b = appendUnit(b, s.Unit())
	case Float:
		b = append(b, ", "...)
		b = s.Endian().AppendText(b)
		b = appendUnit(b, s.Unit())
	case Bytes:
		b = appendUnit(b, s.Unit())
	case Utf16, Utf32:
		b = append(b, ", "...)
		b = s.Endian().AppendText(b)
	}

	return b
}

func (s Spec) String() string {
	return string(s.AppendText(nil))
}

func appendUnit(b []byte, u int) []byte {
	b = append(b, ", unit = "...)

	return strconv.AppendInt(b, int64(u), 10)
}

// ParseSpec is the strict inverse of AppendText. Unknown fields, fields
// inapplicable to the parsed kind, fields out of order and units outside
// 1..255 are parse errors.
func ParseSpec(b []byte, st int) (s Spec, i int, err error) {
	i = value.SkipSpaces(b, st)

	w, j := value.Word(b, i)

	var k Kind

	switch w {
	case "integer":
		k = Integer
	case "float":
		k = Float
	case "bytes":
		k = Bytes
	case "utf8":
		k = Utf8
	case "utf16":
		k = Utf16
	case "utf32":
		k = Utf32
	default:
		return 0, st, value.NewParseError(i, value.ErrKeyword, "unknown specifier kind: %q", w)
	}

	i = j

	var (
		signed   bool
		end      value.Endian
		haveEnd  bool
		unit     int
		haveUnit bool
	)

	stage := 0

	for {
		j = value.SkipSpaces(b, i)

		if j >= len(b) || b[j] != ',' {
			break
		}

		j = value.SkipSpaces(b, j+1)

		w, e := value.Word(b, j)

		switch w {
		case "signed":
			if k != Integer {
				return 0, st, value.NewParseError(j, value.ErrField, "field signed is not valid for %v", k)
			}

			if stage > 0 {
				return 0, st, value.NewParseError(j, value.ErrField, "misplaced field signed")
			}

			signed = true
			stage = 1
			i = e
		case "big", "little", "native":
			if !hasEndian(k) {
				return 0, st, value.NewParseError(j, value.ErrField, "endianness is not valid for %v", k)
			}

			if stage > 1 {
				return 0, st, value.NewParseError(j, value.ErrField, "misplaced endianness")
			}

			end, _, _ = value.ParseEndian(b, j)
			haveEnd = true
			stage = 2
			i = e
		case "unit":
			if !hasUnit(k) {
				return 0, st, value.NewParseError(j, value.ErrField, "field unit is not valid for %v", k)
			}

			if stage > 2 {
				return 0, st, value.NewParseError(j, value.ErrField, "misplaced field unit")
			}

			i, unit, err = parseUnit(b, e)
			if err != nil {
				return 0, st, err
			}

			haveUnit = true
			stage = 3
		case "":
			return 0, st, value.NewParseError(j, value.ErrSyntax, "specifier field expected")
		default:
			return 0, st, value.NewParseError(j, value.ErrField, "unknown field: %q", w)
		}
	}

	if hasEndian(k) && !haveEnd {
		return 0, st, value.NewParseError(i, value.ErrSyntax, "missing endianness for %v", k)
	}

	if hasUnit(k) && !haveUnit {
		return 0, st, value.NewParseError(i, value.ErrSyntax, "missing unit for %v", k)
	}

	switch k {
	case Integer:
		s, _ = NewInteger(signed, end, unit)
	case Float:
		s, _ = NewFloat(end, unit)
	case Bytes:
		s, _ = NewBytes(unit)
	case Utf8:
		s = NewUtf8()
	case Utf16:
		s = NewUtf16(end)
	case Utf32:
		s = NewUtf32(end)
	}

	return s, i, nil
}

func parseUnit(b []byte, i int) (_ int, n int, err error) {
	j := value.SkipSpaces(b, i)

	if j >= len(b) || b[j] != '=' {
		return i, 0, value.NewParseError(j, value.ErrSyntax, "'=' expected after unit")
	}

	j = value.SkipSpaces(b, j+1)

	d := j

	for d < len(b) && b[d] >= '0' && b[d] <= '9' {
		if n <= 255 {
			n = n*10 + int(b[d]-'0')
		}

		d++
	}

	if d == j {
		return i, 0, value.NewParseError(j, value.ErrSyntax, "unit value expected")
	}

	if n < 1 || n > 255 {
		return i, 0, value.NewParseError(j, value.ErrUnitRange, "unit %s out of range 1..255", b[j:d])
	}

	return d, n, nil
}

func hasEndian(k Kind) bool {
	return k == Integer || k == Float || k == Utf16 || k == Utf32
}

func hasUnit(k Kind) bool {
	return k == Integer || k == Float || k == Bytes
}
