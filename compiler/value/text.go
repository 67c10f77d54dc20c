package value

import (
	"bytes"
	"math"
	"strconv"
)

// Textual forms. Every kind renders as a kind keyword followed by the value
// body and parses back with the Parse counterpart. parse(print(v)) == v for
// every valid v. Ids in the atom form are informational: parsing re-interns
// the text, it never trusts a serialized id.

const hexDigits = "0123456789ABCDEF"

// AppendAtom renders an atom as its id and quoted text: atom 3 "ok".
func (c *Ctx) AppendAtom(b []byte, a Atom) []byte {
	b = append(b, "atom "...)
	b = strconv.AppendUint(b, uint64(a), 10)
	b = append(b, ' ')
	b = strconv.AppendQuote(b, c.AtomName(a))

	return b
}

// ParseAtom reconstructs an atom by re-interning the quoted text.
func (c *Ctx) ParseAtom(b []byte, st int) (a Atom, i int, err error) {
	i = SkipSpaces(b, st)

	i, err = Keyword(b, i, "atom")
	if err != nil {
		return 0, st, err
	}

	i = SkipSpaces(b, i)

	j := i
	for j < len(b) && b[j] >= '0' && b[j] <= '9' {
		j++
	}

	if j == i {
		return 0, st, NewParseError(i, ErrSyntax, "atom id expected")
	}

	i = SkipSpaces(b, j)

	q, qerr := strconv.QuotedPrefix(string(b[i:]))
	if qerr != nil {
		return 0, st, NewParseError(i, ErrSyntax, "quoted atom text expected")
	}

	text, qerr := strconv.Unquote(q)
	if qerr != nil {
		return 0, st, NewParseError(i, ErrSyntax, "malformed atom text")
	}

	return c.Atom(text), i + len(q), nil
}

// AppendText renders the integer: bigint 0, bigint 0x0102, bigint -0xFF.
// Hex digits come in pairs, one pair per magnitude byte.
func (x *Int) AppendText(b []byte) []byte {
	b = append(b, "bigint "...)

	if x.sign == Zero {
		return append(b, '0')
	}

	if x.sign == Neg {
		b = append(b, '-')
	}

	b = append(b, "0x"...)

	for _, d := range x.mag {
		b = append(b, hexDigits[d>>4], hexDigits[d&0xf])
	}

	return b
}

func (x *Int) String() string {
	return string(x.AppendText(nil))
}

// ParseInt parses the integer form, interning the result in c.
// A leading zero byte or a negative zero is a non-canonical encoding
// and is rejected.
func (c *Ctx) ParseInt(b []byte, st int) (x *Int, i int, err error) {
	i = SkipSpaces(b, st)

	i, err = Keyword(b, i, "bigint")
	if err != nil {
		return nil, st, err
	}

	i = SkipSpaces(b, i)

	sign := Pos

	if i < len(b) && b[i] == '-' {
		sign = Neg
		i++
	}

	switch {
	case hasPrefix(b, i, "0x"), hasPrefix(b, i, "0X"):
		i += 2
	case i < len(b) && b[i] == '0':
		if sign == Neg {
			return nil, st, NewParseError(i-1, ErrNonCanonical, "negative zero")
		}

		if i+1 < len(b) && b[i+1] >= '0' && b[i+1] <= '9' {
			return nil, st, NewParseError(i, ErrSyntax, "digits after zero")
		}

		x, _ = c.Int(Zero, nil)

		return x, i + 1, nil
	default:
		return nil, st, NewParseError(i, ErrSyntax, "integer literal expected")
	}

	hst := i

	for i < len(b) && hexVal(b[i]) >= 0 {
		i++
	}

	switch {
	case i == hst:
		return nil, st, NewParseError(hst, ErrSyntax, "hex digits expected")
	case (i-hst)%2 != 0:
		return nil, st, NewParseError(hst, ErrSyntax, "odd number of hex digits")
	case b[hst] == '0' && b[hst+1] == '0':
		return nil, st, NewParseError(hst, ErrNonCanonical, "leading zero byte")
	}

	mag := make([]byte, (i-hst)/2)

	for k := range mag {
		mag[k] = byte(hexVal(b[hst+2*k])<<4 | hexVal(b[hst+2*k+1]))
	}

	x, cerr := c.Int(sign, mag)
	if cerr != nil {
		return nil, st, NewParseError(hst, ErrNonCanonical, "%v", cerr)
	}

	return x, i, nil
}

// AppendText renders the float: float 1.5, float -0.0, float nan:0x....
// The decimal body is the shortest form that parses back to the same bits;
// NaN keeps its payload by rendering raw bits.
func (x Float) AppendText(b []byte) []byte {
	b = append(b, "float "...)

	v := x.Value()

	switch {
	case math.IsNaN(v):
		b = append(b, "nan:0x"...)

		for sh := 60; sh >= 0; sh -= 4 {
			b = append(b, hexDigits[x.bits>>uint(sh)&0xf])
		}

		return b
	case math.IsInf(v, 1):
		return append(b, "inf"...)
	case math.IsInf(v, -1):
		return append(b, "-inf"...)
	}

	st := len(b)
	b = strconv.AppendFloat(b, v, 'g', -1, 64)

	if !bytes.ContainsAny(b[st:], ".eE") {
		b = append(b, ".0"...)
	}

	return b
}

func (x Float) String() string {
	return string(x.AppendText(nil))
}

func ParseFloat(b []byte, st int) (x Float, i int, err error) {
	i = SkipSpaces(b, st)

	i, err = Keyword(b, i, "float")
	if err != nil {
		return Float{}, st, err
	}

	i = SkipSpaces(b, i)

	switch {
	case hasPrefix(b, i, "nan:0x"):
		i += 6

		if i+16 > len(b) {
			return Float{}, st, NewParseError(i, ErrSyntax, "16 hex digits of nan bits expected")
		}

		var bits uint64

		for k := 0; k < 16; k++ {
			d := hexVal(b[i+k])
			if d < 0 {
				return Float{}, st, NewParseError(i+k, ErrSyntax, "16 hex digits of nan bits expected")
			}

			bits = bits<<4 | uint64(d)
		}

		return FloatFromBits(bits), i + 16, nil
	case hasPrefix(b, i, "inf") && wordEnd(b, i+3):
		return FloatOf(math.Inf(1)), i + 3, nil
	case hasPrefix(b, i, "-inf") && wordEnd(b, i+4):
		return FloatOf(math.Inf(-1)), i + 4, nil
	}

	j := i

	for j < len(b) && isFloatChar(b[j]) {
		j++
	}

	if j == i {
		return Float{}, st, NewParseError(i, ErrSyntax, "float literal expected")
	}

	v, ferr := strconv.ParseFloat(string(b[i:j]), 64)
	if ferr != nil {
		return Float{}, st, NewParseError(i, ErrSyntax, "malformed float literal: %s", b[i:j])
	}

	return FloatOf(v), j, nil
}

// SkipSpaces advances past spaces and tabs.
func SkipSpaces(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == '\t') {
		i++
	}

	return i
}

// Word scans an identifier-like token: letters, digits and underscores.
func Word(b []byte, i int) (string, int) {
	st := i

	for i < len(b) && isWordChar(b[i]) {
		i++
	}

	return string(b[st:i]), i
}

// Keyword consumes the expected word or fails with its position.
func Keyword(b []byte, i int, kw string) (int, error) {
	w, e := Word(b, i)
	if w != kw {
		return i, NewParseError(i, ErrKeyword, "%q expected, got %q", kw, w)
	}

	return e, nil
}

func hasPrefix(b []byte, i int, p string) bool {
	return i+len(p) <= len(b) && string(b[i:i+len(p)]) == p
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}

	return -1
}

func wordEnd(b []byte, i int) bool {
	return i >= len(b) || !isWordChar(b[i])
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func isFloatChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}
