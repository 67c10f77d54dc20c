package value

type (
	// Endian is the byte order of a multi-byte field in a binary.
	// Native is kept symbolic until code generation, so IR dumps are
	// host-independent.
	Endian uint8
)

const (
	Big Endian = iota
	Little
	Native
)

func (e Endian) String() string {
	switch e {
	case Big:
		return "big"
	case Little:
		return "little"
	case Native:
		return "native"
	}

	return "invalid"
}

func (e Endian) AppendText(b []byte) []byte {
	return append(b, e.String()...)
}

func ParseEndian(b []byte, st int) (e Endian, i int, err error) {
	i = SkipSpaces(b, st)

	w, j := Word(b, i)

	switch w {
	case "big":
		e = Big
	case "little":
		e = Little
	case "native":
		e = Native
	default:
		return 0, st, NewParseError(i, ErrKeyword, "endianness expected, got %q", w)
	}

	return e, j, nil
}
