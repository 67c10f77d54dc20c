package value

type (
	// arena is a bump allocator for interned payloads.
	// Storage lives as long as the Ctx and is never freed piecemeal.
	arena struct {
		b []byte
	}
)

const arenaBlock = 4 << 10

func (a *arena) bytes(x []byte) []byte {
	if len(x) == 0 {
		return nil
	}

	if len(x) > len(a.b) {
		size := arenaBlock
		if len(x) > size {
			size = len(x)
		}

		a.b = make([]byte, size)
	}

	p := a.b[:len(x):len(x)]
	a.b = a.b[len(x):]

	copy(p, x)

	return p
}
