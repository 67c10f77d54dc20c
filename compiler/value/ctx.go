package value

import (
	"encoding/binary"
	"fmt"
	"sync"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

type (
	// Ctx is the interning context of one compilation session.
	// It owns the canonical instance of every atom and big integer
	// the session produced. Safe for concurrent use.
	Ctx struct {
		mu sync.RWMutex

		atoms map[string]Atom
		names []string

		ints  map[string]*Int
		arena arena
	}
)

// Reserved atoms, fixed at Ctx construction.
// Lowering special-cases them without a table lookup.
const (
	AtomFalse Atom = iota
	AtomTrue
	AtomNil // the empty-list marker []
)

func NewCtx() *Ctx {
	c := &Ctx{
		atoms: make(map[string]Atom),
		ints:  make(map[string]*Int),
	}

	for _, name := range []string{"false", "true", "[]"} {
		c.Atom(name)
	}

	return c
}

// Atom returns the handle for text, interning it on first occurrence.
// Ids are assigned in first-seen order.
func (c *Ctx) Atom(text string) Atom {
	c.mu.RLock()
	a, ok := c.atoms[text]
	c.mu.RUnlock()

	if ok {
		return a
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if a, ok := c.atoms[text]; ok {
		return a
	}

	a = Atom(len(c.names))
	c.names = append(c.names, text)
	c.atoms[text] = a

	tlog.V("intern").Printw("new atom", "id", a, "text", text, "from", loc.Caller(1))

	return a
}

// AtomName returns the text of an interned atom.
// Panics on a handle from another context.
func (c *Ctx) AtomName(a Atom) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if int(a) >= len(c.names) {
		panic(fmt.Sprintf("atom %d from another context", a))
	}

	return c.names[a]
}

// Int returns the canonical handle for the given sign and big-endian
// magnitude, interning it on first occurrence.
// The input is normalized: leading zero bytes are stripped.
// Non-canonical combinations (negative zero, zero sign with nonzero
// magnitude) are rejected before anything is interned.
func (c *Ctx) Int(sign Sign, mag []byte) (*Int, error) {
	for len(mag) != 0 && mag[0] == 0 {
		mag = mag[1:]
	}

	switch {
	case sign != Neg && sign != Zero && sign != Pos:
		return nil, errors.New("invalid sign: %d", sign)
	case sign == Zero && len(mag) != 0:
		return nil, errors.New("zero sign with nonzero magnitude")
	case sign != Zero && len(mag) == 0:
		return nil, errors.New("%v sign with zero magnitude", sign)
	}

	key := intKey(sign, mag)

	c.mu.RLock()
	x, ok := c.ints[key]
	c.mu.RUnlock()

	if ok {
		return x, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if x, ok := c.ints[key]; ok {
		return x, nil
	}

	x = &Int{
		sign: sign,
		mag:  c.arena.bytes(mag),
	}

	c.ints[key] = x

	tlog.V("intern").Printw("new bigint", "sign", sign, "bytes", len(mag), "from", loc.Caller(1))

	return x, nil
}

// IntFromInt64 interns a native word value.
func (c *Ctx) IntFromInt64(v int64) *Int {
	if v == 0 {
		x, _ := c.Int(Zero, nil)
		return x
	}

	sign := Pos
	u := uint64(v)

	if v < 0 {
		sign = Neg
		u = -u
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], u)

	x, _ := c.Int(sign, buf[:])

	return x
}

// IntFromUint64 interns an unsigned native word value.
func (c *Ctx) IntFromUint64(v uint64) *Int {
	if v == 0 {
		x, _ := c.Int(Zero, nil)
		return x
	}

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)

	x, _ := c.Int(Pos, buf[:])

	return x
}

func intKey(sign Sign, mag []byte) string {
	b := make([]byte, 1+len(mag))
	b[0] = byte(sign + 2)
	copy(b[1:], mag)

	return string(b)
}
