package value

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomInterning(t *testing.T) {
	c := NewCtx()

	ok1 := c.Atom("ok")
	er := c.Atom("error")
	ok2 := c.Atom("ok")

	require.Equal(t, ok1, ok2)
	require.NotEqual(t, ok1, er)

	require.Equal(t, "ok", c.AtomName(ok1))
	require.Equal(t, "error", c.AtomName(er))
}

func TestAtomReserved(t *testing.T) {
	c := NewCtx()

	require.Equal(t, AtomFalse, c.Atom("false"))
	require.Equal(t, AtomTrue, c.Atom("true"))
	require.Equal(t, AtomNil, c.Atom("[]"))

	require.Equal(t, "false", c.AtomName(AtomFalse))
	require.Equal(t, "true", c.AtomName(AtomTrue))
	require.Equal(t, "[]", c.AtomName(AtomNil))
}

func TestAtomFirstSeenOrder(t *testing.T) {
	c := NewCtx()

	x := c.Atom("x")
	y := c.Atom("y")

	require.Equal(t, x+1, y)
	require.Equal(t, x, c.Atom("x"))
}

func TestAtomForeignHandle(t *testing.T) {
	c := NewCtx()

	require.Panics(t, func() {
		c.AtomName(Atom(1000))
	})
}

func TestAtomConcurrent(t *testing.T) {
	c := NewCtx()

	texts := []string{"ok", "error", "badarg", "undefined", "noproc", "timeout"}

	const G = 8

	res := make([][]Atom, G)

	var wg sync.WaitGroup

	for g := 0; g < G; g++ {
		wg.Add(1)

		go func(g int) {
			defer wg.Done()

			ids := make([]Atom, len(texts))

			for rep := 0; rep < 200; rep++ {
				for i, text := range texts {
					ids[i] = c.Atom(text)
				}
			}

			res[g] = ids
		}(g)
	}

	wg.Wait()

	for g := 1; g < G; g++ {
		require.Equal(t, res[0], res[g])
	}

	seen := make(map[Atom]bool)

	for _, id := range res[0] {
		require.False(t, seen[id], "id %d reused", id)
		seen[id] = true
	}
}

func TestIntInterning(t *testing.T) {
	c := NewCtx()

	x1, err := c.Int(Pos, []byte{0, 0, 1, 2})
	require.NoError(t, err)

	x2, err := c.Int(Pos, []byte{1, 2})
	require.NoError(t, err)

	require.Same(t, x1, x2)

	y, err := c.Int(Neg, []byte{1, 2})
	require.NoError(t, err)

	require.NotSame(t, x1, y)
}

func TestIntConcurrent(t *testing.T) {
	c := NewCtx()

	const G = 8

	res := make([]*Int, G)

	var wg sync.WaitGroup

	for g := 0; g < G; g++ {
		wg.Add(1)

		go func(g int) {
			defer wg.Done()

			for rep := 0; rep < 200; rep++ {
				x, err := c.Int(Pos, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
				if err != nil {
					panic(err)
				}

				res[g] = x
			}
		}(g)
	}

	wg.Wait()

	for g := 1; g < G; g++ {
		require.Same(t, res[0], res[g])
	}
}
