package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntCanonicalForm(t *testing.T) {
	c := NewCtx()

	x, err := c.Int(Pos, []byte{0, 0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, Pos, x.Sign())
	require.Equal(t, []byte{1, 2}, x.Magnitude())

	z, err := c.Int(Zero, []byte{0, 0})
	require.NoError(t, err)
	require.Equal(t, Zero, z.Sign())
	require.Len(t, z.Magnitude(), 0)
	require.True(t, z.IsZero())
}

func TestIntContractViolations(t *testing.T) {
	c := NewCtx()

	_, err := c.Int(Neg, []byte{0, 0})
	require.Error(t, err, "negative zero")

	_, err = c.Int(Pos, nil)
	require.Error(t, err, "positive zero")

	_, err = c.Int(Zero, []byte{1})
	require.Error(t, err, "zero sign with magnitude")

	_, err = c.Int(Sign(5), []byte{1})
	require.Error(t, err, "invalid sign")
}

func TestIntCmp(t *testing.T) {
	c := NewCtx()

	vals := []int64{-1 << 40, -256, -255, -1, 0, 1, 255, 256, 1 << 40}

	for i, a := range vals {
		for j, b := range vals {
			exp := 0
			if i < j {
				exp = -1
			} else if i > j {
				exp = 1
			}

			got := c.IntFromInt64(a).Cmp(c.IntFromInt64(b))

			require.Equal(t, exp, got, "%d cmp %d", a, b)
		}
	}
}

func TestIntNativeWord(t *testing.T) {
	c := NewCtx()

	for _, want := range []int64{0, 1, -1, 255, -256, math.MaxInt64, math.MinInt64} {
		v, ok := c.IntFromInt64(want).Int64()
		require.True(t, ok, "%d", want)
		require.Equal(t, want, v)
	}

	u, ok := c.IntFromUint64(math.MaxUint64).Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(math.MaxUint64), u)

	// 2^63 fits an unsigned word only
	x, err := c.Int(Pos, []byte{0x80, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	_, ok = x.Int64()
	require.False(t, ok)

	u, ok = x.Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(1)<<63, u)

	// -2^63 is the smallest value that still fits a signed word
	y, err := c.Int(Neg, []byte{0x80, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	v, ok := y.Int64()
	require.True(t, ok)
	require.Equal(t, int64(math.MinInt64), v)

	_, ok = y.Uint64()
	require.False(t, ok)

	// nine magnitude bytes do not fit either way
	big, err := c.Int(Pos, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	_, ok = big.Int64()
	require.False(t, ok)

	_, ok = big.Uint64()
	require.False(t, ok)
}

func TestIntText(t *testing.T) {
	c := NewCtx()

	x, err := c.Int(Pos, []byte{1, 2})
	require.NoError(t, err)

	y, err := c.Int(Neg, []byte{0xff})
	require.NoError(t, err)

	require.Equal(t, "bigint 0", c.IntFromInt64(0).String())
	require.Equal(t, "bigint 0x0102", x.String())
	require.Equal(t, "bigint -0xFF", y.String())

	for _, v := range []*Int{c.IntFromInt64(0), x, y, c.IntFromInt64(math.MinInt64)} {
		s := v.String()

		got, end, err := c.ParseInt([]byte(s), 0)
		require.NoError(t, err, "%v", s)
		require.Equal(t, len(s), end, "%v", s)
		require.Same(t, v, got, "%v", s)
	}
}

func TestIntParseErrors(t *testing.T) {
	c := NewCtx()

	for _, tc := range []struct {
		text string
		code Code
	}{
		{"bigint 0x0001", ErrNonCanonical},
		{"bigint 0x00", ErrNonCanonical},
		{"bigint -0", ErrNonCanonical},
		{"bigint 0x1", ErrSyntax},
		{"bigint 01", ErrSyntax},
		{"bigint 00", ErrSyntax},
		{"bigint 0x", ErrSyntax},
		{"bigint x", ErrSyntax},
		{"int 5", ErrKeyword},
	} {
		_, _, err := c.ParseInt([]byte(tc.text), 0)

		pe, ok := err.(*ParseError)
		require.True(t, ok, "%q: %v", tc.text, err)
		require.Equal(t, tc.code, pe.Code, "%q: %v", tc.text, err)
	}
}
