package ir

import (
	"bytes"
	"context"
	"strconv"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/ember-lang/ember/compiler/bin"
	"github.com/ember-lang/ember/compiler/value"
)

// Dump renders the package constants one expression per line:
//
//	pkg main
//	0 = atom 3 "ok"
//	1 = bigint 0x0102
//	2 = binseg -1 utf8
//
// The output is deterministic and parses back with ParseDump.
func Dump(ctx context.Context, b []byte, c *value.Ctx, p *Package) ([]byte, error) {
	b = hfmt.Appendf(b, "pkg %s\n", p.Path)

	for id, x := range p.Exprs {
		b = hfmt.Appendf(b, "%d = ", id)

		switch x := x.(type) {
		case ConstAtom:
			b = c.AppendAtom(b, x.Atom)
		case ConstInt:
			b = x.X.AppendText(b)
		case ConstFloat:
			b = x.X.AppendText(b)
		case BinSeg:
			b = hfmt.Appendf(b, "binseg %d ", int(x.Size))
			b = x.Spec.AppendText(b)
		default:
			return nil, errors.New("unsupported expr: %T (%d)", x, id)
		}

		b = append(b, '\n')
	}

	return b, nil
}

// ParseDump is the inverse of Dump. Atoms and integers are re-interned
// through c, so handles in the result are canonical for that context.
func ParseDump(ctx context.Context, c *value.Ctx, b []byte) (*Package, error) {
	i := value.SkipSpaces(b, 0)

	i, err := value.Keyword(b, i, "pkg")
	if err != nil {
		return nil, err
	}

	i = value.SkipSpaces(b, i)

	e := i
	for e < len(b) && b[e] != '\n' {
		e++
	}

	p := &Package{
		Path: string(bytes.TrimRight(b[i:e], " \t")),
	}

	i = e

	for i < len(b) {
		if b[i] == '\n' {
			i++
			continue
		}

		i = value.SkipSpaces(b, i)

		if i >= len(b) || b[i] == '\n' {
			continue
		}

		i, err = p.parseExpr(c, b, i)
		if err != nil {
			return nil, err
		}

		i = value.SkipSpaces(b, i)

		if i < len(b) && b[i] != '\n' {
			return nil, value.NewParseError(i, value.ErrSyntax, "end of line expected")
		}
	}

	return p, nil
}

func (p *Package) parseExpr(c *value.Ctx, b []byte, st int) (i int, err error) {
	i = st

	d := i
	for d < len(b) && b[d] >= '0' && b[d] <= '9' {
		d++
	}

	if d == i {
		return st, value.NewParseError(i, value.ErrSyntax, "expression id expected")
	}

	id, _ := strconv.Atoi(string(b[i:d]))
	if id != len(p.Exprs) {
		return st, value.NewParseError(i, value.ErrSyntax, "expression ids must be sequential: %d != %d", id, len(p.Exprs))
	}

	i = value.SkipSpaces(b, d)

	if i >= len(b) || b[i] != '=' {
		return st, value.NewParseError(i, value.ErrSyntax, "'=' expected")
	}

	i = value.SkipSpaces(b, i+1)

	w, _ := value.Word(b, i)

	var x any

	switch w {
	case "atom":
		a, j, err := c.ParseAtom(b, i)
		if err != nil {
			return st, err
		}

		x, i = ConstAtom{Atom: a}, j
	case "bigint":
		v, j, err := c.ParseInt(b, i)
		if err != nil {
			return st, err
		}

		x, i = ConstInt{X: v}, j
	case "float":
		v, j, err := value.ParseFloat(b, i)
		if err != nil {
			return st, err
		}

		x, i = ConstFloat{X: v}, j
	case "binseg":
		size, j, err := parseSize(b, i+len(w))
		if err != nil {
			return st, err
		}

		s, j, err := bin.ParseSpec(b, j)
		if err != nil {
			return st, err
		}

		x, i = BinSeg{Spec: s, Size: size}, j
	default:
		return st, value.NewParseError(i, value.ErrKeyword, "unknown expression kind: %q", w)
	}

	p.Exprs = append(p.Exprs, x)

	return i, nil
}

func parseSize(b []byte, st int) (size Expr, i int, err error) {
	i = value.SkipSpaces(b, st)

	neg := false

	if i < len(b) && b[i] == '-' {
		neg = true
		i++
	}

	d := i
	n := 0

	for d < len(b) && b[d] >= '0' && b[d] <= '9' {
		n = n*10 + int(b[d]-'0')
		d++
	}

	if d == i {
		return 0, st, value.NewParseError(i, value.ErrSyntax, "segment size expression expected")
	}

	if neg {
		n = -n
	}

	return Expr(n), d, nil
}
