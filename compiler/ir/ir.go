package ir

import (
	"github.com/ember-lang/ember/compiler/bin"
	"github.com/ember-lang/ember/compiler/value"
)

type (
	Expr int

	Package struct {
		Path string

		Exprs []any
	}

	// ConstAtom attaches an interned atom to an expression.
	ConstAtom struct {
		Atom value.Atom
	}

	ConstInt struct {
		X *value.Int
	}

	ConstFloat struct {
		X value.Float
	}

	// BinSeg is one segment of a binary match or construction.
	// Size is the expression computing the segment size, Nil for
	// kinds with implicit size. Specs are not interned: equal segments
	// are folded by comparing the packed words.
	BinSeg struct {
		Spec bin.Spec
		Size Expr
	}
)

const (
	Nil Expr = -1
)

func (p *Package) Add(x any) Expr {
	id := Expr(len(p.Exprs))
	p.Exprs = append(p.Exprs, x)

	return id
}
