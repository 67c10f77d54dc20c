package compiler

import (
	"context"
	"testing"

	"github.com/ember-lang/ember/compiler/ir"
	"github.com/ember-lang/ember/compiler/value"
)

func TestSmoke(t *testing.T) {
	c := value.NewCtx()

	p := &ir.Package{Path: "main"}
	p.Add(ir.ConstAtom{Atom: c.Atom("ok")})
	p.Add(ir.ConstFloat{X: value.FloatOf(1.5)})

	ctx := context.Background()

	b, err := DumpPackage(ctx, c, p)
	if err != nil {
		t.Errorf("dump package: %v", err)
	}

	t.Logf("result:\n%s", b)

	q, err := ParsePackage(ctx, c, b)
	if err != nil {
		t.Errorf("parse package: %v", err)
	}

	if q.Path != p.Path || len(q.Exprs) != len(p.Exprs) {
		t.Errorf("round trip mismatch: %+v != %+v", q, p)
	}
}
