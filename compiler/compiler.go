package compiler

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/ember-lang/ember/compiler/ir"
	"github.com/ember-lang/ember/compiler/value"
)

// DumpPackage renders the constants of a package in the textual IR form.
func DumpPackage(ctx context.Context, c *value.Ctx, p *ir.Package) ([]byte, error) {
	b, err := ir.Dump(ctx, nil, c, p)
	if err != nil {
		return nil, errors.Wrap(err, "dump package")
	}

	tlog.SpanFromContext(ctx).Printw("dumped package", "path", p.Path, "exprs", len(p.Exprs), "size", len(b))

	return b, nil
}

// ParsePackage reads a textual IR dump back, re-interning constants in c.
func ParsePackage(ctx context.Context, c *value.Ctx, text []byte) (*ir.Package, error) {
	p, err := ir.ParseDump(ctx, c, text)
	if err != nil {
		return nil, errors.Wrap(err, "parse package")
	}

	tlog.SpanFromContext(ctx).Printw("parsed package", "path", p.Path, "exprs", len(p.Exprs))

	return p, nil
}
