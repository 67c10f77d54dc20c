package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/ember-lang/ember/compiler"
	"github.com/ember-lang/ember/compiler/bin"
	"github.com/ember-lang/ember/compiler/layout"
	"github.com/ember-lang/ember/compiler/value"
)

func main() {
	constCmd := &cli.Command{
		Name:        "const",
		Description: "parse constant literals and print them back canonically",
		Action:      constAct,
		Args:        cli.Args{},
	}

	fmtCmd := &cli.Command{
		Name:        "fmt",
		Description: "round-trip textual IR dump files",
		Action:      fmtAct,
		Args:        cli.Args{},
	}

	reprCmd := &cli.Command{
		Name:        "repr",
		Description: "print the runtime representation of a value kind",
		Action:      reprAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "ember",
		Description: "ember is a tool for inspecting ember compiler constants",
		Commands: []*cli.Command{
			constCmd,
			fmtCmd,
			reprCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func constAct(c *cli.Command) (err error) {
	vctx := value.NewCtx()

	for _, a := range c.Args {
		text, err := parseConst(vctx, []byte(a))
		if err != nil {
			return errors.Wrap(err, "parse %q", a)
		}

		fmt.Printf("%s\n", text)
	}

	return nil
}

func fmtAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		text, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		vctx := value.NewCtx()

		p, err := compiler.ParsePackage(ctx, vctx, text)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		out, err := compiler.DumpPackage(ctx, vctx, p)
		if err != nil {
			return errors.Wrap(err, "dump %v", a)
		}

		fmt.Printf("%s", out)
	}

	return nil
}

func reprAct(c *cli.Command) (err error) {
	if len(c.Args) == 0 {
		return errors.New("value kind expected: atom, fixnum, bigint or float")
	}

	bits := 64

	if len(c.Args) > 1 {
		bits, err = strconv.Atoi(c.Args[1])
		if err != nil {
			return errors.Wrap(err, "pointer width")
		}
	}

	var k layout.Kind

	switch c.Args[0] {
	case "atom":
		k = layout.Atom
	case "fixnum":
		k = layout.Fixnum
	case "bigint":
		k = layout.BigInt
	case "float":
		k = layout.Float
	default:
		return errors.New("unknown value kind: %v", c.Args[0])
	}

	if bits != 32 && bits != 64 {
		return errors.New("unsupported pointer width: %d", bits)
	}

	r := layout.Of(k, bits)

	fmt.Printf("%v on %d bit: %v, tag %v\n", k, bits, r.Class, r.Tag)

	return nil
}

func parseConst(c *value.Ctx, b []byte) (text []byte, err error) {
	i := value.SkipSpaces(b, 0)

	w, e := value.Word(b, i)

	var end int

	switch w {
	case "atom":
		a, j, err := c.ParseAtom(b, i)
		if err != nil {
			return nil, err
		}

		text, end = c.AppendAtom(nil, a), j
	case "bigint":
		x, j, err := c.ParseInt(b, i)
		if err != nil {
			return nil, err
		}

		text, end = x.AppendText(nil), j
	case "float":
		// a float constant or a float segment specifier
		if j := value.SkipSpaces(b, e); j < len(b) && b[j] == ',' {
			s, j, err := bin.ParseSpec(b, i)
			if err != nil {
				return nil, err
			}

			text, end = s.AppendText(nil), j

			break
		}

		x, j, err := value.ParseFloat(b, i)
		if err != nil {
			return nil, err
		}

		text, end = x.AppendText(nil), j
	case "integer", "bytes", "utf8", "utf16", "utf32":
		s, j, err := bin.ParseSpec(b, i)
		if err != nil {
			return nil, err
		}

		text, end = s.AppendText(nil), j
	case "big", "little", "native":
		en, j, err := value.ParseEndian(b, i)
		if err != nil {
			return nil, err
		}

		text, end = en.AppendText(nil), j
	default:
		return nil, value.NewParseError(i, value.ErrKeyword, "unknown constant kind: %q", w)
	}

	if j := value.SkipSpaces(b, end); j < len(b) {
		return nil, value.NewParseError(j, value.ErrSyntax, "trailing text after constant")
	}

	return text, nil
}
