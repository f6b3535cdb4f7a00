package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/turbobrain/turbobrain/compiler"
	"github.com/turbobrain/turbobrain/compiler/compile"
	"github.com/turbobrain/turbobrain/compiler/gen"
)

func main() {
	translateCmd := &cli.Command{
		Name:        "translate",
		Description: "print C translation of brainfuck program",
		Action:      translateAct,
		Args:        cli.Args{},
		Flags: append(commonFlags(),
			cli.NewFlag("output,o", "", "write C code to the file instead of stdout"),
		),
	}

	filterCmd := &cli.Command{
		Name:        "filter",
		Description: "print brainfuck program with comments stripped",
		Action:      filterAct,
		Args:        cli.Args{},
		Flags:       commonFlags(),
	}

	app := &cli.Command{
		Name:        "turbobrain",
		Description: "turbobrain compiles brainfuck into native executable through C",
		Action:      buildAct,
		Args:        cli.Args{},
		Flags: append(commonFlags(),
			cli.NewFlag("output,o", compiler.DefaultOutput, "output executable"),
			cli.NewFlag("compiler,c", compile.DefaultCC, "C compiler"),
			cli.NewFlag("options,p", "", "extra compiler options"),
			cli.NewFlag("keep-temp", false, "do not remove generated C file"),
			cli.NewFlag("timeout", time.Duration(0), "compiler run timeout, 0 is no limit"),
		),
		Commands: []*cli.Command{
			translateCmd,
			filterCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func commonFlags() []*cli.Flag {
	return []*cli.Flag{
		cli.NewFlag("verbose,v", false, "print what is going on"),
		cli.NewFlag("cells", gen.DefaultPrelude.Cells, "memory size of the program"),
	}
}

func buildAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = withLogger(ctx, c)

	name, err := inputFile(c)
	if err != nil {
		return err
	}

	opts := compiler.Options{
		Prelude: prelude(c),
		Compile: compile.Options{
			CC:       c.String("compiler"),
			Args:     strings.Fields(c.String("options")),
			KeepTemp: c.Bool("keep-temp"),
			Timeout:  c.Duration("timeout"),
			Stdout:   os.Stdout,
			Stderr:   os.Stderr,
		},
	}

	err = compiler.Build(ctx, name, c.String("output"), opts)
	if err != nil {
		return errors.Wrap(err, "build %v", name)
	}

	return nil
}

func translateAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = withLogger(ctx, c)

	name, err := inputFile(c)
	if err != nil {
		return err
	}

	t, err := compiler.TranslateFile(ctx, name, prelude(c))
	if err != nil {
		return errors.Wrap(err, "translate %v", name)
	}

	if out := c.String("output"); out != "" {
		err = os.WriteFile(out, []byte(t.GeneratedCode()), 0o644)
		if err != nil {
			return errors.Wrap(err, "write output")
		}

		return nil
	}

	fmt.Printf("%s", t.GeneratedCode())

	return nil
}

func filterAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = withLogger(ctx, c)

	name, err := inputFile(c)
	if err != nil {
		return err
	}

	return filter(ctx, os.Stdout, os.Stderr, name, prelude(c))
}

// filter prints the program even if it's malformed, the problem goes to ew.
func filter(ctx context.Context, w, ew io.Writer, name string, pre gen.Prelude) error {
	t, err := compiler.TranslateFile(ctx, name, pre)
	if t == nil {
		return errors.Wrap(err, "filter %v", name)
	}
	if err != nil {
		fmt.Fprintf(ew, "warning: %v\n", err)
	}

	_, err = fmt.Fprintf(w, "%s\n", t.FilteredSource())
	if err != nil {
		return errors.Wrap(err, "write")
	}

	return nil
}

func inputFile(c *cli.Command) (string, error) {
	switch len(c.Args) {
	case 0:
		return "", errors.New("no input file")
	case 1:
		return c.Args[0], nil
	default:
		return "", errors.New("too many input files: %v", c.Args)
	}
}

func prelude(c *cli.Command) gen.Prelude {
	p := gen.DefaultPrelude
	p.Cells = c.Int("cells")

	return p
}

func withLogger(ctx context.Context, c *cli.Command) context.Context {
	if !c.Bool("verbose") {
		return ctx
	}

	return tlog.ContextWithSpan(ctx, tlog.Root())
}
