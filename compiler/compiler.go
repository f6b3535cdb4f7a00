package compiler

import (
	"context"
	"fmt"
	"os"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/turbobrain/turbobrain/compiler/compile"
	"github.com/turbobrain/turbobrain/compiler/gen"
	"github.com/turbobrain/turbobrain/compiler/parse"
	"github.com/turbobrain/turbobrain/compiler/translate"
)

type (
	Options struct {
		Prelude gen.Prelude
		Compile compile.Options
	}
)

const DefaultOutput = "a.out"

func TranslateFile(ctx context.Context, name string, pre gen.Prelude) (*translate.Translator, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Translate(ctx, name, text, pre)
}

// Translate returns the translator even if brackets are unbalanced.
// The error wraps analyze.ErrUnbalanced in that case.
func Translate(ctx context.Context, name string, text []byte, pre gen.Prelude) (*translate.Translator, error) {
	t := translate.NewWithPrelude(text, pre)

	tlog.SpanFromContext(ctx).Printw("translated", "name", name, "instrs", len(t.FilteredSource()), "c_size", len(t.GeneratedCode()), "well_formed", t.IsWellFormed())

	if err := t.Err(); err != nil {
		return t, errors.Wrap(err, "%v", positions(name, text, t.Unmatched()))
	}

	return t, nil
}

// Build translates name file into C and compiles it into out executable.
func Build(ctx context.Context, name, out string, opts Options) error {
	if out == "" {
		out = DefaultOutput
	}

	t, err := TranslateFile(ctx, name, opts.Prelude)
	if err != nil {
		return errors.Wrap(err, "translate")
	}

	err = compile.Compile(ctx, []byte(t.GeneratedCode()), out, opts.Compile)
	if err != nil {
		return errors.Wrap(err, "compile")
	}

	return nil
}

func positions(name string, text []byte, offs []int) string {
	var b strings.Builder

	for i, off := range offs {
		if i != 0 {
			b.WriteString(", ")
		}

		p := parse.PositionOf(text, off)

		fmt.Fprintf(&b, "%s:%d:%d: unmatched %c", name, p.Line, p.Col, text[off])
	}

	return b.String()
}
