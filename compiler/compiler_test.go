package compiler

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tlog.app/go/errors"

	"github.com/turbobrain/turbobrain/compiler/analyze"
	"github.com/turbobrain/turbobrain/compiler/compile"
	"github.com/turbobrain/turbobrain/compiler/gen"
)

func writeFile(t *testing.T, name, text string) string {
	t.Helper()

	name = filepath.Join(t.TempDir(), name)

	err := os.WriteFile(name, []byte(text), 0o644)
	require.NoError(t, err)

	return name
}

func TestTranslate(t *testing.T) {
	ctx := context.Background()

	tr, err := Translate(ctx, "ok.bf", []byte("+[-] done"), gen.DefaultPrelude)
	require.NoError(t, err)
	assert.Equal(t, "+[-]", tr.FilteredSource())

	tr, err = Translate(ctx, "bad.bf", []byte("+\n [x\n]]"), gen.DefaultPrelude)
	require.NotNil(t, tr)
	assert.False(t, tr.IsWellFormed())
	assert.True(t, errors.Is(err, analyze.ErrUnbalanced), "%v", err)
	assert.Contains(t, err.Error(), "bad.bf:3:2: unmatched ]")
}

func TestTranslateFile(t *testing.T) {
	ctx := context.Background()

	name := writeFile(t, "prog.bf", "++\n[>+<-]\n")

	tr, err := TranslateFile(ctx, name, gen.Prelude{Cells: 10})
	require.NoError(t, err)
	assert.Equal(t, "++[>+<-]", tr.FilteredSource())
	assert.Contains(t, tr.GeneratedCode(), "mem[10];")

	_, err = TranslateFile(ctx, filepath.Join(t.TempDir(), "missing.bf"), gen.Prelude{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildUnbalanced(t *testing.T) {
	ctx := context.Background()

	name := writeFile(t, "bad.bf", "[[]")
	out := filepath.Join(t.TempDir(), "out")

	err := Build(ctx, name, out, Options{Compile: compile.Options{CC: "turbobrain-no-such-compiler"}})
	assert.True(t, errors.Is(err, analyze.ErrUnbalanced), "%v", err)
	assert.False(t, errors.Is(err, compile.ErrCompilerUnavailable))

	_, err = os.Stat(out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildUnavailable(t *testing.T) {
	ctx := context.Background()

	name := writeFile(t, "ok.bf", "+.")

	err := Build(ctx, name, filepath.Join(t.TempDir(), "out"), Options{Compile: compile.Options{CC: "turbobrain-no-such-compiler"}})
	assert.True(t, errors.Is(err, compile.ErrCompilerUnavailable), "%v", err)
}

func TestBuild(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no sh")
	}

	ctx := context.Background()

	cc := writeFile(t, "cc", "#!/bin/sh\ncp \"$1\" \"$3\"\n")
	require.NoError(t, os.Chmod(cc, 0o755))

	name := writeFile(t, "ok.bf", "+.")
	out := filepath.Join(t.TempDir(), "out")

	err := Build(ctx, name, out, Options{Compile: compile.Options{CC: cc, TempDir: t.TempDir()}})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "    ++*p;\n    printf(\"%c\", *p);\n    return 0;\n}\n")
}
