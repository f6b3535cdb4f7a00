package compile

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

type (
	Options struct {
		// CC is the C compiler executable. Looked up in PATH. Default is gcc.
		CC string

		// Args are passed to CC after the output file.
		Args []string

		// TempDir is where the C file is written. Default is os.TempDir.
		TempDir string

		KeepTemp bool

		// Timeout limits the CC run if positive.
		Timeout time.Duration

		Stdout io.Writer
		Stderr io.Writer
	}

	// ExitError is returned when the compiler ran and failed.
	ExitError struct {
		CC   string
		Code int
	}
)

const DefaultCC = "gcc"

var ErrCompilerUnavailable = errors.New("compiler unavailable")

// Compile writes C code into a temp file and runs the compiler on it
// producing out executable.
// The temp file is removed afterwards unless KeepTemp is set.
func Compile(ctx context.Context, code []byte, out string, opts Options) (err error) {
	tr := tlog.SpanFromContext(ctx)
	from := loc.Caller(1)

	cc := opts.CC
	if cc == "" {
		cc = DefaultCC
	}

	path, err := exec.LookPath(cc)
	if err != nil {
		return errors.Wrap(ErrCompilerUnavailable, "%v: %v", cc, err)
	}

	f, err := os.CreateTemp(opts.TempDir, "turbobrain-*.c")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}

	src := f.Name()

	defer func() {
		if opts.KeepTemp {
			tr.Printw("keep temp file", "name", src)
			return
		}

		e := os.Remove(src)
		if err == nil && e != nil {
			err = errors.Wrap(e, "remove temp file")
		}

		tr.Printw("temp file removed", "name", src, "err", e)
	}()

	_, err = f.Write(code)
	if e := f.Close(); err == nil && e != nil {
		err = e
	}
	if err != nil {
		return errors.Wrap(err, "write temp file")
	}

	tr.Printw("temp file written", "name", src, "size", len(code))

	if opts.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	args := Args(src, out, opts.Args)

	tr.Printw("run compiler", "cc", path, "args", args, "from", from)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	err = cmd.Run()

	var ee *exec.ExitError

	switch {
	case err == nil:
	case ctx.Err() != nil:
		return errors.Wrap(ctx.Err(), "run %v", cc)
	case errors.As(err, &ee):
		return &ExitError{CC: cc, Code: ee.ExitCode()}
	default:
		return errors.Wrap(err, "run %v", cc)
	}

	tr.Printw("compiled", "out", out)

	return nil
}

// Args is the compiler command line without the executable.
func Args(src, out string, extra []string) []string {
	args := make([]string, 0, 3+len(extra))

	args = append(args, src, "-o", out)
	args = append(args, extra...)

	return args
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%v failed with exit code %d", e.CC, e.Code)
}
