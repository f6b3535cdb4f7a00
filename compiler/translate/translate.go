package translate

import (
	"context"

	"github.com/turbobrain/turbobrain/compiler/analyze"
	"github.com/turbobrain/turbobrain/compiler/ast"
	"github.com/turbobrain/turbobrain/compiler/gen"
	"github.com/turbobrain/turbobrain/compiler/parse"
)

type (
	// Translator holds a Brainfuck program and its C translation.
	// All the work is done in New. It's immutable afterwards,
	// so it's safe to query from multiple goroutines.
	Translator struct {
		prog *ast.Program
		bal  analyze.Balance

		filtered string
		code     string
	}
)

func New(text []byte) *Translator {
	return NewWithPrelude(text, gen.DefaultPrelude)
}

func NewWithPrelude(text []byte, pre gen.Prelude) *Translator {
	p := parse.Parse(context.Background(), text)

	return &Translator{
		prog:     p,
		bal:      analyze.Check(p),
		filtered: p.String(),
		code:     string(gen.C(nil, p, pre)),
	}
}

// IsWellFormed reports whether brackets are balanced.
// The generated code is not expected to compile otherwise.
func (t *Translator) IsWellFormed() bool {
	return t.bal.OK()
}

func (t *Translator) FilteredSource() string {
	return t.filtered
}

// GeneratedCode returns C text. It's returned even if the program is malformed.
func (t *Translator) GeneratedCode() string {
	return t.code
}

// Unmatched returns offsets in the original text of the brackets without a pair.
func (t *Translator) Unmatched() []int {
	if len(t.bal.Unmatched) == 0 {
		return nil
	}

	r := make([]int, len(t.bal.Unmatched))

	for i, j := range t.bal.Unmatched {
		r[i] = t.prog.Pos[j]
	}

	return r
}

func (t *Translator) Err() error {
	if t.IsWellFormed() {
		return nil
	}

	return &analyze.UnbalancedError{Pos: t.Unmatched()}
}
