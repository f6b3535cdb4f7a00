package parse

import (
	"context"

	"github.com/turbobrain/turbobrain/compiler/ast"
)

type (
	// Position is a 1-based line and column of a byte in a text.
	Position struct {
		Line int
		Col  int
	}
)

// Parse keeps instructions only. Any other byte is a comment.
func Parse(ctx context.Context, text []byte) *ast.Program {
	p := &ast.Program{}

	for i, c := range text {
		if !ast.IsInstr(c) {
			continue
		}

		p.Code = append(p.Code, ast.Instr(c))
		p.Pos = append(p.Pos, i)
	}

	return p
}

func PositionOf(text []byte, off int) (p Position) {
	switch {
	case off < 0:
		off = 0
	case off > len(text):
		off = len(text)
	}

	p.Line = 1
	p.Col = 1

	for _, c := range text[:off] {
		if c == '\n' {
			p.Line++
			p.Col = 1

			continue
		}

		p.Col++
	}

	return p
}
