package gen

import (
	"github.com/nikandfor/hacked/hfmt"

	"github.com/turbobrain/turbobrain/compiler/analyze"
	"github.com/turbobrain/turbobrain/compiler/ast"
)

type (
	// Prelude is the C boilerplate around the translated code.
	// Zero fields are taken from DefaultPrelude.
	Prelude struct {
		// Cells is the memory size. The buffer is static so it's zeroed
		// and p starts at its first cell. Nothing checks p stays inside.
		Cells int

		// CellType is the C type of a cell.
		CellType string

		// Entry is the name of the function the program is translated into.
		// main calls it.
		Entry string
	}
)

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 4

var DefaultPrelude = Prelude{
	Cells:    30000,
	CellType: "char",
	Entry:    "turbobrain_main",
}

// C appends the C translation of the program to b.
// Unbalanced programs produce unbalanced braces.
func C(b []byte, p *ast.Program, pre Prelude) []byte {
	pre = pre.withDefaults()

	b = pre.Append(b)
	b = append(b, '\n')

	b = hfmt.Appendf(b, "int %s(void) {\n", pre.Entry)

	d := analyze.BaseLevel

	for _, c := range p.Code {
		if c == ast.End {
			d--
		}

		b = line(b, d, ast.Stmt(c))

		if c == ast.Loop {
			d++
		}
	}

	b = line(b, d, "return 0;")
	b = append(b, "}\n"...)

	return b
}

func (p Prelude) Append(b []byte) []byte {
	p = p.withDefaults()

	b = append(b, "#include <stdio.h>\n\n"...)

	b = hfmt.Appendf(b, "static %s mem[%d];\n", p.CellType, p.Cells)
	b = hfmt.Appendf(b, "static %s *p = mem;\n", p.CellType)
	b = append(b, '\n')

	b = hfmt.Appendf(b, "int %s(void);\n\n", p.Entry)

	b = append(b, "int main(void) {\n"...)
	b = line(b, 1, "return "+p.Entry+"();")
	b = append(b, "}\n"...)

	return b
}

func (p Prelude) withDefaults() Prelude {
	if p.Cells <= 0 {
		p.Cells = DefaultPrelude.Cells
	}

	if p.CellType == "" {
		p.CellType = DefaultPrelude.CellType
	}

	if p.Entry == "" {
		p.Entry = DefaultPrelude.Entry
	}

	return p
}

// line appends s indented to level d.
// Negative levels come from stray ']' and are not indented.
func line(b []byte, d int, s string) []byte {
	for i := 0; i < d*IndentWidth; i++ {
		b = append(b, ' ')
	}

	b = append(b, s...)
	b = append(b, '\n')

	return b
}
