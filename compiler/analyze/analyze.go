package analyze

import (
	"fmt"
	"strings"

	"tlog.app/go/errors"

	"github.com/turbobrain/turbobrain/compiler/ast"
)

type (
	Balance struct {
		// Level is the nesting counter after the last instruction.
		// It equals BaseLevel for balanced programs.
		Level int

		// Unmatched are indexes into Program.Code of brackets without a pair,
		// in program order.
		Unmatched []int
	}

	UnbalancedError struct {
		Pos []int
	}
)

// BaseLevel is the level of the entry function body.
const BaseLevel = 1

var ErrUnbalanced = errors.New("unbalanced brackets")

// Check counts nesting the same way the code is indented.
// A ']' with no open '[' before it is unmatched even if
// the final counter comes back to BaseLevel.
func Check(p *ast.Program) (b Balance) {
	b.Level = BaseLevel

	var open []int

	for i, c := range p.Code {
		switch c {
		case ast.Loop:
			b.Level++

			open = append(open, i)
		case ast.End:
			b.Level--

			if len(open) == 0 {
				b.Unmatched = append(b.Unmatched, i)
				continue
			}

			open = open[:len(open)-1]
		}
	}

	if len(open) == 0 {
		return b
	}

	b.Unmatched = mergeSorted(b.Unmatched, open)

	return b
}

func (b Balance) OK() bool {
	return b.Level == BaseLevel && len(b.Unmatched) == 0
}

func (e *UnbalancedError) Error() string {
	var s strings.Builder

	s.WriteString(ErrUnbalanced.Error())
	s.WriteString(" at")

	for i, p := range e.Pos {
		if i != 0 {
			s.WriteByte(',')
		}

		fmt.Fprintf(&s, " %d", p)
	}

	return s.String()
}

func (e *UnbalancedError) Is(target error) bool {
	return target == ErrUnbalanced
}

func mergeSorted(a, b []int) []int {
	r := make([]int, 0, len(a)+len(b))

	for len(a) != 0 && len(b) != 0 {
		if a[0] < b[0] {
			r = append(r, a[0])
			a = a[1:]
		} else {
			r = append(r, b[0])
			b = b[1:]
		}
	}

	r = append(r, a...)
	r = append(r, b...)

	return r
}
