package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStmt(t *testing.T) {
	for c, want := range map[Instr]string{
		Right:  "++p;",
		Left:   "--p;",
		Inc:    "++*p;",
		Dec:    "--*p;",
		Output: `printf("%c", *p);`,
		Input:  `scanf("%c", p);`,
		Loop:   "while(*p) {",
		End:    "}",
	} {
		assert.Equal(t, want, Stmt(c), "%v", c)
		assert.True(t, IsInstr(byte(c)), "%v", c)
	}

	for _, c := range []byte("ab \n\x00\xff#!{}") {
		assert.False(t, IsInstr(c), "%q", c)
		assert.Equal(t, "", Stmt(Instr(c)))
	}
}
