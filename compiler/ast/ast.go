package ast

type (
	Instr byte

	// Program is a source text with everything but instructions dropped.
	Program struct {
		Code []Instr
		Pos  []int // offset of Code[i] in the original text
	}
)

const (
	Right  Instr = '>'
	Left   Instr = '<'
	Inc    Instr = '+'
	Dec    Instr = '-'
	Output Instr = '.'
	Input  Instr = ','
	Loop   Instr = '['
	End    Instr = ']'
)

var stmts = [256]string{
	Right:  "++p;",
	Left:   "--p;",
	Inc:    "++*p;",
	Dec:    "--*p;",
	Output: `printf("%c", *p);`,
	Input:  `scanf("%c", p);`,
	Loop:   "while(*p) {",
	End:    "}",
}

// Stmt returns C statement the instruction is translated to.
// It returns empty string for bytes outside of the alphabet.
func Stmt(c Instr) string {
	return stmts[c]
}

func IsInstr(c byte) bool {
	return stmts[c] != ""
}

func (p *Program) Len() int {
	return len(p.Code)
}

func (p *Program) String() string {
	b := make([]byte, len(p.Code))

	for i, c := range p.Code {
		b[i] = byte(c)
	}

	return string(b)
}

func (c Instr) String() string {
	return string(rune(c))
}
