/*

Process of compilation

Brainfuck Text ->
	parse ->
Filtered Program (ast) ->
	analyze ->
Bracket Balance ->
	gen ->
C Text ->
	compile (external C compiler) ->
Binary Executable

*/
package compiler
