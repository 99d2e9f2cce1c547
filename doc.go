/*
Command flatscript runs scripts written in a small line oriented language with
typed variables, one flat name space, and goto style control flow.

Usage:

	flatscript [-config file.toml] [-timeout 5s] [-trace] [-trace-file t.jsonl]
	           [-labels lazy|prescan] [script ...]

With no script arguments, the script is read from stdin.

Section 1: Lines

Each line holds one instruction: a mnemonic followed by its operands,
separated by whitespace. Mnemonics are case insensitive. A line that does not
start with a known mnemonic does nothing, which makes blank lines and comments
like "# note" free. Operands past an instruction's count are ignored; too few
operands is an error.

Section 2: Values

Every variable holds one of seven kinds of value, chosen once by DECL:

	NATURAL    unsigned 32-bit integer, starts at 0
	INTEGER    signed 32-bit integer, starts at 0
	FLOAT      32-bit float, starts at 0
	CHARACTER  one character, starts as NUL
	BOOLEAN    TRUE or FALSE, starts FALSE
	STR        text, starts empty
	LIST       list of any values, starts empty

A variable's type never changes. SET only accepts a value of the same type;
CONVERT is the one way across types. Operand tokens are either variable names
or literals:

	5   -5   +5   "text   TRUE   'c'   [1,"a,[2,3]]

Note that +5 is an INTEGER, and that a string literal runs to the end of its
token: there are no spaces in string literals, and no closing quote.

Section 3: Control

LABEL name marks its own line. JMP, JEQ, JNE, JGT and JLT continue execution
on the line after a label. By default a label only exists once its LABEL line
has run, so jumps go backward; "-labels prescan" registers every label before
the script starts.

Section 4: Errors

Any error ends the script: undeclared names, type mismatches, bad literals,
unknown labels, and out of range list positions. The error names the script
line that failed.

An example, that prints "hi" three times:

	DECL s STR
	SET s "hi
	DECL n NATURAL
	LABEL LOOP
	PRINT s
	ADD n n 1
	JLT LOOP n 3

See ops.go and convert.go for each instruction.
*/
package main
