// Package lexer implements the leaf productions of the language: inline
// whitespace, comments, newlines, numbers, the four string flavors, keys,
// identifiers, and variable names. Lexical rules are cursor-level
// recognizers consumed by the structural parser via the combinator kernel;
// this is a scannerless design (no separate token stream) in the spirit of
// the teacher's hand-classified-character scanning (pkgs/lexer.lexer.go),
// generalized from devcmd's shell-command tokens to this language's value
// grammar.
package lexer

// ASCII fast-path classification tables, mirroring the teacher's
// init()-populated lookup arrays in pkgs/lexer/lexer.go.
var (
	isIdentStart [128]bool
	isIdentPart  [128]bool
	isSpaceOrTab [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isIdentStart[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_' || ('0' <= ch && ch <= '9')
		isIdentPart[i] = isIdentStart[i]
		isSpaceOrTab[i] = ch == ' ' || ch == '\t'
	}
}

// IsIdentByte reports whether b may appear in a key, identifier, or
// variable name: [A-Za-z0-9_].
func IsIdentByte(b byte) bool {
	return b < 128 && isIdentPart[b]
}
