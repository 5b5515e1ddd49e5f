package lexer

import (
	"github.com/aledsdavies/duro/combinator"
	"github.com/aledsdavies/duro/internal/cursor"
)

// identByteParser recognizes a single [A-Za-z0-9_] byte.
var identByteParser = combinator.Match(func(c *cursor.Cursor) (byte, bool) {
	b := c.PeekByte()
	if b >= 128 || !isIdentPart[b] {
		return 0, false
	}
	c.Consume(1)
	return b, true
}, "identifier byte")

// Identifier scans the longest run of [A-Za-z0-9_], used for keys,
// variable names (after the leading '$'), and the bareword content of
// variable references inside interpolated strings.
func Identifier(c *cursor.Cursor) (string, bool) {
	bytes, err := combinator.OneOrMore(identByteParser)(c)
	if err != nil {
		return "", false
	}
	return string(bytes), true
}

// PeekIdentifierLen returns the length of the identifier run starting at
// the current position without consuming it.
func PeekIdentifierLen(c *cursor.Cursor) int {
	n := 0
	for {
		b := c.PeekByteAt(n)
		if b >= 128 || !isIdentPart[b] {
			break
		}
		n++
	}
	return n
}

// Key scans a key: [A-Za-z0-9_]+ immediately followed by ':'. Neither the
// ':' nor the whitespace after it is consumed or checked here; callers do
// that. It fails (without advancing) if the identifier is followed by
// anything else - in particular '.', a quote, or '-', which are never part
// of a valid key and are reported as a malformed key by the caller.
func Key(c *cursor.Cursor) (string, bool) {
	cp := c.Checkpoint()
	name, ok := Identifier(c)
	if !ok {
		return "", false
	}
	if c.PeekByte() != ':' {
		c.Restore(cp)
		return "", false
	}
	return name, true
}

// VariableName scans "$name" and returns name without the leading '$'.
func VariableName(c *cursor.Cursor) (string, bool) {
	cp := c.Checkpoint()
	if c.PeekByte() != '$' {
		return "", false
	}
	c.Consume(1)
	name, ok := Identifier(c)
	if !ok {
		c.Restore(cp)
		return "", false
	}
	return name, true
}
