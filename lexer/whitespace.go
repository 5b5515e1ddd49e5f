package lexer

import (
	"github.com/aledsdavies/duro/combinator"
	"github.com/aledsdavies/duro/internal/cursor"
)

// SkipInlineWhitespace consumes a run of spaces and tabs (not newlines) and
// returns how many bytes were consumed.
func SkipInlineWhitespace(c *cursor.Cursor) int {
	n := 0
	for {
		b := c.PeekByteAt(n)
		if b >= 128 || !isSpaceOrTab[b] {
			break
		}
		n++
	}
	if n > 0 {
		c.Consume(n)
	}
	return n
}

// Comment consumes a '#' through (but not including) the next newline or
// EOF. It reports whether a comment was present.
func Comment(c *cursor.Cursor) bool {
	if c.PeekByte() != '#' {
		return false
	}
	n := 0
	for {
		b := c.PeekByteAt(n)
		if b == 0 || b == '\n' {
			break
		}
		n++
	}
	c.Consume(n)
	return true
}

// Newline consumes "\n" or "\r\n", reporting whether one was present.
func Newline(c *cursor.Cursor) bool {
	if c.PeekByte() == '\n' {
		c.Consume(1)
		return true
	}
	if c.PeekByte() == '\r' && c.PeekByteAt(1) == '\n' {
		c.Consume(2)
		return true
	}
	return false
}

// NewlineParser adapts Newline to the combinator.Parser shape.
var NewlineParser = combinator.Match(func(c *cursor.Cursor) (struct{}, bool) {
	return struct{}{}, Newline(c)
}, "newline")

// AtEndOfLine reports whether the cursor is positioned at a newline or EOF,
// without consuming anything.
func AtEndOfLine(c *cursor.Cursor) bool {
	b := c.PeekByte()
	return b == 0 || b == '\n' || (b == '\r' && c.PeekByteAt(1) == '\n')
}
