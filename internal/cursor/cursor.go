// Package cursor implements the input cursor the combinator kernel and the
// structural parser are built on: a byte position and 1-based line counter
// over the source text, with lookahead, consumption, and checkpoint/restore.
//
// Modeled on the teacher's pkgs/lexer scanning style (byte-position cursor
// with ASCII-range fast paths), generalized from token-producing lexing to
// scannerless combinator parsing over raw text.
package cursor

// Position is an opaque checkpoint returned by Checkpoint and accepted by
// Restore. Callers should treat it as opaque, but it is comparable so tests
// and invariant checks can assert "no progress was made".
type Position struct {
	pos  int
	line int
}

// Cursor holds the source text plus the mutable position/line state shared
// by every combinator and lexical rule operating on one parse.
type Cursor struct {
	Text string
	pos  int
	line int // 1-based
}

// New creates a cursor positioned at the start of text.
func New(text string) *Cursor {
	return &Cursor{Text: text, pos: 0, line: 1}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Line returns the current 1-based line number.
func (c *Cursor) Line() int { return c.line }

// AtEOF reports whether the cursor has consumed all input.
func (c *Cursor) AtEOF() bool { return c.pos >= len(c.Text) }

// Remaining returns the unconsumed tail of the source text.
func (c *Cursor) Remaining() string { return c.Text[c.pos:] }

// Peek returns up to n bytes starting at the current position without
// advancing. It may return fewer than n bytes if the input is shorter.
func (c *Cursor) Peek(n int) string {
	end := c.pos + n
	if end > len(c.Text) {
		end = len(c.Text)
	}
	return c.Text[c.pos:end]
}

// PeekByte returns the byte at the current position, or 0 at EOF.
func (c *Cursor) PeekByte() byte {
	if c.AtEOF() {
		return 0
	}
	return c.Text[c.pos]
}

// PeekByteAt returns the byte offset bytes ahead of the current position,
// or 0 if that position is past EOF.
func (c *Cursor) PeekByteAt(offset int) byte {
	idx := c.pos + offset
	if idx < 0 || idx >= len(c.Text) {
		return 0
	}
	return c.Text[idx]
}

// StartsWith reports whether the remaining input begins with literal.
func (c *Cursor) StartsWith(literal string) bool {
	return len(c.Text)-c.pos >= len(literal) && c.Text[c.pos:c.pos+len(literal)] == literal
}

// Consume advances the cursor by n bytes, returning the consumed text and
// updating the line counter for every newline passed over. n must not
// exceed the remaining input length.
func (c *Cursor) Consume(n int) string {
	end := c.pos + n
	if end > len(c.Text) {
		end = len(c.Text)
	}
	text := c.Text[c.pos:end]
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			c.line++
		}
	}
	c.pos = end
	return text
}

// Checkpoint captures the current position and line so the combinator
// kernel can restore it after a failed attempt.
func (c *Cursor) Checkpoint() Position {
	return Position{pos: c.pos, line: c.line}
}

// Restore resets the cursor to a previously captured checkpoint.
func (c *Cursor) Restore(p Position) {
	c.pos = p.pos
	c.line = p.line
}

// ColumnOf returns the 0-based column of the given checkpoint relative to
// the start of its line, used for indentation counting.
func (c *Cursor) ColumnOf(p Position) int {
	lineStart := p.pos
	for lineStart > 0 && c.Text[lineStart-1] != '\n' {
		lineStart--
	}
	return p.pos - lineStart
}
