package lexer

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/duro/internal/cursor"
)

// SegmentKind distinguishes the two pieces a basic string decomposes into:
// literal text and unresolved variable references. Resolution against the
// variable environment happens one layer up, in the parser package, which
// is the only place that knows about user-defined variables and the
// process environment.
type SegmentKind int

const (
	SegLiteral SegmentKind = iota
	SegVar
)

// Segment is one piece of a basic (interpolating) string.
type Segment struct {
	Kind SegmentKind
	Text string // literal text for SegLiteral, variable name for SegVar
}

// LiteralString recognizes a single-line '...' string: no escapes, no
// interpolation. Fails, without advancing, if unterminated or if it
// contains a raw newline.
func LiteralString(c *cursor.Cursor) (string, bool) {
	if c.PeekByte() != '\'' || c.StartsWith("'''") {
		return "", false
	}
	cp := c.Checkpoint()
	c.Consume(1)
	n := 0
	for {
		b := c.PeekByteAt(n)
		if b == 0 || b == '\n' {
			c.Restore(cp)
			return "", false
		}
		if b == '\'' {
			break
		}
		n++
	}
	text := c.Peek(n)
	c.Consume(n)
	c.Consume(1) // closing quote
	return text, true
}

// MultilineLiteralString recognizes '''...''': no escapes, no
// interpolation, spans multiple lines. A newline immediately after the
// opening delimiter is trimmed. CRLF sequences are normalized to "\n".
func MultilineLiteralString(c *cursor.Cursor) (string, bool) {
	if !c.StartsWith("'''") {
		return "", false
	}
	cp := c.Checkpoint()
	c.Consume(3)
	if Newline(c) {
		// trimmed - the leading newline contributes nothing to content
	}
	var sb strings.Builder
	for {
		if c.StartsWith("'''") {
			c.Consume(3)
			return sb.String(), true
		}
		if c.AtEOF() {
			c.Restore(cp)
			return "", false
		}
		if c.StartsWith("\r\n") {
			sb.WriteByte('\n')
			c.Consume(2)
			continue
		}
		sb.WriteByte(c.PeekByte())
		c.Consume(1)
	}
}

// BasicString recognizes a single-line "..." string with escapes and
// $var interpolation, returning its decomposition into literal/variable
// segments.
func BasicString(c *cursor.Cursor) ([]Segment, bool) {
	if c.PeekByte() != '"' || c.StartsWith(`"""`) {
		return nil, false
	}
	cp := c.Checkpoint()
	c.Consume(1)
	segs, ok := scanInterpolatedBody(c, false)
	if !ok {
		c.Restore(cp)
		return nil, false
	}
	if c.PeekByte() != '"' {
		c.Restore(cp)
		return nil, false
	}
	c.Consume(1)
	return segs, true
}

// MultilineBasicString recognizes """...""" with escapes, $var
// interpolation, a trimmed leading newline, and backslash-newline line
// continuation.
func MultilineBasicString(c *cursor.Cursor) ([]Segment, bool) {
	if !c.StartsWith(`"""`) {
		return nil, false
	}
	cp := c.Checkpoint()
	c.Consume(3)
	Newline(c) // leading newline right after the delimiter is trimmed
	segs, ok := scanInterpolatedBody(c, true)
	if !ok {
		c.Restore(cp)
		return nil, false
	}
	if !c.StartsWith(`"""`) {
		c.Restore(cp)
		return nil, false
	}
	c.Consume(3)
	return segs, true
}

// scanInterpolatedBody consumes string content up to (not including) the
// closing delimiter, handling escapes, $var interpolation, CRLF
// normalization, and (when multiline) backslash-newline continuations. It
// never consumes the closing delimiter itself and returns false if the
// input ends before one is found.
func scanInterpolatedBody(c *cursor.Cursor, multiline bool) ([]Segment, bool) {
	var segs []Segment
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			segs = append(segs, Segment{Kind: SegLiteral, Text: literal.String()})
			literal.Reset()
		}
	}

	closing := `"`
	if multiline {
		closing = `"""`
	}

	for {
		if c.AtEOF() {
			return nil, false
		}
		if c.StartsWith(closing) {
			flushLiteral()
			return segs, true
		}
		if !multiline && c.PeekByte() == '\n' {
			return nil, false
		}

		switch c.PeekByte() {
		case '\\':
			if multiline && isLineContinuation(c) {
				consumeLineContinuation(c)
				continue
			}
			text, ok := readEscape(c)
			if !ok {
				return nil, false
			}
			literal.WriteString(text)
		case '$':
			name, ok := VariableName(c)
			if !ok {
				// A lone '$' with no identifier following is kept as a
				// literal character rather than treated as a malformed
				// reference - mirrors treating '$' like any other
				// ordinary character when it can't start a reference.
				literal.WriteByte('$')
				c.Consume(1)
				continue
			}
			flushLiteral()
			segs = append(segs, Segment{Kind: SegVar, Text: name})
		case '\r':
			if c.PeekByteAt(1) == '\n' {
				literal.WriteByte('\n')
				c.Consume(2)
			} else {
				literal.WriteByte('\r')
				c.Consume(1)
			}
		default:
			literal.WriteByte(c.PeekByte())
			c.Consume(1)
		}
	}
}

// isLineContinuation reports whether the cursor is positioned at a
// backslash directly followed by a newline (ignoring intervening CR).
func isLineContinuation(c *cursor.Cursor) bool {
	if c.PeekByteAt(1) == '\n' {
		return true
	}
	return c.PeekByteAt(1) == '\r' && c.PeekByteAt(2) == '\n'
}

// consumeLineContinuation eats the backslash, the newline, and all
// leading whitespace of the following line.
func consumeLineContinuation(c *cursor.Cursor) {
	c.Consume(1) // backslash
	Newline(c)
	SkipInlineWhitespace(c)
}

// readEscape consumes one backslash escape sequence and returns its
// literal text. Reports false on an unrecognized sequence.
func readEscape(c *cursor.Cursor) (string, bool) {
	c.Consume(1) // backslash
	switch c.PeekByte() {
	case 'b':
		c.Consume(1)
		return "\b", true
	case 'f':
		c.Consume(1)
		return "\f", true
	case 'n':
		c.Consume(1)
		return "\n", true
	case 'r':
		c.Consume(1)
		return "\r", true
	case 't':
		c.Consume(1)
		return "\t", true
	case '"':
		c.Consume(1)
		return "\"", true
	case '\\':
		c.Consume(1)
		return "\\", true
	case '$':
		c.Consume(1)
		return "$", true
	case 'u':
		c.Consume(1)
		return readUnicodeEscape(c, 4)
	case 'U':
		c.Consume(1)
		return readUnicodeEscape(c, 8)
	default:
		return "", false
	}
}

func readUnicodeEscape(c *cursor.Cursor, digits int) (string, bool) {
	hex := c.Peek(digits)
	if len(hex) != digits {
		return "", false
	}
	for i := 0; i < digits; i++ {
		b := hex[i]
		if !isHexDigit(b) {
			return "", false
		}
	}
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", false
	}
	c.Consume(digits)
	return string(rune(cp)), true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
