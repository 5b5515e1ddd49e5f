package parser

import (
	"github.com/aledsdavies/duro/combinator"
	"github.com/aledsdavies/duro/errors"
	"github.com/aledsdavies/duro/internal/cursor"
	"github.com/aledsdavies/duro/lexer"
	"github.com/aledsdavies/duro/value"
)

// leafValue dispatches the three value alternatives with no leading
// delimiter of their own - bool, null, number - through combinator.Choice:
// none of the three can fail with a programmatically meaningful error once
// committed, so Choice's "try the next alternative, report the deepest
// failure" behavior is exactly right for them.
var leafValue = combinator.Choice(
	combinator.Match(tryBool, "boolean"),
	combinator.Match(tryNull, "null"),
	lexer.NumberParser,
)

// parseValue recognizes one value in an inline context: list literal,
// inline object, any of the four string flavors, a number, a boolean, null,
// or a variable reference.
//
// Dispatch is a direct switch on the leading byte rather than routing every
// alternative through leafValue's Choice: list/object/string/variable
// productions can fail with a programmatically meaningful error (duplicate
// key, unterminated string, undefined variable) after already committing to
// their leading delimiter, and Choice's "try the next alternative" fallback
// would otherwise flatten that into a generic "no alternative matched"
// failure once the other alternatives refuse to match the same prefix.
func (fs *fileState) parseValue() (*value.Value, error) {
	c := fs.c
	line := c.Line()

	switch c.PeekByte() {
	case '[':
		return fs.parseListLiteral()
	case '{':
		return fs.parseInlineObject()
	case '\'':
		if c.StartsWith("'''") {
			text, ok := lexer.MultilineLiteralString(c)
			if !ok {
				return nil, errors.New(errors.ParseError, line, "unterminated multiline literal string")
			}
			return value.NewString(text), nil
		}
		text, ok := lexer.LiteralString(c)
		if !ok {
			return nil, errors.New(errors.ParseError, line, "unterminated literal string")
		}
		return value.NewString(text), nil
	case '"':
		if c.StartsWith(`"""`) {
			segs, ok := lexer.MultilineBasicString(c)
			if !ok {
				return nil, errors.New(errors.ParseError, line, "unterminated or malformed multiline string")
			}
			return fs.resolveSegments(segs, line)
		}
		segs, ok := lexer.BasicString(c)
		if !ok {
			return nil, errors.New(errors.ParseError, line, "unterminated or malformed string")
		}
		return fs.resolveSegments(segs, line)
	case '$':
		name, ok := lexer.VariableName(c)
		if !ok {
			return nil, errors.New(errors.ParseError, line, "malformed variable reference")
		}
		return fs.resolveVariable(name, line)
	}

	if v, err := leafValue(c); err == nil {
		return v, nil
	}
	return nil, errors.New(errors.ParseError, line, "expected a value")
}

func tryBool(c *cursor.Cursor) (*value.Value, bool) {
	if c.StartsWith("true") && !identFollowsAt(c, 4) {
		c.Consume(4)
		return value.NewBool(true), true
	}
	if c.StartsWith("false") && !identFollowsAt(c, 5) {
		c.Consume(5)
		return value.NewBool(false), true
	}
	return nil, false
}

func tryNull(c *cursor.Cursor) (*value.Value, bool) {
	if c.StartsWith("null") && !identFollowsAt(c, 4) {
		c.Consume(4)
		return value.NewNull(), true
	}
	return nil, false
}

func identFollowsAt(c *cursor.Cursor, offset int) bool {
	b := c.PeekByteAt(offset)
	return b < 128 && lexer.IsIdentByte(b)
}

// resolveSegments joins a decomposed interpolated string's literal and
// variable-reference segments into its final text.
func (fs *fileState) resolveSegments(segs []lexer.Segment, line int) (*value.Value, error) {
	if len(segs) == 1 && segs[0].Kind == lexer.SegLiteral {
		return value.NewString(segs[0].Text), nil
	}
	if len(segs) == 0 {
		return value.NewString(""), nil
	}
	var out string
	for _, seg := range segs {
		if seg.Kind == lexer.SegLiteral {
			out += seg.Text
			continue
		}
		v, err := fs.resolveVariable(seg.Text, line)
		if err != nil {
			return nil, err
		}
		text, err := value.Stringify(v)
		if err != nil {
			return nil, errors.Wrap(errors.ParseError, line, err, "cannot interpolate variable %q", seg.Text)
		}
		out += text
	}
	return value.NewString(out), nil
}

// resolveVariable looks up name among user-defined variables first, falling
// back to the process environment. A user-defined variable keeps its
// stored kind; an environment fallback is always a string.
func (fs *fileState) resolveVariable(name string, line int) (*value.Value, error) {
	if v, ok := fs.ctx.variables[name]; ok {
		return v, nil
	}
	if v, ok := fs.ctx.envLookup(name); ok {
		return value.NewString(v), nil
	}
	return nil, errors.New(errors.VariableNotDefined, line, "variable %q is not defined", name)
}
