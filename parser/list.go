package parser

import (
	"github.com/aledsdavies/duro/combinator"
	"github.com/aledsdavies/duro/errors"
	"github.com/aledsdavies/duro/internal/cursor"
	"github.com/aledsdavies/duro/lexer"
	"github.com/aledsdavies/duro/value"
)

// bracketTriviaParser recognizes one step of inline whitespace, a comment,
// or a newline - the only place whitespace carries no structural meaning,
// since an open bracket or brace suspends indentation sensitivity until its
// matching close.
var bracketTriviaParser = combinator.Match(func(c *cursor.Cursor) (struct{}, bool) {
	moved := lexer.SkipInlineWhitespace(c) > 0
	if lexer.Comment(c) {
		moved = true
	}
	if lexer.Newline(c) {
		moved = true
	}
	return struct{}{}, moved
}, "bracket trivia")

// skipBracketTrivia consumes a greedy run of bracketTriviaParser steps.
func (fs *fileState) skipBracketTrivia() {
	combinator.ZeroOrMore(bracketTriviaParser)(fs.c)
}

// parseListLiteral recognizes "[" value ("," value)* ","? "]". The caller
// has already confirmed the leading '['.
func (fs *fileState) parseListLiteral() (*value.Value, error) {
	c := fs.c
	cp := c.Checkpoint()
	c.Consume(1) // '['

	var items []*value.Value
	fs.skipBracketTrivia()
	if c.PeekByte() == ']' {
		c.Consume(1)
		return value.NewList(items), nil
	}

	for {
		v, err := fs.parseValue()
		if err != nil {
			c.Restore(cp)
			return nil, err
		}
		items = append(items, v)
		fs.skipBracketTrivia()

		switch c.PeekByte() {
		case ',':
			c.Consume(1)
			fs.skipBracketTrivia()
			if c.PeekByte() == ']' {
				c.Consume(1)
				return value.NewList(items), nil
			}
		case ']':
			c.Consume(1)
			return value.NewList(items), nil
		default:
			c.Restore(cp)
			return nil, errors.New(errors.ParseError, c.Line(), "expected ',' or ']' in list literal")
		}
	}
}

// parseInlineObject recognizes "{" key ":" value ("," key ":" value)* "}".
// The caller has already confirmed the leading '{'.
func (fs *fileState) parseInlineObject() (*value.Value, error) {
	c := fs.c
	cp := c.Checkpoint()
	c.Consume(1) // '{'

	obj := value.NewObj()
	fs.skipBracketTrivia()
	if c.PeekByte() == '}' {
		c.Consume(1)
		return &value.Value{Kind: value.Object, Object: obj}, nil
	}

	for {
		fs.skipBracketTrivia()
		line := c.Line()
		key, ok := lexer.Key(c)
		if !ok {
			c.Restore(cp)
			return nil, errors.New(errors.ParseError, line, "expected a key in inline object")
		}
		c.Consume(1) // ':'
		if c.PeekByte() != ' ' && c.PeekByte() != '\t' {
			c.Restore(cp)
			return nil, errors.New(errors.ParseError, line, "expected whitespace after ':' in inline object")
		}
		lexer.SkipInlineWhitespace(c)

		v, err := fs.parseValue()
		if err != nil {
			c.Restore(cp)
			return nil, err
		}
		if !obj.Set(key, v) {
			c.Restore(cp)
			return nil, errors.New(errors.DuplicatedKey, line, "key %q is already defined", key)
		}
		fs.skipBracketTrivia()

		switch c.PeekByte() {
		case ',':
			c.Consume(1)
			fs.skipBracketTrivia()
			if c.PeekByte() == '}' {
				c.Consume(1)
				return &value.Value{Kind: value.Object, Object: obj}, nil
			}
		case '}':
			c.Consume(1)
			return &value.Value{Kind: value.Object, Object: obj}, nil
		default:
			c.Restore(cp)
			return nil, errors.New(errors.ParseError, c.Line(), "expected ',' or '}' in inline object")
		}
	}
}
