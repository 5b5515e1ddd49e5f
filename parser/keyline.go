package parser

import (
	"github.com/aledsdavies/duro/combinator"
	"github.com/aledsdavies/duro/errors"
	"github.com/aledsdavies/duro/lexer"
	"github.com/aledsdavies/duro/value"
)

// KeyedValue is the (key, Value) pair produced by one key line.
type KeyedValue struct {
	Key   string
	Value *value.Value
	Line  int
}

// parseKeyLine recognizes one key line at the given indentation level:
// "key" ":" " " (value | newline-then-block). The caller is responsible for
// having already confirmed the line's indentation equals indent.
func (fs *fileState) parseKeyLine(indent int) (KeyedValue, error) {
	c := fs.c
	cp := c.Checkpoint()
	line := c.Line()

	key, ok := lexer.Key(c)
	if !ok {
		c.Restore(cp)
		return KeyedValue{}, errors.New(errors.ParseError, line, "expected a key")
	}
	c.Consume(1) // ':'

	if lexer.AtEndOfLine(c) {
		lexer.Newline(c)
		obj, err := fs.parseBlockObject(indent, line)
		if err != nil {
			return KeyedValue{}, err
		}
		return KeyedValue{Key: key, Value: obj, Line: line}, nil
	}

	if c.PeekByte() != ' ' && c.PeekByte() != '\t' {
		c.Restore(cp)
		return KeyedValue{}, errors.New(errors.ParseError, line, "expected exactly one whitespace after ':'")
	}
	c.Consume(1)
	if c.PeekByte() == ' ' || c.PeekByte() == '\t' {
		c.Restore(cp)
		return KeyedValue{}, errors.New(errors.ParseError, line, "expected exactly one whitespace after ':'")
	}

	if lexer.Comment(c) || lexer.AtEndOfLine(c) {
		lexer.Newline(c)
		obj, err := fs.parseBlockObject(indent, line)
		if err != nil {
			return KeyedValue{}, err
		}
		return KeyedValue{Key: key, Value: obj, Line: line}, nil
	}

	val, err := fs.parseValue()
	if err != nil {
		return KeyedValue{}, err
	}
	if err := fs.finishLine(); err != nil {
		return KeyedValue{}, err
	}
	return KeyedValue{Key: key, Value: val, Line: line}, nil
}

// finishLine requires the remainder of the current line to be only
// trailing whitespace or a comment, then consumes its terminating newline
// (absent only at EOF).
func (fs *fileState) finishLine() error {
	c := fs.c
	lexer.SkipInlineWhitespace(c)
	lexer.Comment(c)
	if !lexer.AtEndOfLine(c) {
		return errors.New(errors.ParseError, c.Line(), "unexpected trailing content")
	}
	combinator.Maybe(lexer.NewlineParser)(c)
	return nil
}

// parseBlockObject parses the child key lines of a block whose header was
// at parentIndent, requiring at least one child at parentIndent+4 and
// ending when a line's indentation returns to parentIndent or shallower, or
// EOF is reached. An empty block is a parse error.
func (fs *fileState) parseBlockObject(parentIndent, headerLine int) (*value.Value, error) {
	childIndent := parentIndent + indentUnit
	fs.indentLevels = append(fs.indentLevels, childIndent)
	defer func() { fs.indentLevels = fs.indentLevels[:len(fs.indentLevels)-1] }()

	obj := value.NewObj()
	count := 0

	for {
		fs.skipUselessLines()
		if fs.c.AtEOF() {
			break
		}
		if !fs.atIndent(childIndent) {
			break
		}
		if err := fs.expectIndent(childIndent); err != nil {
			return nil, err
		}
		kv, err := fs.parseKeyLine(childIndent)
		if err != nil {
			return nil, err
		}
		if !obj.Set(kv.Key, kv.Value) {
			return nil, errors.New(errors.DuplicatedKey, kv.Line, "key %q is already defined", kv.Key)
		}
		count++
	}

	if count == 0 {
		return nil, errors.New(errors.ParseError, headerLine, "block object has no child keys")
	}
	return &value.Value{Kind: value.Object, Object: obj}, nil
}
