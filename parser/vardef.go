package parser

import (
	"github.com/aledsdavies/duro/errors"
	"github.com/aledsdavies/duro/lexer"
	"github.com/aledsdavies/duro/value"
)

// tryVariableDefinition attempts "$name: value" at column 0. It reports
// matched=false, err=nil when the line plainly isn't a variable definition
// (no leading '$'), leaving the cursor untouched for the caller to try the
// next top-level alternative.
func (fs *fileState) tryVariableDefinition() (matched bool, err error) {
	c := fs.c
	if c.PeekByte() != '$' {
		return false, nil
	}
	cp := c.Checkpoint()
	line := c.Line()

	name, ok := lexer.VariableName(c)
	if !ok {
		c.Restore(cp)
		return false, errors.New(errors.ParseError, line, "malformed variable name")
	}
	if c.PeekByte() != ':' {
		return false, errors.New(errors.ParseError, line, "expected ':' after variable name %q", name)
	}
	c.Consume(1)
	if c.PeekByte() != ' ' && c.PeekByte() != '\t' {
		return false, errors.New(errors.ParseError, line, "expected whitespace after ':' in variable definition")
	}
	c.Consume(1)
	if c.PeekByte() == ' ' || c.PeekByte() == '\t' {
		return false, errors.New(errors.ParseError, line, "expected exactly one whitespace after ':' in variable definition")
	}

	val, err := fs.parseValue()
	if err != nil {
		return false, err
	}
	switch val.Kind {
	case value.Integer, value.Float, value.String:
	default:
		return false, errors.New(errors.ParseError, line, "variable %q may only be a number or string", name)
	}
	if ferr := fs.finishLine(); ferr != nil {
		return false, ferr
	}

	if _, exists := fs.ctx.variables[name]; exists {
		return false, errors.New(errors.DuplicatedVariable, line, "variable %q is already defined", name)
	}
	fs.ctx.variables[name] = val
	return true, nil
}
