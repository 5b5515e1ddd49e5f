// Package combinator implements the tiny backtracking parser-combinator
// runtime the structural parser is built from: Match, Maybe, Keyword,
// Choice, OneOrMore, ZeroOrMore. Every combinator either succeeds advancing
// the cursor or fails restoring it; the kernel itself enforces that
// contract with internal assertions rather than leaving it as an unchecked
// assumption, using internal/invariant (ported from the teacher's Tiger
// Style core/invariant package).
//
// There is no packrat memoization - inputs are small configuration files
// and unbounded backtracking is acceptable, matching the corpus's
// hand-rolled recursive-descent parsers (e.g. pkgs/parser.Parser) more
// than a general-purpose PEG engine.
package combinator

import (
	"fmt"

	"github.com/aledsdavies/duro/internal/cursor"
	"github.com/aledsdavies/duro/internal/invariant"
)

// Failure is the error a Parser returns when it does not match. Pos/Line
// record where the failure was detected so Choice can prefer the deepest
// one when every alternative fails.
type Failure struct {
	Pos  int
	Line int
	Msg  string
}

func (f *Failure) Error() string { return f.Msg }

// Fail builds a Failure at the cursor's current position.
func Fail(c *cursor.Cursor, format string, args ...any) error {
	return &Failure{Pos: c.Pos(), Line: c.Line(), Msg: fmt.Sprintf(format, args...)}
}

// Parser is a backtracking parsing function over a Cursor. A non-nil error
// means failure; on failure the cursor MUST be left exactly where the
// parser found it (this is the contract enforced by the combinators below).
type Parser[T any] func(c *cursor.Cursor) (T, error)

// Match runs a raw byte/rune-level recognizer that itself reports success
// via a bool, wrapping it into the Parser[T] failure-carrying shape used by
// the rest of the kernel. recognize must not advance the cursor on a false
// return.
func Match[T any](recognize func(c *cursor.Cursor) (T, bool), what string) Parser[T] {
	return func(c *cursor.Cursor) (T, error) {
		cp := c.Checkpoint()
		v, ok := recognize(c)
		if !ok {
			invariant.Invariant(c.Checkpoint() == cp, "Match(%s): failed recognizer must not advance cursor", what)
			var zero T
			return zero, Fail(c, "expected %s", what)
		}
		return v, nil
	}
}

// Keyword matches an exact literal and fails, without advancing, if absent.
func Keyword(literal string) Parser[string] {
	return func(c *cursor.Cursor) (string, error) {
		if !c.StartsWith(literal) {
			return "", Fail(c, "expected %q", literal)
		}
		c.Consume(len(literal))
		return literal, nil
	}
}

// Maybe runs p and never fails: on failure the cursor is left where p found
// it and Maybe returns (zero, false); present reports whether p actually
// matched.
func Maybe[T any](p Parser[T]) func(c *cursor.Cursor) (value T, present bool) {
	return func(c *cursor.Cursor) (T, bool) {
		cp := c.Checkpoint()
		v, err := p(c)
		if err != nil {
			invariant.Invariant(c.Checkpoint() == cp, "Maybe: failed parser must not advance cursor")
			var zero T
			return zero, false
		}
		return v, true
	}
}

// Choice tries each alternative in order; the first success wins. If every
// alternative fails, Choice restores the cursor to the entry checkpoint and
// returns the deepest-position failure observed (ties broken by the last
// one encountered).
func Choice[T any](parsers ...Parser[T]) Parser[T] {
	return func(c *cursor.Cursor) (T, error) {
		cp := c.Checkpoint()
		var deepest *Failure
		for _, p := range parsers {
			v, err := p(c)
			if err == nil {
				return v, nil
			}
			invariant.Invariant(c.Checkpoint() == cp, "Choice: failed alternative must not advance cursor")
			if f, ok := err.(*Failure); ok {
				if deepest == nil || f.Pos >= deepest.Pos {
					deepest = f
				}
			}
		}
		c.Restore(cp)
		var zero T
		if deepest != nil {
			return zero, deepest
		}
		return zero, Fail(c, "no alternative matched")
	}
}

// ZeroOrMore applies p greedily. A trailing failure that made no progress
// is absorbed as success rather than propagated; a parser that somehow
// succeeds without consuming input is also stopped after one iteration to
// guarantee termination.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(c *cursor.Cursor) ([]T, error) {
		var out []T
		for {
			cp := c.Checkpoint()
			v, err := p(c)
			if err != nil {
				invariant.Invariant(c.Checkpoint() == cp, "ZeroOrMore: failed parser must not advance cursor")
				break
			}
			out = append(out, v)
			if c.Checkpoint() == cp {
				// No progress: stop to guarantee the loop terminates instead
				// of absorbing an unbounded run of zero-width matches.
				break
			}
		}
		return out, nil
	}
}

// OneOrMore requires at least one successful match of p, then behaves like
// ZeroOrMore.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(c *cursor.Cursor) ([]T, error) {
		cp := c.Checkpoint()
		items, _ := ZeroOrMore(p)(c)
		if len(items) == 0 {
			c.Restore(cp)
			var zero []T
			return zero, Fail(c, "expected at least one match")
		}
		return items, nil
	}
}

// Map transforms a successful result without affecting failure handling.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c *cursor.Cursor) (U, error) {
		v, err := p(c)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}
}
