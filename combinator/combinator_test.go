package combinator_test

import (
	"testing"

	"github.com/aledsdavies/duro/combinator"
	"github.com/aledsdavies/duro/internal/cursor"
	"github.com/google/go-cmp/cmp"
)

func digit(c *cursor.Cursor) (byte, bool) {
	b := c.PeekByte()
	if b < '0' || b > '9' {
		return 0, false
	}
	c.Consume(1)
	return b, true
}

func TestKeywordSuccessAndFailure(t *testing.T) {
	c := cursor.New("import \"x\"")
	p := combinator.Keyword("import")

	if _, err := p(c); err != nil {
		t.Fatalf("expected match, got error: %v", err)
	}
	if diff := cmp.Diff(6, c.Pos()); diff != "" {
		t.Fatalf("cursor position mismatch (-want +got):\n%s", diff)
	}

	c2 := cursor.New("importer")
	if _, err := combinator.Keyword("import ")(c2); err == nil {
		t.Fatal("expected failure on non-matching literal")
	}
	if diff := cmp.Diff(0, c2.Pos()); diff != "" {
		t.Fatalf("failed Keyword must not advance cursor (-want +got):\n%s", diff)
	}
}

func TestChoiceRestoresCursorWhenEveryAlternativeFails(t *testing.T) {
	c := cursor.New("0xZZ")
	hexDigits := combinator.Match(func(c *cursor.Cursor) ([]byte, bool) {
		b := c.PeekByteAt(2)
		isHex := (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
		if !c.StartsWith("0x") || !isHex {
			return nil, false
		}
		c.Consume(2)
		return []byte("0x"), true
	}, "hex prefix")
	binDigits := combinator.Match(func(c *cursor.Cursor) ([]byte, bool) {
		if !c.StartsWith("0b") {
			return nil, false
		}
		c.Consume(2)
		return []byte("0b"), true
	}, "bin prefix")

	_, err := combinator.Choice(binDigits, hexDigits)(c)
	if err == nil {
		t.Fatal("expected both alternatives to fail")
	}
	if diff := cmp.Diff(0, c.Pos()); diff != "" {
		t.Fatalf("Choice must restore cursor when every alternative fails (-want +got):\n%s", diff)
	}
}

func TestZeroOrMoreAbsorbsNoProgressFailure(t *testing.T) {
	c := cursor.New("123abc")
	p := combinator.Match(digit, "digit")

	digits, err := combinator.ZeroOrMore(p)(c)
	if err != nil {
		t.Fatalf("ZeroOrMore must never fail: %v", err)
	}
	if diff := cmp.Diff(3, len(digits)); diff != "" {
		t.Fatalf("digit count mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(3, c.Pos()); diff != "" {
		t.Fatalf("cursor position mismatch (-want +got):\n%s", diff)
	}
}

func TestOneOrMoreRequiresAtLeastOneMatch(t *testing.T) {
	c := cursor.New("abc")
	p := combinator.Match(digit, "digit")

	if _, err := combinator.OneOrMore(p)(c); err == nil {
		t.Fatal("expected failure: no digits present")
	}
	if diff := cmp.Diff(0, c.Pos()); diff != "" {
		t.Fatalf("failed OneOrMore must not advance cursor (-want +got):\n%s", diff)
	}
}

func TestMaybeNeverFails(t *testing.T) {
	c := cursor.New("abc")
	p := combinator.Match(digit, "digit")

	v, present := combinator.Maybe(p)(c)
	if present {
		t.Fatalf("expected absent, got %v", v)
	}
	if diff := cmp.Diff(0, c.Pos()); diff != "" {
		t.Fatalf("cursor position mismatch (-want +got):\n%s", diff)
	}
}
