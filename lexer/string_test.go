package lexer_test

import (
	"testing"

	"github.com/aledsdavies/duro/internal/cursor"
	"github.com/aledsdavies/duro/lexer"
	"github.com/google/go-cmp/cmp"
)

func TestLiteralStringHasNoEscapesOrInterpolation(t *testing.T) {
	c := cursor.New(`'$no_parsed variable!'`)
	got, ok := lexer.LiteralString(c)
	if !ok {
		t.Fatal("expected literal string to parse")
	}
	if diff := cmp.Diff("$no_parsed variable!", got); diff != "" {
		t.Errorf("literal string mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteralStringRejectsRawNewline(t *testing.T) {
	c := cursor.New("'abc\ndef'")
	if _, ok := lexer.LiteralString(c); ok {
		t.Fatal("expected single-line literal string to reject a raw newline")
	}
	if c.Pos() != 0 {
		t.Fatalf("failed LiteralString must not advance cursor, pos=%d", c.Pos())
	}
}

func TestMultilineLiteralStringTrimsLeadingNewline(t *testing.T) {
	c := cursor.New("'''\nline one\nline two'''")
	got, ok := lexer.MultilineLiteralString(c)
	if !ok {
		t.Fatal("expected multiline literal string to parse")
	}
	if diff := cmp.Diff("line one\nline two", got); diff != "" {
		t.Errorf("multiline literal mismatch (-want +got):\n%s", diff)
	}
}

func TestBasicStringEscapesAndInterpolation(t *testing.T) {
	c := cursor.New(`"$g is cool"`)
	segs, ok := lexer.BasicString(c)
	if !ok {
		t.Fatal("expected basic string to parse")
	}
	want := []lexer.Segment{
		{Kind: lexer.SegVar, Text: "g"},
		{Kind: lexer.SegLiteral, Text: " is cool"},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segment mismatch (-want +got):\n%s", diff)
	}
}

func TestBasicStringEscapedDollarSuppressesInterpolation(t *testing.T) {
	c := cursor.New(`"\$name is cool"`)
	segs, ok := lexer.BasicString(c)
	if !ok {
		t.Fatal("expected basic string to parse")
	}
	want := []lexer.Segment{
		{Kind: lexer.SegLiteral, Text: "$name is cool"},
	}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segment mismatch (-want +got):\n%s", diff)
	}
}

func TestBasicStringUnicodeEscapes(t *testing.T) {
	c := cursor.New("\"Jos\\u00e9\"")
	segs, ok := lexer.BasicString(c)
	if !ok {
		t.Fatal("expected basic string to parse")
	}
	want := []lexer.Segment{{Kind: lexer.SegLiteral, Text: "José"}}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segment mismatch (-want +got):\n%s", diff)
	}
}

func TestBasicStringRejectsUnknownEscape(t *testing.T) {
	c := cursor.New(`"bad \q escape"`)
	if _, ok := lexer.BasicString(c); ok {
		t.Fatal("expected unknown escape to fail")
	}
	if c.Pos() != 0 {
		t.Fatalf("failed BasicString must not advance cursor, pos=%d", c.Pos())
	}
}

func TestMultilineBasicStringLineContinuation(t *testing.T) {
	c := cursor.New("\"\"\"The quick brown fox \\\n    jumps over the lazy dog.\"\"\"")
	segs, ok := lexer.MultilineBasicString(c)
	if !ok {
		t.Fatal("expected multiline basic string to parse")
	}
	want := []lexer.Segment{{Kind: lexer.SegLiteral, Text: "The quick brown fox jumps over the lazy dog."}}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segment mismatch (-want +got):\n%s", diff)
	}
}

func TestMultilineBasicStringNormalizesCRLF(t *testing.T) {
	c := cursor.New("\"\"\"line one\r\nline two\"\"\"")
	segs, ok := lexer.MultilineBasicString(c)
	if !ok {
		t.Fatal("expected multiline basic string to parse")
	}
	want := []lexer.Segment{{Kind: lexer.SegLiteral, Text: "line one\nline two"}}
	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("segment mismatch (-want +got):\n%s", diff)
	}
}
