package lexer_test

import (
	"testing"

	"github.com/aledsdavies/duro/internal/cursor"
	"github.com/aledsdavies/duro/lexer"
)

func TestKeyRequiresColon(t *testing.T) {
	c := cursor.New("name: \"Carlos\"")
	name, ok := lexer.Key(c)
	if !ok || name != "name" {
		t.Fatalf("expected key 'name', got %q ok=%v", name, ok)
	}
	if c.Pos() != 4 {
		t.Fatalf("Key must not consume the colon, pos=%d", c.Pos())
	}
}

func TestKeyRejectsDottedName(t *testing.T) {
	c := cursor.New("with.dot: 5")
	if _, ok := lexer.Key(c); ok {
		t.Fatal("expected dotted key to fail (identifier stops at '.', no ':' follows)")
	}
	if c.Pos() != 0 {
		t.Fatalf("failed Key must not advance cursor, pos=%d", c.Pos())
	}
}

func TestNumericKeyIsPermitted(t *testing.T) {
	c := cursor.New("1234: \"1234\"")
	name, ok := lexer.Key(c)
	if !ok || name != "1234" {
		t.Fatalf("expected numeric key '1234', got %q ok=%v", name, ok)
	}
}

func TestVariableName(t *testing.T) {
	c := cursor.New("$g: \"Gura\"")
	name, ok := lexer.VariableName(c)
	if !ok || name != "g" {
		t.Fatalf("expected variable name 'g', got %q ok=%v", name, ok)
	}
}
