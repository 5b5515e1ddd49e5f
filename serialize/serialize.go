// Package serialize implements the dual of the parser: Dump walks a value
// tree and renders it back to canonical source text.
//
// Grounded in the teacher's pkgs/generator package, which walks a parsed
// CommandFile and builds a shell script via a strings.Builder-driven
// template/emission pass; generalized here from shell-script emission to
// canonical document emission over the seven-armed value tree instead of
// devcmd's command AST.
package serialize

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/duro/value"
)

const indentUnit = 4

// Dump renders v as canonical source text. A non-Object root is rendered
// as a bare value expression; the common case is an Object produced by
// parser.Load.
func Dump(v *value.Value) (string, error) {
	var sb strings.Builder
	if v.Kind == value.Object {
		if err := writeObjectBody(&sb, v.Object, 0); err != nil {
			return "", err
		}
		return sb.String(), nil
	}
	if err := writeInlineValue(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// writeObjectBody emits one "key: value" line per entry at the given
// indent depth, recursing into a nested block for object-valued entries.
func writeObjectBody(sb *strings.Builder, obj *value.Obj, depth int) error {
	pad := strings.Repeat(" ", depth*indentUnit)
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		sb.WriteString(pad)
		sb.WriteString(key)
		sb.WriteString(":")
		if v.Kind == value.Object && v.Object.Len() > 0 {
			sb.WriteString("\n")
			if err := writeObjectBody(sb, v.Object, depth+1); err != nil {
				return err
			}
			continue
		}
		sb.WriteString(" ")
		if err := writeInlineValue(sb, v); err != nil {
			return err
		}
		sb.WriteString("\n")
	}
	return nil
}

// writeInlineValue emits a single-line rendering of any non-block value:
// lists always render on one line, matching the "prefer single-line"
// rule - there is no line-wrapping heuristic since document sizes here are
// small and round-trip fidelity matters more than readability of huge
// lists.
func writeInlineValue(sb *strings.Builder, v *value.Value) error {
	switch v.Kind {
	case value.Null:
		sb.WriteString("null")
	case value.Bool:
		if v.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case value.Integer, value.Float:
		sb.WriteString(value.FormatNumber(v))
	case value.String:
		sb.WriteString(quoteBasic(v.String))
	case value.List:
		sb.WriteString("[")
		for i, item := range v.List {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := writeInlineValue(sb, item); err != nil {
				return err
			}
		}
		sb.WriteString("]")
	case value.Object:
		sb.WriteString("{")
		keys := v.Object.Keys()
		for i, key := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			inner, _ := v.Object.Get(key)
			sb.WriteString(key)
			sb.WriteString(": ")
			if err := writeInlineValue(sb, inner); err != nil {
				return err
			}
		}
		sb.WriteString("}")
	default:
		return fmt.Errorf("serialize: unknown value kind %v", v.Kind)
	}
	return nil
}

// quoteBasic renders s as a basic "..." string literal, escaping the
// characters the language reserves in basic strings plus any other
// non-printable byte as \uXXXX.
func quoteBasic(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '$':
			sb.WriteString(`\$`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
