// Package value implements the tagged-union document value produced by the
// parser and consumed by the serializer: Null, Bool, Integer, Float,
// String, List, and Object.
//
// Shaped after the teacher's AST node variants (pkgs/ast), but collapsed
// into a single struct-of-all-fields (rather than one Go type per AST node
// kind) since, unlike an AST, the value tree has no syntax to carry -
// seven exhaustively-known runtime shapes are a natural fit for a tagged
// struct, matched on Kind.
package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which field of a Value is meaningful.
type Kind int

const (
	Null Kind = iota
	Bool
	Integer
	Float
	String
	List
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case List:
		return "list"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the tagged union of document values. Construct one with the
// NewXxx helpers below rather than setting fields directly.
type Value struct {
	Kind    Kind
	Bool    bool
	Integer int64
	Float   float64
	String  string
	List    []*Value
	Object  *Obj
}

// NewNull returns the null value.
func NewNull() *Value { return &Value{Kind: Null} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{Kind: Bool, Bool: b} }

// NewInteger returns an integer value.
func NewInteger(i int64) *Value { return &Value{Kind: Integer, Integer: i} }

// NewFloat returns a float value (may be ±Inf or NaN).
func NewFloat(f float64) *Value { return &Value{Kind: Float, Float: f} }

// NewString returns a string value.
func NewString(s string) *Value { return &Value{Kind: String, String: s} }

// NewList returns a list value wrapping items (items is taken by reference).
func NewList(items []*Value) *Value { return &Value{Kind: List, List: items} }

// NewObject returns an empty object value, ready for Set.
func NewObject() *Value { return &Value{Kind: Object, Object: NewObj()} }

// IsScalar reports whether the value is a number, string, bool, or null.
// This is wider than what a variable definition accepts, which is only a
// number or a string.
func (v *Value) IsScalar() bool {
	switch v.Kind {
	case Null, Bool, Integer, Float, String:
		return true
	default:
		return false
	}
}

// Equal reports deep equality, treating two NaN floats as equal so
// round-trip tests can compare "is NaN" positionally instead of bit
// patterns. Suitable as a github.com/google/go-cmp Comparer.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Null:
		return true
	case Bool:
		return a.Bool == b.Bool
	case Integer:
		return a.Integer == b.Integer
	case Float:
		if math.IsNaN(a.Float) || math.IsNaN(b.Float) {
			return math.IsNaN(a.Float) && math.IsNaN(b.Float)
		}
		return a.Float == b.Float
	case String:
		return a.String == b.String
	case List:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case Object:
		return a.Object.Equal(b.Object)
	default:
		return false
	}
}

// FormatNumber renders an Integer or Float in its canonical textual form:
// base-10 for integers, shortest round-tripping decimal for floats, with
// the special spellings "+inf", "-inf", "nan" for non-finite floats. Panics
// if v is not a number - callers are expected to check Kind first.
func FormatNumber(v *Value) string {
	switch v.Kind {
	case Integer:
		return strconv.FormatInt(v.Integer, 10)
	case Float:
		switch {
		case math.IsNaN(v.Float):
			return "nan"
		case math.IsInf(v.Float, 1):
			return "+inf"
		case math.IsInf(v.Float, -1):
			return "-inf"
		default:
			s := strconv.FormatFloat(v.Float, 'g', -1, 64)
			if !strings.ContainsAny(s, ".eE") {
				// Keep a decimal point so an integral float reads back as a Float.
				s += ".0"
			}
			return s
		}
	default:
		panic(fmt.Sprintf("value.FormatNumber: not a number: %s", v.Kind))
	}
}

// Stringify renders a scalar value as interpolation text: the form
// substituted into a basic string's $name reference. Reports an error for
// List and Object, which are not legal interpolation targets.
func Stringify(v *Value) (string, error) {
	switch v.Kind {
	case Null:
		return "null", nil
	case Bool:
		if v.Bool {
			return "true", nil
		}
		return "false", nil
	case Integer, Float:
		return FormatNumber(v), nil
	case String:
		return v.String, nil
	default:
		return "", fmt.Errorf("cannot interpolate a %s value", v.Kind)
	}
}

// Obj is an ordered mapping from key to Value: keys are unique and
// insertion order is preserved and observable by the serializer.
type Obj struct {
	keys   []string
	values map[string]*Value
}

// NewObj returns an empty ordered object.
func NewObj() *Obj {
	return &Obj{values: make(map[string]*Value)}
}

// Set inserts key=val. It reports false without modifying the object if
// key is already present - callers turn that into a DuplicatedKey error
// with the right line number.
func (o *Obj) Set(key string, val *Value) bool {
	if _, exists := o.values[key]; exists {
		return false
	}
	o.keys = append(o.keys, key)
	o.values[key] = val
	return true
}

// Has reports whether key is already present.
func (o *Obj) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Get looks up key, returning (nil, false) if absent.
func (o *Obj) Get(key string) (*Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The caller must not mutate
// the returned slice.
func (o *Obj) Keys() []string { return o.keys }

// Len returns the number of keys.
func (o *Obj) Len() int { return len(o.keys) }

// Equal reports whether two objects have the same keys, in the same
// order, with equal values.
func (o *Obj) Equal(other *Obj) bool {
	if o == nil || other == nil {
		return o == other
	}
	if len(o.keys) != len(other.keys) {
		return false
	}
	for i, k := range o.keys {
		if other.keys[i] != k {
			return false
		}
		if !Equal(o.values[k], other.values[k]) {
			return false
		}
	}
	return true
}
