package value_test

import (
	"math"
	"testing"

	"github.com/aledsdavies/duro/value"
	"github.com/google/go-cmp/cmp"
)

func comparer() cmp.Option {
	return cmp.Comparer(value.Equal)
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	obj := value.NewObj()
	obj.Set("b", value.NewInteger(2))
	obj.Set("a", value.NewInteger(1))

	if diff := cmp.Diff([]string{"b", "a"}, obj.Keys()); diff != "" {
		t.Fatalf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectRejectsDuplicateKey(t *testing.T) {
	obj := value.NewObj()
	if !obj.Set("x", value.NewInteger(1)) {
		t.Fatal("first Set should succeed")
	}
	if obj.Set("x", value.NewInteger(2)) {
		t.Fatal("second Set of same key should fail")
	}
}

func TestEqualTreatsNaNAsEqualPositionally(t *testing.T) {
	a := value.NewFloat(math.NaN())
	b := value.NewFloat(math.NaN())

	if diff := cmp.Diff(a, b, comparer()); diff != "" {
		t.Fatalf("NaN values should compare equal positionally (-want +got):\n%s", diff)
	}
}

func TestEqualDetectsKindMismatch(t *testing.T) {
	a := value.NewString("1")
	b := value.NewInteger(1)

	if value.Equal(a, b) {
		t.Fatal("string and integer values must not be equal")
	}
}

func TestFormatNumberSpecialFloats(t *testing.T) {
	cases := map[string]*value.Value{
		"nan":  value.NewFloat(math.NaN()),
		"+inf": value.NewFloat(math.Inf(1)),
		"-inf": value.NewFloat(math.Inf(-1)),
		"5e+22": value.NewFloat(5e22),
	}
	for want, v := range cases {
		if got := value.FormatNumber(v); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestStringifyRejectsCompositeValues(t *testing.T) {
	if _, err := value.Stringify(value.NewList(nil)); err == nil {
		t.Fatal("expected Stringify to reject a list value")
	}
	if _, err := value.Stringify(value.NewObject()); err == nil {
		t.Fatal("expected Stringify to reject an object value")
	}
}

func TestNestedObjectEquality(t *testing.T) {
	left := value.NewObject()
	left.Object.Set("user1", func() *value.Value {
		inner := value.NewObject()
		inner.Object.Set("name", value.NewString("Carlos"))
		inner.Object.Set("year_of_birth", value.NewInteger(1890))
		return inner
	}())

	right := value.NewObject()
	right.Object.Set("user1", func() *value.Value {
		inner := value.NewObject()
		inner.Object.Set("name", value.NewString("Carlos"))
		inner.Object.Set("year_of_birth", value.NewInteger(1890))
		return inner
	}())

	if diff := cmp.Diff(left, right, comparer()); diff != "" {
		t.Fatalf("nested objects should be equal (-want +got):\n%s", diff)
	}
}
