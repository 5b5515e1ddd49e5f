package errors_test

import (
	"strings"
	"testing"

	goerrors "errors"

	"github.com/aledsdavies/duro/errors"
)

func TestErrorMessageIncludesKindAndLine(t *testing.T) {
	err := errors.New(errors.DuplicatedKey, 7, "key %q already defined", "name")

	if !strings.Contains(err.Error(), "DuplicatedKey") {
		t.Errorf("expected Kind in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "line 7") {
		t.Errorf("expected line number in message, got %q", err.Error())
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := errors.New(errors.FileNotFound, 1, "cannot open %q", "a.ura")

	if !errors.Is(err, errors.FileNotFound) {
		t.Fatal("expected Is to match FileNotFound")
	}
	if errors.Is(err, errors.ParseError) {
		t.Fatal("expected Is not to match a different kind")
	}
}

func TestWrapPreservesCauseForUnwrap(t *testing.T) {
	cause := goerrors.New("no such file or directory")
	err := errors.Wrap(errors.FileNotFound, 3, cause, "import %q failed", "missing.ura")

	if !goerrors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the wrapped cause")
	}
}
