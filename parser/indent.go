package parser

import (
	"github.com/aledsdavies/duro/errors"
)

// measureIndent counts the leading space run at the current line position
// without consuming it on failure. Any tab in the run is rejected outright
// (tabs are never permitted in indentation); an indent whose width is not a
// multiple of the fixed 4-space unit is rejected as well, since the
// indentation stack only ever grows or shrinks by whole multiples of it.
func (fs *fileState) measureIndent() (int, error) {
	cp := fs.c.Checkpoint()
	n := 0
	for {
		b := fs.c.PeekByteAt(n)
		if b == ' ' {
			n++
			continue
		}
		if b == '\t' {
			fs.c.Restore(cp)
			return 0, errors.New(errors.InvalidIndentation, fs.c.Line(), "tabs are not permitted in indentation")
		}
		break
	}
	if n%indentUnit != 0 {
		fs.c.Restore(cp)
		return 0, errors.New(errors.InvalidIndentation, fs.c.Line(), "indentation of %d spaces is not a multiple of %d", n, indentUnit)
	}
	if n > 0 && !fs.onIndentStack(n) {
		fs.c.Restore(cp)
		return 0, errors.New(errors.InvalidIndentation, fs.c.Line(), "indentation of %d spaces does not match any enclosing block", n)
	}
	fs.c.Consume(n)
	return n, nil
}

// onIndentStack reports whether n is either 0 (the document root) or one of
// the currently open block indent levels - the set of columns a line may
// legally dedent to.
func (fs *fileState) onIndentStack(n int) bool {
	if n == 0 {
		return true
	}
	for _, lvl := range fs.indentLevels {
		if lvl == n {
			return true
		}
	}
	return false
}

// expectIndent measures the current line's indentation and requires it to
// equal level exactly, restoring the cursor and failing with
// InvalidIndentation otherwise.
func (fs *fileState) expectIndent(level int) error {
	cp := fs.c.Checkpoint()
	n, err := fs.measureIndent()
	if err != nil {
		return err
	}
	if n != level {
		fs.c.Restore(cp)
		return errors.New(errors.InvalidIndentation, fs.c.Line(), "expected indentation of %d spaces, found %d", level, n)
	}
	return nil
}

// atIndent reports whether the current line's indentation equals level,
// always restoring the cursor - used to look ahead before deciding whether
// to continue a block or let an enclosing frame handle the line.
func (fs *fileState) atIndent(level int) bool {
	cp := fs.c.Checkpoint()
	n, err := fs.measureIndent()
	fs.c.Restore(cp)
	return err == nil && n == level
}
