package parser

import (
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"

	"github.com/aledsdavies/duro/combinator"
	"github.com/aledsdavies/duro/errors"
	"github.com/aledsdavies/duro/internal/cursor"
	"github.com/aledsdavies/duro/lexer"
	"github.com/aledsdavies/duro/value"
)

// importKeyword matches the literal "import", failing without advancing
// the cursor when absent.
var importKeyword = combinator.Keyword("import")

// tryImportDirective attempts 'import "path"' at column 0. When "import" is
// not followed by a space, the word is assumed to be the start of an
// ordinary key (e.g. "important: true") and control returns to the caller
// untouched. Once "import " has matched, anything other than a quote right
// after that single space (extra whitespace included) is a ParseError.
//
// Cycle and duplicate detection mirrors the teacher's visited-set depth
// first traversal for call-graph recursion (runtime/validation), adapted
// from command-call cycles to import-path cycles: importChain tracks paths
// on the current descent (for cycle rejection), importedPaths tracks every
// canonicalized path imported anywhere in the document (for
// DuplicatedImport).
func (fs *fileState) tryImportDirective(root *value.Obj) (matched bool, err error) {
	c := fs.c
	cp := c.Checkpoint()
	line := c.Line()
	if _, kwErr := importKeyword(c); kwErr != nil {
		return false, nil
	}

	if c.PeekByte() != ' ' {
		c.Restore(cp)
		return false, nil
	}
	c.Consume(1)
	if c.PeekByte() == ' ' || c.PeekByte() == '\t' {
		return false, errors.New(errors.ParseError, line, "expected exactly one space after 'import'")
	}
	if c.PeekByte() != '"' {
		return false, errors.New(errors.ParseError, line, "expected a quoted path after 'import'")
	}

	segs, ok := lexer.BasicString(c)
	if !ok {
		return false, errors.New(errors.ParseError, line, "unterminated or malformed import path")
	}
	pathVal, err := fs.resolveSegments(segs, line)
	if err != nil {
		return false, err
	}
	if ferr := fs.finishLine(); ferr != nil {
		return false, ferr
	}

	if err := fs.runImport(pathVal.String, line, root); err != nil {
		return false, err
	}
	return true, nil
}

// runImport resolves path relative to the current file's directory,
// rejects duplicate or cyclic imports, parses the referenced file with the
// shared variable/import state, and merges its top-level keys into root.
func (fs *fileState) runImport(path string, line int, root *value.Obj) error {
	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(fs.dir, resolved)
	}
	canonical, err := filepath.Abs(filepath.Clean(resolved))
	if err != nil {
		return errors.Wrap(errors.FileNotFound, line, err, "cannot resolve import path %q", path)
	}

	if _, cycling := fs.ctx.importChain[canonical]; cycling {
		return errors.New(errors.DuplicatedImport, line, "import %q forms a cycle", path)
	}
	if _, already := fs.ctx.importedPaths[canonical]; already {
		return errors.New(errors.DuplicatedImport, line, "%q has already been imported", path)
	}

	text, err := os.ReadFile(canonical)
	if err != nil {
		return errors.Wrap(errors.FileNotFound, line, pkgerrors.Wrapf(err, "reading import %q", path), "cannot open imported file %q", path)
	}

	fs.ctx.importedPaths[canonical] = struct{}{}
	fs.ctx.importChain[canonical] = struct{}{}
	defer delete(fs.ctx.importChain, canonical)

	child := &fileState{
		ctx:          fs.ctx,
		c:            cursor.New(string(text)),
		dir:          filepath.Dir(canonical),
		indentLevels: []int{0},
	}
	imported, err := child.parseDocument()
	if err != nil {
		return err
	}

	for _, key := range imported.Object.Keys() {
		v, _ := imported.Object.Get(key)
		if !root.Set(key, v) {
			return errors.New(errors.DuplicatedKey, line, "key %q from import %q collides with an existing key", key, path)
		}
	}
	return nil
}
