// Package parser implements the structural parser and top-level processor:
// the indentation tracker, expression parser, key/value lines, array
// literals, inline and block objects, variable definition lines, import
// directives, and the Load entry point that orchestrates a whole document.
//
// Grounded on the teacher's pkgs/parser.Parser (a hand-written recursive
// descent parser holding mutable position/error state, dispatched through
// a top-level parseProgram loop), generalized here to build on top of the
// combinator kernel and cursor instead of a pre-tokenized slice, since this
// language's grammar is scannerless and indentation-sensitive rather than
// token-stream-sensitive like devcmd's.
package parser

import (
	"os"

	"github.com/aledsdavies/duro/errors"
	"github.com/aledsdavies/duro/internal/cursor"
	"github.com/aledsdavies/duro/lexer"
	"github.com/aledsdavies/duro/value"
)

// envLookup reports whether an environment variable is set, and its value.
// A field rather than a bare os.Getenv call so tests can substitute a fixed
// environment without mutating the real process environment.
func (ctx *docContext) envLookup(name string) (string, bool) {
	if ctx.lookupEnv != nil {
		return ctx.lookupEnv(name)
	}
	return os.LookupEnv(name)
}

// indentUnit is the fixed indentation step recognized by the state
// machine; the spec mandates exactly 4 spaces per nesting level.
const indentUnit = 4

// Option configures a Load call.
type Option func(*options)

type options struct {
	baseDir   string
	lookupEnv func(name string) (string, bool)
}

// WithBaseDir sets the directory relative imports are resolved against.
// Defaults to the process working directory.
func WithBaseDir(dir string) Option {
	return func(o *options) { o.baseDir = dir }
}

// WithEnvLookup overrides the environment-variable fallback used to resolve
// $name references with no matching user-defined variable. Intended for
// tests; production callers get os.LookupEnv by default.
func WithEnvLookup(lookup func(name string) (string, bool)) Option {
	return func(o *options) { o.lookupEnv = lookup }
}

// docContext is shared by a top-level Load call and every import it pulls
// in: the variable environment and import-set grow monotonically and are
// inherited by reference, centralizing the single-definition invariants
// the spec requires across the whole merged document.
type docContext struct {
	variables     map[string]*value.Value
	importedPaths map[string]struct{}
	importChain   map[string]struct{} // paths currently being imported, for cycle detection
	lookupEnv     func(name string) (string, bool)
}

// fileState is the transient, per-file cursor/indentation state: unlike
// docContext, this is NOT shared across imports - each imported file gets
// its own cursor and indentation stack, exactly as the spec's "Import-
// induced child parses ... create their own transient cursor state"
// requires.
type fileState struct {
	ctx *docContext
	c   *cursor.Cursor
	dir string // directory relative imports in this file resolve against

	indentLevels []int
}

// Load parses text into a root object value, resolving imports relative to
// opts' base directory (or the process working directory by default).
func Load(text string, opts ...Option) (*value.Value, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		cfg.baseDir = wd
	}

	ctx := &docContext{
		variables:     make(map[string]*value.Value),
		importedPaths: make(map[string]struct{}),
		importChain:   make(map[string]struct{}),
		lookupEnv:     cfg.lookupEnv,
	}
	fs := &fileState{ctx: ctx, c: cursor.New(text), dir: cfg.baseDir, indentLevels: []int{0}}
	return fs.parseDocument()
}

// parseDocument drives whole-document parsing: a loop of useless-line
// skipping, variable definitions, import directives, and top-level key
// lines, until EOF.
func (fs *fileState) parseDocument() (*value.Value, error) {
	root := value.NewObject()

	for {
		fs.skipUselessLines()
		if fs.c.AtEOF() {
			break
		}
		if err := fs.expectIndent(0); err != nil {
			return nil, err
		}

		matched, err := fs.tryVariableDefinition()
		if err != nil {
			return nil, err
		}
		if matched {
			continue
		}

		matched, err = fs.tryImportDirective(root.Object)
		if err != nil {
			return nil, err
		}
		if matched {
			continue
		}

		kv, err := fs.parseKeyLine(0)
		if err != nil {
			return nil, err
		}
		if !root.Object.Set(kv.Key, kv.Value) {
			return nil, errors.New(errors.DuplicatedKey, kv.Line, "key %q is already defined", kv.Key)
		}
	}

	return root, nil
}

// skipUselessLines silently skips any run of blank or comment-only lines
// at a position where a new top-level statement is expected.
func (fs *fileState) skipUselessLines() {
	for {
		cp := fs.c.Checkpoint()
		lexer.SkipInlineWhitespace(fs.c)
		if lexer.Comment(fs.c) {
			lexer.Newline(fs.c)
			continue
		}
		if lexer.AtEndOfLine(fs.c) {
			if !lexer.Newline(fs.c) {
				// blank run at EOF with no trailing newline
				fs.c.Restore(cp)
				return
			}
			continue
		}
		fs.c.Restore(cp)
		return
	}
}
