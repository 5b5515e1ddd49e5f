package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckSucceedsOnValidDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ok.ura", "a: 1\n")

	code := run([]string{"check", path})
	assert.Equal(t, exitSuccess, code)
}

func TestCheckReportsParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.ura", "with.dot: 5\n")

	code := run([]string{"check", path})
	assert.Equal(t, exitParseError, code)
}

func TestCheckReportsIOErrorOnMissingFile(t *testing.T) {
	code := run([]string{"check", "/no/such/file.ura"})
	assert.Equal(t, exitIOError, code)
}

func TestLoadOnMissingArgumentIsUsageError(t *testing.T) {
	code := run([]string{"load"})
	assert.Equal(t, exitUsageError, code)
}
