package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "levauto.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeTempConfig(t, `
checks:
  - pattern: abc
    k: 1
    input: "-"
  - pattern: hello world
    k: 2
    input: words.txt
`)

	b, err := Load(path)
	require.NoError(t, err)
	require.Len(t, b.Checks, 2)
	require.Equal(t, "abc", b.Checks[0].Pattern)
	require.Equal(t, 1, b.Checks[0].K)
	require.Equal(t, "-", b.Checks[0].Input)
	require.Equal(t, "words.txt", b.Checks[1].Input)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsEmptyChecks(t *testing.T) {
	path := writeTempConfig(t, "checks: []\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "no checks defined")
}

func TestLoadRejectsNegativeK(t *testing.T) {
	path := writeTempConfig(t, `
checks:
  - pattern: abc
    k: -1
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "must be non-negative")
}

func TestLoadRejectsEmptyPattern(t *testing.T) {
	path := writeTempConfig(t, `
checks:
  - pattern: ""
    k: 1
`)
	_, err := Load(path)
	require.ErrorContains(t, err, "pattern must not be empty")
}
