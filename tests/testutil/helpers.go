// Package testutil provides shared test helpers for building throwaway
// package repositories on disk.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteManifest writes a package.yaml under
// <root>/<name>/<version>/package.yaml and returns the version
// directory. It fails the test on any filesystem error.
func WriteManifest(t *testing.T, root string, name string, version string, content string) string {
	t.Helper()
	dir := filepath.Join(root, name, version)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.yaml"), []byte(content), 0o644))
	return dir
}

// WriteVersionDir creates an empty version directory with no manifest,
// for exercising the silent-skip path of the scanner.
func WriteVersionDir(t *testing.T, root string, name string, version string) string {
	t.Helper()
	dir := filepath.Join(root, name, version)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}
