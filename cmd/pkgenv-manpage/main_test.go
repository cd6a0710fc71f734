package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Stdout(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, generate(&out, ""))
	assert.Contains(t, out.String(), `.TH "PKGENV" "1"`)
	assert.Contains(t, out.String(), "pkgenv")
}

func TestGenerate_Tree(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "man1")
	require.NoError(t, generate(nil, dir))

	for _, page := range []string{"pkgenv.1", "pkgenv-activate.1", "pkgenv-exec.1"} {
		_, err := os.Stat(filepath.Join(dir, page))
		assert.NoError(t, err, page)
	}
}
