package cli

import (
	stderrors "errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/shell"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellFormat(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		configured string
		envShell   string
		expected   shell.Format
	}{
		{"flag wins", "fish", "zsh", "/bin/bash", shell.FormatFish},
		{"configured default", "", "zsh", "/bin/bash", shell.FormatZsh},
		{"detected from SHELL", "", "", "/usr/local/bin/fish", shell.FormatFish},
		{"bash fallback", "", "", "", shell.FormatBash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SHELL", tt.envShell)
			got, err := shellFormat(tt.flag, tt.configured)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := shellFormat("csh", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
}

func TestLookPath(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "tool"), []byte("#!/bin/sh\n"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(first, "data"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(first, "dir"), 0755))

	environ := []string{"HOME=/home/u", "PATH=" + first + string(os.PathListSeparator) + second}

	got, err := lookPath("tool", environ)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "tool"), got)

	got, err = lookPath("./relative/tool", environ)
	require.NoError(t, err)
	assert.Equal(t, "./relative/tool", got)

	for _, name := range []string{"data", "dir", "missing"} {
		_, err := lookPath(name, environ)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), name)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New(errors.ErrInternal, "boom")))
	assert.Equal(t, 7, ExitCode(&ExitError{Code: 7}))
}

func TestChildExitCode(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected int
	}{
		{"exit status", "exit 3", 3},
		{"killed by signal", "kill -TERM $$", 128 + 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := exec.Command("/bin/sh", "-c", tt.script).Run()
			var exitErr *exec.ExitError
			require.True(t, stderrors.As(err, &exitErr))
			assert.Equal(t, tt.expected, childExitCode(exitErr))
		})
	}
}

func TestInstallHelpTopics(t *testing.T) {
	withTopics := fstest.MapFS{
		"topics/requests.md": {Data: []byte("# Requests\n")},
	}
	require.NoError(t, installHelpTopics(&cobra.Command{Use: "pkgenv"}, withTopics))

	err := installHelpTopics(&cobra.Command{Use: "pkgenv"}, fstest.MapFS{})
	assert.Error(t, err)
}
