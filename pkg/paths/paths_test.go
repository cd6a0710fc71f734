package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PackagesPathPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("explicit roots win", func(t *testing.T) {
		t.Setenv(EnvPackagesPath, "/from/env")
		p, err := New([]string{"/opt/pkgs", "~/pkgs", ""})
		require.NoError(t, err)
		assert.Equal(t, []string{"/opt/pkgs", filepath.Join(home, "pkgs")}, p.PackagesPath())
		assert.False(t, p.UsedDefaultPackagesPath())
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv(EnvPackagesPath, "/a"+string(os.PathListSeparator)+"/b")
		p, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"/a", "/b"}, p.PackagesPath())
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvPackagesPath, "")
		p, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(home, "packages")}, p.PackagesPath())
		assert.True(t, p.UsedDefaultPackagesPath())
	})
}

func TestXDGDirs(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	p, err := New([]string{"/opt/pkgs"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "config", "pkgenv"), p.ConfigDir())
	assert.Equal(t, filepath.Join(base, "data", "pkgenv"), p.DataDir())
	assert.Equal(t, filepath.Join(base, "state", "pkgenv", "pkgenv.log"), p.LogFilePath())
	assert.Equal(t, filepath.Join(base, "config", "pkgenv", "config.toml"), p.ConfigFile())
}

func TestConfigFile_PrefersExistingYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{}"), 0644))

	p, err := New([]string{"/opt/pkgs"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), p.ConfigFile())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(""), 0644))
	assert.Equal(t, filepath.Join(dir, "config.toml"), p.ConfigFile())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "pkgs"), ExpandHome("~/pkgs"))
	assert.Equal(t, "~other/pkgs", ExpandHome("~other/pkgs"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
}
