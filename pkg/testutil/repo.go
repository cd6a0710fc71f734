package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

// TestRepo is a temporary package search root
type TestRepo struct {
	Root string
}

// TestPackage is a package version written into a TestRepo
type TestPackage struct {
	Name    string
	Version string
	Dir     string // version directory holding the descriptor
}

// Command is a descriptor activation command
type Command struct {
	Op    string `toml:"op"`
	Var   string `toml:"var"`
	Value string `toml:"value,omitempty"`
}

// PackageConfig defines a test package
type PackageConfig struct {
	Name        string
	Version     string
	UUID        string // generated from name and version when empty
	Description string
	Requires    []string
	Tools       []string
	Variants    [][]string
	Commands    []Command

	// Files are created relative to the version directory
	Files FileTree
}

// FileTree represents a directory structure for testing. Values are file
// contents (string) or nested trees.
type FileTree map[string]interface{}

type packageFile struct {
	Name        string     `toml:"name"`
	Version     string     `toml:"version"`
	UUID        string     `toml:"uuid"`
	Description string     `toml:"description,omitempty"`
	Requires    []string   `toml:"requires,omitempty"`
	Tools       []string   `toml:"tools,omitempty"`
	Variants    [][]string `toml:"variants,omitempty"`
	Commands    []Command  `toml:"commands,omitempty"`
}

// NewTestRepo creates an empty search root in a temporary directory
func NewTestRepo(t *testing.T) *TestRepo {
	t.Helper()

	root := filepath.Join(t.TempDir(), "packages")
	require.NoError(t, os.MkdirAll(root, 0755))
	return &TestRepo{Root: root}
}

// AddPackage writes a package.toml for cfg and creates its files
func (r *TestRepo) AddPackage(t *testing.T, cfg PackageConfig) *TestPackage {
	t.Helper()

	dir := filepath.Join(r.Root, cfg.Name, cfg.Version)
	require.NoError(t, os.MkdirAll(dir, 0755))

	uuid := cfg.UUID
	if uuid == "" {
		uuid = fmt.Sprintf("test-%s-%s", cfg.Name, cfg.Version)
	}

	data, err := toml.Marshal(packageFile{
		Name:        cfg.Name,
		Version:     cfg.Version,
		UUID:        uuid,
		Description: cfg.Description,
		Requires:    cfg.Requires,
		Tools:       cfg.Tools,
		Variants:    cfg.Variants,
		Commands:    cfg.Commands,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.toml"), data, 0644))

	CreateFileTree(t, dir, cfg.Files)

	return &TestPackage{Name: cfg.Name, Version: cfg.Version, Dir: dir}
}

// AddRaw writes a descriptor file verbatim, for malformed descriptor cases
func (r *TestRepo) AddRaw(t *testing.T, name, version, fileName, content string) string {
	t.Helper()

	dir := filepath.Join(r.Root, name, version)
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, fileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// CreateFileTree recursively creates a file tree under basePath
func CreateFileTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
			require.NoError(t, os.WriteFile(fullPath, []byte(v), 0755))
		case FileTree:
			require.NoError(t, os.MkdirAll(fullPath, 0755))
			CreateFileTree(t, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
