package descriptor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgenv/pkg/errors"
)

// Format is a descriptor serialization format
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DefaultFileNames lists descriptor file names in lookup order
var DefaultFileNames = []string{"package.toml", "package.yaml", "package.yml", "package.json"}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.Newf(errors.ErrInvalidArgument, "unsupported descriptor format %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// Find returns the first descriptor file present in dir, trying names in
// order. An empty names slice means DefaultFileNames.
func Find(dir string, names []string) (string, bool) {
	if len(names) == 0 {
		names = DefaultFileNames
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
