package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pkgenv/pkg/errors"
)

// Environment variable names
const (
	// EnvPackagesPath lists package search roots, separated like PATH
	EnvPackagesPath = "PKGENV_PACKAGES_PATH"

	// EnvConfigDir overrides the XDG config directory for pkgenv
	EnvConfigDir = "PKGENV_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for pkgenv
	EnvDataDir = "PKGENV_DATA_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for pkgenv-specific files
	AppDirName = "pkgenv"

	// DefaultPackagesDir is the search root used when nothing is configured
	DefaultPackagesDir = "~/packages"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// ConfigFileNameYAML is the alternative YAML configuration file
	ConfigFileNameYAML = "config.yaml"

	// LogFileName is the name of the log file
	LogFileName = "pkgenv.log"
)

// Paths provides centralized path management for pkgenv
type Paths interface {
	PackagesPath() []string
	UsedDefaultPackagesPath() bool
	ConfigDir() string
	ConfigFile() string
	DataDir() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	packagesPath []string
	usedDefault  bool
	xdgConfig    string
	xdgData      string
	xdgState     string
}

// New creates a Paths instance. packagesPath takes precedence; when empty
// the search path comes from PKGENV_PACKAGES_PATH, then DefaultPackagesDir.
func New(packagesPath []string) (Paths, error) {
	p := &paths{}

	roots := packagesPath
	if len(roots) == 0 {
		roots = filepath.SplitList(os.Getenv(EnvPackagesPath))
	}
	if len(roots) == 0 {
		roots = []string{DefaultPackagesDir}
		p.usedDefault = true
	}

	for _, root := range roots {
		if strings.TrimSpace(root) == "" {
			continue
		}
		abs, err := filepath.Abs(ExpandHome(root))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", root)
		}
		p.packagesPath = append(p.packagesPath, abs)
	}

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = ExpandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
}

func (p *paths) PackagesPath() []string {
	return append([]string(nil), p.packagesPath...)
}

func (p *paths) UsedDefaultPackagesPath() bool {
	return p.usedDefault
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFile returns the TOML config file if present, else the YAML one if
// present, else the TOML path where a config would be created.
func (p *paths) ConfigFile() string {
	tomlPath := filepath.Join(p.xdgConfig, ConfigFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath
	}
	yamlPath := filepath.Join(p.xdgConfig, ConfigFileNameYAML)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}
	return tomlPath
}

func (p *paths) DataDir() string {
	return p.xdgData
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user forms are left alone
	return path
}
