package config

import (
	"runtime"

	"github.com/arthur-debert/pkgenv/pkg/activation"
)

// Activation holds the activator policy
type Activation struct {
	Variable    string `koanf:"variable"`
	BinDir      string `koanf:"bin_dir"`
	Strict      bool   `koanf:"strict"`
	Dedupe      bool   `koanf:"dedupe"`
	Parallel    int    `koanf:"parallel"`
	TrackingVar string `koanf:"tracking_var"`
}

// Packages holds repository lookup settings
type Packages struct {
	Path            []string `koanf:"path"`
	DescriptorNames []string `koanf:"descriptor_names"`
}

// Host describes the machine variants are matched against
type Host struct {
	Platform string `koanf:"platform"`
	Arch     string `koanf:"arch"`
	OS       string `koanf:"os"`
}

// Shell holds output settings for the activate command
type Shell struct {
	Default string `koanf:"default"`
}

// Config is the complete pkgenv configuration
type Config struct {
	Activation Activation `koanf:"activation"`
	Packages   Packages   `koanf:"packages"`
	Host       Host       `koanf:"host"`
	Shell      Shell      `koanf:"shell"`
}

// Default returns the embedded defaults with host values detected
func Default() *Config {
	cfg, err := LoadConfiguration("", nil)
	if err != nil {
		// Fallback to minimal config if the embedded file is broken
		cfg = &Config{
			Activation: Activation{
				Variable:    activation.DefaultVariable,
				BinDir:      activation.DefaultBinDir,
				Parallel:    1,
				TrackingVar: "PKGENV_ACTIVE",
			},
		}
		postProcessConfig(cfg)
	}
	return cfg
}

// ActivatorOptions maps the activation section onto activator options
func (c *Config) ActivatorOptions() activation.Options {
	return activation.Options{
		Variable: c.Activation.Variable,
		BinDir:   c.Activation.BinDir,
		Strict:   c.Activation.Strict,
		Dedupe:   c.Activation.Dedupe,
		Parallel: c.Activation.Parallel,
	}
}

// HostPlatform returns the platform name used in variant requirements
func HostPlatform() string {
	if runtime.GOOS == "darwin" {
		return "osx"
	}
	return runtime.GOOS
}

// HostArch returns the architecture name used in variant requirements
func HostArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "386":
		return "i386"
	case "arm64":
		if runtime.GOOS == "darwin" {
			return "arm64"
		}
		return "aarch64"
	default:
		return runtime.GOARCH
	}
}
