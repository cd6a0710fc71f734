// Package config handles configuration management for pkgenv.
//
// Configuration is layered, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, config.toml or config.yaml under $XDG_CONFIG_HOME/pkgenv
//  3. PKGENV_* environment variables
//  4. explicit overrides, usually command line flags
package config
