// Package paths provides centralized path handling for pkgenv.
// It implements the XDG Base Directory layout for pkgenv's
// own files and resolves the package search path.
package paths
