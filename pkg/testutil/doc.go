// Package testutil builds on-disk package repositories for tests.
//
// A TestRepo is a temporary search root laid out the way pkgenv expects:
//
//	<root>/<name>/<version>/package.toml
//	<root>/<name>/<version>/<variant segments>/bin/...
package testutil
