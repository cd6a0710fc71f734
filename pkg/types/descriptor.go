package types

import (
	"path/filepath"
	"strings"
)

// PackageDescriptor describes one installable unit. Name, version and uuid
// are fixed at construction and only readable afterwards.
type PackageDescriptor struct {
	name    string
	version string
	uuid    string

	Authors             []string
	Description         string
	BuildRequirements   []string
	RuntimeRequirements []string
	ProvidedTools       []string
	Variants            []Variant
	BuildCommand        string

	// Commands is the activation routine. Empty means the default routine
	// (append the bin directory to the configured variable).
	Commands []EnvOp

	// Source is the file the descriptor was loaded from, if any.
	Source string
}

// NewPackageDescriptor creates a descriptor with its identity fields set.
func NewPackageDescriptor(name, version, uuid string) *PackageDescriptor {
	return &PackageDescriptor{
		name:    name,
		version: version,
		uuid:    uuid,
	}
}

// Name returns the package name
func (d *PackageDescriptor) Name() string { return d.name }

// Version returns the package version string
func (d *PackageDescriptor) Version() string { return d.version }

// UUID returns the rename-stable identifier
func (d *PackageDescriptor) UUID() string { return d.uuid }

// QualifiedName returns "name-version", the form used in requests and
// in the activation tracking variable.
func (d *PackageDescriptor) QualifiedName() string {
	return d.name + "-" + d.version
}

// IsPlatformSpecific reports whether the package declares build variants.
func (d *PackageDescriptor) IsPlatformSpecific() bool {
	return len(d.Variants) > 0
}

// Variant is an ordered constraint set such as
// ["platform-linux", "arch-x86_64"].
type Variant []string

// String returns the variant as a slash separated list
func (v Variant) String() string {
	return strings.Join(v, "/")
}

// Subpath returns the install subdirectory of the variant relative to the
// package version directory.
func (v Variant) Subpath() string {
	if len(v) == 0 {
		return ""
	}
	return filepath.Join(v...)
}

// InstalledPackage is a descriptor found on disk together with its version
// directory and, once a variant is chosen, its install root.
type InstalledPackage struct {
	Descriptor *PackageDescriptor

	// Dir is the version directory the descriptor was found in.
	Dir string

	// Variant is the selected variant, nil for packages without variants.
	Variant Variant
}

// Root returns the package root used for {root} resolution.
func (p *InstalledPackage) Root() string {
	if len(p.Variant) == 0 {
		return p.Dir
	}
	return filepath.Join(p.Dir, p.Variant.Subpath())
}
