// Package display holds the view models shared by all renderers.
package display

import (
	"github.com/arthur-debert/pkgenv/pkg/types"
)

// PackageRow is one line of the package list
type PackageRow struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Dir         string   `json:"dir"`
	Variants    []string `json:"variants,omitempty"`
	Tools       []string `json:"tools,omitempty"`
	Description string   `json:"description,omitempty"`
}

// PackageInfo is the detailed view of one package
type PackageInfo struct {
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	UUID          string   `json:"uuid"`
	Root          string   `json:"root"`
	Source        string   `json:"source,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	Description   string   `json:"description,omitempty"`
	Requires      []string `json:"requires,omitempty"`
	BuildRequires []string `json:"build_requires,omitempty"`
	Tools         []string `json:"tools,omitempty"`
	Variants      []string `json:"variants,omitempty"`
	Variant       string   `json:"variant,omitempty"`
	Commands      []string `json:"commands"`
	BuildCommand  string   `json:"build_command,omitempty"`
}

// ValidationResult is the outcome of validating one descriptor file
type ValidationResult struct {
	Path    string `json:"path"`
	Package string `json:"package,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Valid reports whether the descriptor passed validation
func (v ValidationResult) Valid() bool {
	return v.Error == ""
}

// ActivationStep is one applied operation, for explaining an activation
type ActivationStep struct {
	Package string          `json:"package"`
	Op      types.EnvOpKind `json:"op"`
	Var     string          `json:"var"`
	Value   string          `json:"value,omitempty"`
}

// NewPackageRow builds a list row from an installed package
func NewPackageRow(pkg *types.InstalledPackage) PackageRow {
	d := pkg.Descriptor
	return PackageRow{
		Name:        d.Name(),
		Version:     d.Version(),
		Dir:         pkg.Dir,
		Variants:    variantStrings(d.Variants),
		Tools:       d.ProvidedTools,
		Description: firstLine(d.Description),
	}
}

// NewPackageInfo builds the detailed view of an installed package.
// defaultCommand describes the routine used when the descriptor has no
// commands.
func NewPackageInfo(pkg *types.InstalledPackage, defaultCommand types.EnvOp) PackageInfo {
	d := pkg.Descriptor
	info := PackageInfo{
		Name:          d.Name(),
		Version:       d.Version(),
		UUID:          d.UUID(),
		Root:          pkg.Root(),
		Source:        d.Source,
		Authors:       d.Authors,
		Description:   d.Description,
		Requires:      d.RuntimeRequirements,
		BuildRequires: d.BuildRequirements,
		Tools:         d.ProvidedTools,
		Variants:      variantStrings(d.Variants),
		Variant:       pkg.Variant.String(),
		BuildCommand:  d.BuildCommand,
	}

	commands := d.Commands
	if len(commands) == 0 {
		commands = []types.EnvOp{defaultCommand}
	}
	for _, op := range commands {
		info.Commands = append(info.Commands, FormatOp(op))
	}
	return info
}

// NewActivationSteps converts a context journal into steps
func NewActivationSteps(journal []types.AppliedOp) []ActivationStep {
	steps := make([]ActivationStep, len(journal))
	for i, op := range journal {
		steps[i] = ActivationStep{Package: op.Package, Op: op.Kind, Var: op.Var, Value: op.Value}
	}
	return steps
}

// FormatOp renders an operation the way descriptors spell it,
// e.g. "PATH.append({root}/bin)"
func FormatOp(op types.EnvOp) string {
	if op.Kind == types.OpUnset {
		return op.Var + ".unset()"
	}
	return op.Var + "." + string(op.Kind) + "(" + op.Value.String() + ")"
}

func variantStrings(variants []types.Variant) []string {
	if len(variants) == 0 {
		return nil
	}
	out := make([]string, len(variants))
	for i, v := range variants {
		out[i] = v.String()
	}
	return out
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
