package types

import "path/filepath"

// EnvOpKind identifies an environment mutation
type EnvOpKind string

const (
	// OpAppend adds a segment after the existing entries
	OpAppend EnvOpKind = "append"
	// OpPrepend adds a segment before the existing entries
	OpPrepend EnvOpKind = "prepend"
	// OpSet replaces the variable with a single value
	OpSet EnvOpKind = "set"
	// OpUnset removes the variable
	OpUnset EnvOpKind = "unset"
)

// Valid reports whether k is a known operation
func (k EnvOpKind) Valid() bool {
	switch k {
	case OpAppend, OpPrepend, OpSet, OpUnset:
		return true
	}
	return false
}

// Value is an operation argument. Root relative values are joined onto the
// package root at activation time instead of being interpolated as text.
type Value struct {
	RootRelative bool
	Path         string
}

// Literal returns a value used verbatim
func Literal(s string) Value {
	return Value{Path: s}
}

// RootPath returns a value relative to the package root
func RootPath(rel string) Value {
	return Value{RootRelative: true, Path: rel}
}

// Resolve returns the concrete value for the given package root.
func (v Value) Resolve(root string) string {
	if !v.RootRelative {
		return v.Path
	}
	return filepath.Join(root, v.Path)
}

// String renders the value in descriptor syntax
func (v Value) String() string {
	if !v.RootRelative {
		return v.Path
	}
	if v.Path == "" {
		return RootToken
	}
	return RootToken + "/" + filepath.ToSlash(v.Path)
}

// RootToken is the descriptor placeholder for the package root
const RootToken = "{root}"

// EnvOp is one step of an activation routine
type EnvOp struct {
	Kind  EnvOpKind
	Var   string
	Value Value
}
