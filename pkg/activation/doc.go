// Package activation applies packages to an ActivationContext.
//
// # Overview
//
// Activating a package means running its activation routine against an
// explicit context. The routine most packages need is a single step: make
// the package's bin directory visible on PATH.
//
//	ctx := types.NewActivationContext()
//	ctx.Seed("PATH", []string{"/usr/bin"})
//	_ = activation.Activate(ctx, "/opt/pkgs/cuebot/1.4.11", "bin")
//	// PATH = ["/usr/bin", "/opt/pkgs/cuebot/1.4.11/bin"]
//
// # Ordering
//
// Entries are appended after everything already present, so when several
// packages provide the same executable the one activated first wins for any
// consumer scanning the variable left to right.
//
// # Policies
//
// The default policy reproduces the behavior of the descriptor routines it
// replaces: no checks on the package root and no de-duplication, so two
// activations of the same package produce two entries. Two flags change this:
//
//   - Strict rejects an empty, relative or missing package root with an
//     INVALID_ARGUMENT error.
//   - Dedupe skips appending or prepending a segment that is already present.
//
// An empty relative bin directory means "bin".
//
// # Commit
//
// The activator never touches the process environment. Package shell renders
// or applies the finished context exactly once.
package activation
