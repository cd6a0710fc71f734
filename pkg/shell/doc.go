// Package shell commits an activation context.
//
// An activation only fills a types.ActivationContext. This package turns
// the context into the final variable values and applies them exactly once,
// either as a script for the calling shell to eval, as JSON, as the
// environment of a child process, or to the current process.
package shell
