// Package types defines the data shared by the activation pipeline:
// package descriptors and variants, environment operations with their
// root relative values, and the ActivationContext that operations mutate
// before the result is committed.
package types
