package types

import (
	"os"
	"strings"
	"sync"
)

// AppliedOp records one mutation made to an ActivationContext
type AppliedOp struct {
	Package string    `json:"package,omitempty"`
	Kind    EnvOpKind `json:"op"`
	Var     string    `json:"var"`
	Value   string    `json:"value,omitempty"`
}

// ActivatedPackage records a package that was activated into a context
type ActivatedPackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Root    string `json:"root"`
}

// ActivationContext is the explicit environment an activation writes into.
// It maps variable names to ordered lists of segments. Nothing here touches
// the process environment; committing is a separate step.
//
// Writes are serialized by an internal mutex so independent packages may be
// activated from several goroutines.
type ActivationContext struct {
	mu        sync.Mutex
	vars      map[string][]string
	unset     map[string]bool
	order     []string
	journal   []AppliedOp
	activated []ActivatedPackage
}

// NewActivationContext returns an empty context
func NewActivationContext() *ActivationContext {
	return &ActivationContext{
		vars:  make(map[string][]string),
		unset: make(map[string]bool),
	}
}

// Seed sets the initial entries of a variable without journaling them.
// It is used by the activation framework to load existing values before
// packages run.
func (c *ActivationContext) Seed(name string, entries []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch(name)
	c.vars[name] = append([]string(nil), entries...)
	delete(c.unset, name)
}

// SeedFromEnviron seeds the named variables from an environ style slice
// (KEY=VALUE). Variables absent from environ are left untouched.
func (c *ActivationContext) SeedFromEnviron(environ []string, names ...string) {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			values[kv[:i]] = kv[i+1:]
		}
	}
	for _, name := range names {
		if v, ok := values[name]; ok {
			c.Seed(name, SplitList(v))
		}
	}
}

// Get returns a copy of the entries of a variable
func (c *ActivationContext) Get(name string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, ok := c.vars[name]
	if !ok {
		return nil
	}
	return append([]string{}, entries...)
}

// Has reports whether the variable currently has a value
func (c *ActivationContext) Has(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.vars[name]
	return ok
}

// IsUnset reports whether the variable was explicitly unset
func (c *ActivationContext) IsUnset(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unset[name]
}

// Contains reports whether value is already an entry of the variable
func (c *ActivationContext) Contains(name, value string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.vars[name] {
		if e == value {
			return true
		}
	}
	return false
}

// Vars returns the variable names in the order they were first touched
func (c *ActivationContext) Vars() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...)
}

// Append adds value after all existing entries, creating the list if absent.
func (c *ActivationContext) Append(pkg, name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch(name)
	c.vars[name] = append(c.vars[name], value)
	delete(c.unset, name)
	c.record(pkg, OpAppend, name, value)
}

// Prepend adds value before all existing entries
func (c *ActivationContext) Prepend(pkg, name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch(name)
	c.vars[name] = append([]string{value}, c.vars[name]...)
	delete(c.unset, name)
	c.record(pkg, OpPrepend, name, value)
}

// Set replaces the variable with a single entry
func (c *ActivationContext) Set(pkg, name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch(name)
	c.vars[name] = []string{value}
	delete(c.unset, name)
	c.record(pkg, OpSet, name, value)
}

// Unset removes the variable
func (c *ActivationContext) Unset(pkg, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touch(name)
	delete(c.vars, name)
	c.unset[name] = true
	c.record(pkg, OpUnset, name, "")
}

// MarkActivated records that a package has been activated
func (c *ActivationContext) MarkActivated(p ActivatedPackage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activated = append(c.activated, p)
}

// Activated returns the activated packages in activation order
func (c *ActivationContext) Activated() []ActivatedPackage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ActivatedPackage(nil), c.activated...)
}

// Journal returns the applied operations in order
func (c *ActivationContext) Journal() []AppliedOp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]AppliedOp(nil), c.journal...)
}

// Value returns the entries joined with the OS list separator
func (c *ActivationContext) Value(name string) string {
	return JoinList(c.Get(name))
}

func (c *ActivationContext) touch(name string) {
	if _, ok := c.vars[name]; ok {
		return
	}
	if c.unset[name] {
		return
	}
	c.order = append(c.order, name)
}

func (c *ActivationContext) record(pkg string, kind EnvOpKind, name, value string) {
	c.journal = append(c.journal, AppliedOp{Package: pkg, Kind: kind, Var: name, Value: value})
}

// SplitList splits a path-like value on the OS list separator, dropping
// empty segments.
func SplitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, string(os.PathListSeparator))
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList joins entries with the OS list separator
func JoinList(entries []string) string {
	return strings.Join(entries, string(os.PathListSeparator))
}
