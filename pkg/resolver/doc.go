// Package resolver expands package requests into the ordered list of
// installed packages to activate.
//
// Requirements are followed depth first. Every dependency is placed before
// the packages that need it, and top level requests keep their relative
// order, so activation order is stable for the same inputs. A package name
// resolves to one version for the whole graph: a later request that the
// chosen version does not satisfy is a VERSION_CONFLICT, and a requirement
// path that returns to a package still being expanded is a
// DEPENDENCY_CYCLE.
package resolver
