package semver

import (
	"fmt"
	"regexp"
	"strings"

	mm "github.com/Masterminds/semver/v3"
)

// Version is a semantic version.
//
// This is a thin wrapper around github.com/Masterminds/semver/v3.
type Version struct {
	v   *mm.Version
	raw string
}

// Constraint is a version constraint on a package request.
//
// Examples:
// - "1.4" (any 1.4.x)
// - "1.4.11" (exactly 1.4.11)
// - ">=1.2.0 <2.0.0"
// - "^1.0.0"
type Constraint struct {
	c   *mm.Constraints
	raw string
}

func ParseVersion(raw string) (Version, error) {
	v, err := mm.NewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("semver: parse version %q: %w", raw, err)
	}
	return Version{v: v, raw: raw}, nil
}

func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseConstraint parses a constraint. A bare version without an operator
// matches by prefix: "1.4" accepts every 1.4.x, "1.4.11" only itself. An
// empty string matches any version. Open ranges "6+" and bounded ranges
// "6+<7" are read as ">=6" and ">=6, <7".
func ParseConstraint(raw string) (Constraint, error) {
	expr := strings.TrimSpace(raw)
	switch {
	case expr == "":
		expr = "*"
	case isBareVersion(expr):
		expr = prefixExpr(expr)
	default:
		if m := rangePattern.FindStringSubmatch(expr); m != nil {
			expr = ">=" + m[1]
			if m[2] != "" {
				expr += ", <" + m[2]
			}
		}
	}
	c, err := mm.NewConstraint(expr)
	if err != nil {
		return Constraint{}, fmt.Errorf("semver: parse constraint %q: %w", raw, err)
	}
	return Constraint{c: c, raw: raw}, nil
}

func MustParseConstraint(raw string) Constraint {
	c, err := ParseConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the version as written in the descriptor
func (v Version) String() string {
	return v.raw
}

// String returns the constraint as written in the request
func (c Constraint) String() string {
	return c.raw
}

func Satisfies(v Version, c Constraint) bool {
	if v.v == nil || c.c == nil {
		return false
	}
	return c.c.Check(v.v)
}

// Compare compares a and b, returning:
// -1 if a < b
//
//	0 if a == b
//	1 if a > b
func Compare(a, b Version) int {
	if a.v == nil && b.v == nil {
		return 0
	}
	if a.v == nil {
		return -1
	}
	if b.v == nil {
		return 1
	}
	return a.v.Compare(b.v)
}

// MaxSatisfying returns the highest version in candidates that satisfies c.
//
// If multiple versions are equal, the first encountered wins.
func MaxSatisfying(c Constraint, candidates []Version) (Version, bool) {
	var best Version
	found := false
	for _, candidate := range candidates {
		if !Satisfies(candidate, c) {
			continue
		}
		if !found || Compare(candidate, best) > 0 {
			best = candidate
			found = true
		}
	}
	return best, found
}

var rangePattern = regexp.MustCompile(`^([0-9][0-9.]*)\+(?:<([0-9][0-9.]*))?$`)

func isBareVersion(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

func prefixExpr(s string) string {
	parts := strings.Split(strings.Trim(s, "."), ".")
	if len(parts) >= 3 {
		return "=" + s
	}
	return strings.Join(parts, ".") + ".x"
}
