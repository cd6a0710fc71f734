package repository

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/semver"
)

// Request names a package and an optional version constraint.
//
// Accepted forms:
//
//	cuebot            any version
//	cuebot-1.4        any 1.4.x
//	cuebot-1.4.11     exactly 1.4.11
//	cuebot>=1.4,<2    constraint expression
//	cuebot-^1.2       constraint expression after a dash
//	PyYAML-6+<7       range, at least 6 and below 7
type Request struct {
	Name       string
	Constraint semver.Constraint
	Raw        string
}

const operatorChars = "<>=~^!*"

// ParseRequest parses a package request string
func ParseRequest(raw string) (Request, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Request{}, errors.New(errors.ErrInvalidArgument, "empty package request")
	}

	name, expr := splitRequest(s)
	if name == "" {
		return Request{}, errors.Newf(errors.ErrInvalidArgument, "package request %q has no name", raw)
	}

	c, err := semver.ParseConstraint(expr)
	if err != nil {
		return Request{}, errors.Wrapf(err, errors.ErrInvalidArgument, "invalid version constraint in %q", raw).
			WithDetail("request", raw)
	}

	return Request{Name: name, Constraint: c, Raw: s}, nil
}

// splitRequest separates the name from the constraint. The name ends at the
// first operator character, or at the first dash followed by a digit or an
// operator, so names like "rqd-core" survive.
func splitRequest(s string) (string, string) {
	for i, r := range s {
		if strings.ContainsRune(operatorChars, r) {
			return strings.TrimSuffix(s[:i], "-"), s[i:]
		}
		if r == '-' && i+1 < len(s) {
			next := rune(s[i+1])
			if unicode.IsDigit(next) || strings.ContainsRune(operatorChars, next) {
				return s[:i], s[i+1:]
			}
		}
	}
	return s, ""
}

// String returns the request as written
func (r Request) String() string {
	if r.Raw != "" {
		return r.Raw
	}
	return r.Name
}

// IsAny reports whether the request accepts every version
func (r Request) IsAny() bool {
	raw := strings.TrimSpace(r.Constraint.String())
	return raw == "" || raw == "*"
}
