package repository

import (
	"strings"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/types"
)

// Host is the machine variants are matched against. Empty fields match
// any value.
type Host struct {
	Platform string
	Arch     string
	OS       string
}

// Variant requirement prefixes that describe the host
const (
	PlatformPrefix = "platform-"
	ArchPrefix     = "arch-"
	OSPrefix       = "os-"
)

// IsHostRequirement reports whether a variant entry constrains the host
// rather than naming another package
func IsHostRequirement(entry string) bool {
	return strings.HasPrefix(entry, PlatformPrefix) ||
		strings.HasPrefix(entry, ArchPrefix) ||
		strings.HasPrefix(entry, OSPrefix)
}

// Matches reports whether every host requirement in v holds for h
func (h Host) Matches(v types.Variant) bool {
	for _, entry := range v {
		var want, have string
		switch {
		case strings.HasPrefix(entry, PlatformPrefix):
			want, have = strings.TrimPrefix(entry, PlatformPrefix), h.Platform
		case strings.HasPrefix(entry, ArchPrefix):
			want, have = strings.TrimPrefix(entry, ArchPrefix), h.Arch
		case strings.HasPrefix(entry, OSPrefix):
			want, have = strings.TrimPrefix(entry, OSPrefix), h.OS
		default:
			continue
		}
		if have != "" && !strings.EqualFold(want, have) {
			return false
		}
	}
	return true
}

// SelectVariant returns the first declared variant matching the host.
// Packages without variants yield a nil variant.
func SelectVariant(desc *types.PackageDescriptor, host Host) (types.Variant, error) {
	if !desc.IsPlatformSpecific() {
		return nil, nil
	}
	for _, v := range desc.Variants {
		if host.Matches(v) {
			return v, nil
		}
	}

	available := make([]string, len(desc.Variants))
	for i, v := range desc.Variants {
		available[i] = v.String()
	}
	return nil, errors.Newf(errors.ErrNoMatchingVariant, "no variant of %s matches the host", desc.QualifiedName()).
		WithDetail("package", desc.QualifiedName()).
		WithDetail("variants", available).
		WithDetail("host", host)
}

// PackageRequirements returns the non-host entries of a variant, which
// name additional packages
func PackageRequirements(v types.Variant) []string {
	var reqs []string
	for _, entry := range v {
		if !IsHostRequirement(entry) {
			reqs = append(reqs, entry)
		}
	}
	return reqs
}
