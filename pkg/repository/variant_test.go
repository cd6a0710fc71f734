package repository

import (
	"testing"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostMatches(t *testing.T) {
	linux := Host{Platform: "linux", Arch: "x86_64", OS: "Rocky-9"}

	tests := []struct {
		name    string
		host    Host
		variant types.Variant
		want    bool
	}{
		{"empty variant", linux, nil, true},
		{"platform match", linux, types.Variant{"platform-linux"}, true},
		{"platform mismatch", linux, types.Variant{"platform-osx"}, false},
		{"arch mismatch", linux, types.Variant{"platform-linux", "arch-aarch64"}, false},
		{"os match is case insensitive", linux, types.Variant{"os-rocky-9"}, true},
		{"package entries ignored", linux, types.Variant{"platform-linux", "python-3.9"}, true},
		{"unknown host field accepts", Host{Platform: "linux"}, types.Variant{"os-Ubuntu-22.04"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.host.Matches(tt.variant))
		})
	}
}

func TestSelectVariant(t *testing.T) {
	desc := types.NewPackageDescriptor("rqd", "0.22.0", "u-1")
	desc.Variants = []types.Variant{
		{"platform-osx", "arch-arm64"},
		{"platform-linux", "arch-x86_64", "python-3.9"},
		{"platform-linux"},
	}

	t.Run("first matching wins", func(t *testing.T) {
		v, err := SelectVariant(desc, Host{Platform: "linux", Arch: "x86_64"})
		require.NoError(t, err)
		assert.Equal(t, types.Variant{"platform-linux", "arch-x86_64", "python-3.9"}, v)
	})

	t.Run("fallback variant", func(t *testing.T) {
		v, err := SelectVariant(desc, Host{Platform: "linux", Arch: "aarch64"})
		require.NoError(t, err)
		assert.Equal(t, types.Variant{"platform-linux"}, v)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := SelectVariant(desc, Host{Platform: "windows", Arch: "x86_64"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoMatchingVariant))
		assert.Equal(t, "rqd-0.22.0", errors.GetErrorDetails(err)["package"])
	})

	t.Run("no variants", func(t *testing.T) {
		v, err := SelectVariant(types.NewPackageDescriptor("cuebot", "1.4.11", "u-2"), Host{Platform: "windows"})
		require.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestPackageRequirements(t *testing.T) {
	v := types.Variant{"platform-linux", "python-3.9", "arch-x86_64", "os-Rocky-9", "grpcio"}
	assert.Equal(t, []string{"python-3.9", "grpcio"}, PackageRequirements(v))
	assert.Nil(t, PackageRequirements(types.Variant{"platform-linux"}))
}
