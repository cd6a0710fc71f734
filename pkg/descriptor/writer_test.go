package descriptor

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDescriptor() *types.PackageDescriptor {
	desc := types.NewPackageDescriptor("rqd", "1.4.12", "repository.rqd")
	desc.Authors = []string{"Open Cue"}
	desc.RuntimeRequirements = []string{"python-3.11"}
	desc.Variants = []types.Variant{{"platform-linux", "arch-x86_64"}}
	desc.Commands = []types.EnvOp{
		{Kind: types.OpAppend, Var: "PATH", Value: types.RootPath("bin")},
		{Kind: types.OpPrepend, Var: "PYTHONPATH", Value: types.RootPath("")},
		{Kind: types.OpUnset, Var: "RQD_DEBUG"},
	}
	return desc
}

func TestWrite_LoadsBack(t *testing.T) {
	for _, name := range []string{"package.toml", "package.yaml", "package.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Write(path, sampleDescriptor()))

			got, err := Load(path)
			require.NoError(t, err)

			want := sampleDescriptor()
			assert.Equal(t, want.Name(), got.Name())
			assert.Equal(t, want.Version(), got.Version())
			assert.Equal(t, want.UUID(), got.UUID())
			assert.Equal(t, want.Variants, got.Variants)
			assert.Equal(t, want.Commands, got.Commands)
		})
	}
}

func TestWrite_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.toml")
	require.NoError(t, Write(path, sampleDescriptor()))

	err := Write(path, sampleDescriptor())
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}
