package activation

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cuebotRoot = "/opt/pkgs/cuebot/1.4.11"

func TestActivate_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		seed     bool
		binDir   string
		expected []string
	}{
		{
			name:     "appends after existing entries",
			initial:  []string{"/usr/bin"},
			seed:     true,
			binDir:   "bin",
			expected: []string{"/usr/bin", "/opt/pkgs/cuebot/1.4.11/bin"},
		},
		{
			name:     "empty initial list",
			initial:  []string{},
			seed:     true,
			binDir:   "bin",
			expected: []string{"/opt/pkgs/cuebot/1.4.11/bin"},
		},
		{
			name:     "absent variable is created",
			binDir:   "bin",
			expected: []string{"/opt/pkgs/cuebot/1.4.11/bin"},
		},
		{
			name:     "missing bin dir defaults to bin",
			initial:  []string{"/usr/bin"},
			seed:     true,
			binDir:   "",
			expected: []string{"/usr/bin", "/opt/pkgs/cuebot/1.4.11/bin"},
		},
		{
			name:     "nested bin dir",
			binDir:   "libexec/tools",
			expected: []string{"/opt/pkgs/cuebot/1.4.11/libexec/tools"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := types.NewActivationContext()
			if tt.seed {
				ctx.Seed("PATH", tt.initial)
			}

			err := Activate(ctx, cuebotRoot, tt.binDir)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, ctx.Get("PATH"))
		})
	}
}

func TestActivate_AppendsExactlyOneJoinedEntry(t *testing.T) {
	roots := []struct{ root, bin string }{
		{"/opt/a", "bin"},
		{"/opt/b/1.0", "scripts"},
		{"/srv/pkgs/rqd/1.4.12/platform-linux/arch-x86_64", "bin"},
	}

	for _, r := range roots {
		ctx := types.NewActivationContext()
		ctx.Seed("PATH", []string{"/usr/bin", "/bin"})

		require.NoError(t, Activate(ctx, r.root, r.bin))

		got := ctx.Get("PATH")
		require.Len(t, got, 3)
		assert.Equal(t, filepath.Join(r.root, r.bin), got[2])
	}
}

func TestActivate_OrderFollowsActivationSequence(t *testing.T) {
	ctx := types.NewActivationContext()
	ctx.Seed("PATH", []string{"/usr/local/bin", "/usr/bin"})

	roots := []string{"/opt/pkgs/p1", "/opt/pkgs/p2", "/opt/pkgs/p3"}
	for _, root := range roots {
		require.NoError(t, Activate(ctx, root, "bin"))
	}

	assert.Equal(t, []string{
		"/usr/local/bin",
		"/usr/bin",
		"/opt/pkgs/p1/bin",
		"/opt/pkgs/p2/bin",
		"/opt/pkgs/p3/bin",
	}, ctx.Get("PATH"))
}

func TestActivate_DoesNotAlterOtherEntries(t *testing.T) {
	ctx := types.NewActivationContext()
	require.NoError(t, Activate(ctx, "/opt/pkgs/first", "bin"))
	ctx.Seed("PYTHONPATH", []string{"/opt/py"})
	before := ctx.Get("PATH")

	require.NoError(t, Activate(ctx, "/opt/pkgs/second", "bin"))

	after := ctx.Get("PATH")
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, []string{"/opt/py"}, ctx.Get("PYTHONPATH"))
}

func TestActivate_RepeatedActivationIsNotDeduplicated(t *testing.T) {
	ctx := types.NewActivationContext()

	require.NoError(t, Activate(ctx, cuebotRoot, "bin"))
	require.NoError(t, Activate(ctx, cuebotRoot, "bin"))

	assert.Equal(t, []string{
		"/opt/pkgs/cuebot/1.4.11/bin",
		"/opt/pkgs/cuebot/1.4.11/bin",
	}, ctx.Get("PATH"))
}

func TestActivate_DedupePolicy(t *testing.T) {
	a := New(Options{Dedupe: true})
	ctx := types.NewActivationContext()
	ctx.Seed("PATH", []string{"/usr/bin"})

	require.NoError(t, a.Activate(ctx, cuebotRoot, "bin"))
	require.NoError(t, a.Activate(ctx, cuebotRoot, "bin"))

	assert.Equal(t, []string{"/usr/bin", "/opt/pkgs/cuebot/1.4.11/bin"}, ctx.Get("PATH"))
}

func TestActivate_CustomVariable(t *testing.T) {
	a := New(Options{Variable: "CUE_TOOLS"})
	ctx := types.NewActivationContext()

	require.NoError(t, a.Activate(ctx, cuebotRoot, ""))

	assert.Equal(t, []string{"/opt/pkgs/cuebot/1.4.11/bin"}, ctx.Get("CUE_TOOLS"))
	assert.False(t, ctx.Has("PATH"))
}

func TestActivate_PermissiveAcceptsMalformedRoots(t *testing.T) {
	ctx := types.NewActivationContext()

	require.NoError(t, Activate(ctx, "", "bin"))
	require.NoError(t, Activate(ctx, "relative/root", "bin"))

	assert.Equal(t, []string{"bin", "relative/root/bin"}, ctx.Get("PATH"))
}

func TestActivate_StrictPolicy(t *testing.T) {
	existing := t.TempDir()
	file := filepath.Join(existing, "file")
	writeFile(t, file)

	tests := []struct {
		name    string
		root    string
		wantErr bool
	}{
		{"empty root", "", true},
		{"relative root", "opt/pkgs/cuebot", true},
		{"missing root", filepath.Join(existing, "missing"), true},
		{"root is a file", file, true},
		{"existing absolute root", existing, false},
	}

	a := New(Options{Strict: true})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := types.NewActivationContext()
			err := a.Activate(ctx, tt.root, "bin")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
				assert.False(t, ctx.Has("PATH"), "failed activation must not mutate the context")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{filepath.Join(existing, "bin")}, ctx.Get("PATH"))
		})
	}
}

func TestActivate_NilContext(t *testing.T) {
	err := Activate(nil, cuebotRoot, "bin")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
}

func TestNew_Defaults(t *testing.T) {
	a := New(Options{})
	assert.Equal(t, DefaultVariable, a.Options().Variable)
	assert.Equal(t, DefaultBinDir, a.Options().BinDir)
	assert.Equal(t, 1, a.Options().Parallel)
}
