package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/arthur-debert/pkgenv/pkg/ui"
	"github.com/arthur-debert/pkgenv/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rows = []display.PackageRow{
	{Name: "cuebot", Version: "1.4.11", Dir: "/opt/pkgs/cuebot/1.4.11", Description: "Cuebot"},
	{Name: "rqd", Version: "1.4.12", Dir: "/opt/pkgs/rqd/1.4.12", Variants: []string{"platform-linux"}},
}

var info = display.PackageInfo{
	Name:        "rqd",
	Version:     "1.4.12",
	UUID:        "repository.rqd",
	Root:        "/opt/pkgs/rqd/1.4.12/platform-linux",
	Requires:    []string{"python-3.11", "loguru"},
	Variants:    []string{"platform-linux"},
	Variant:     "platform-linux",
	Commands:    []string{"PATH.append({root}/bin)"},
	Description: "RQD (Render Queue Daemon) for OpenCue.",
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{"create terminal renderer", ui.FormatTerminal, false},
		{"create text renderer", ui.FormatText, false},
		{"create json renderer", ui.FormatJSON, false},
		{"create auto renderer with buffer", ui.FormatAuto, false},
		{"invalid format", ui.Format(999), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := ui.NewRenderer(tt.format, &bytes.Buffer{})
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  ui.Format
		err   bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"JSON", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.err {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderPackages(rows))
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "cuebot")
	assert.Contains(t, out, "1.4.12")

	buf.Reset()
	require.NoError(t, r.RenderPackageInfo(info))
	out = buf.String()
	assert.Contains(t, out, "rqd 1.4.12")
	assert.Contains(t, out, "repository.rqd")
	assert.Contains(t, out, "PATH.append({root}/bin)")
	assert.Contains(t, out, "python-3.11, loguru")

	buf.Reset()
	require.NoError(t, r.RenderValidation([]display.ValidationResult{
		{Path: "good/package.toml", Package: "cuebot-1.4.11"},
		{Path: "bad/package.toml", Error: "missing uuid"},
	}))
	assert.Contains(t, buf.String(), "ok    good/package.toml (cuebot-1.4.11)")
	assert.Contains(t, buf.String(), "FAIL  bad/package.toml: missing uuid")

	buf.Reset()
	require.NoError(t, r.RenderSteps([]display.ActivationStep{
		{Package: "cuebot-1.4.11", Op: types.OpAppend, Var: "PATH", Value: "/opt/pkgs/cuebot/1.4.11/bin"},
	}))
	assert.Equal(t, "cuebot-1.4.11: append PATH /opt/pkgs/cuebot/1.4.11/bin\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderPackages(nil))
	assert.Equal(t, "No packages found\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderPackages(rows))
	assert.Contains(t, buf.String(), "cuebot")

	buf.Reset()
	require.NoError(t, r.RenderPackageInfo(info))
	assert.Contains(t, buf.String(), "repository.rqd")
	assert.Contains(t, buf.String(), "Render Queue Daemon")

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrPackageNotFound, "no installed package matches rqd")))
	assert.Contains(t, buf.String(), "PACKAGE_NOT_FOUND")
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderPackages(rows))
	var decoded []display.PackageRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rows, decoded)

	buf.Reset()
	require.NoError(t, r.RenderPackages(nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	pkgErr := errors.New(errors.ErrVersionConflict, "conflict").WithDetail("package", "python")
	require.NoError(t, r.RenderError(pkgErr))
	var errObj map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &errObj))
	assert.Equal(t, "VERSION_CONFLICT", errObj["code"])
	assert.Equal(t, map[string]interface{}{"package": "python"}, errObj["details"])
}
