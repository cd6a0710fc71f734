package repository

import (
	"testing"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		raw      string
		name     string
		accepts  []string
		rejects  []string
		wantsAny bool
	}{
		{raw: "cuebot", name: "cuebot", accepts: []string{"0.1.0", "1.4.11"}, wantsAny: true},
		{raw: "cuebot-1.4", name: "cuebot", accepts: []string{"1.4.0", "1.4.11"}, rejects: []string{"1.5.0", "1.3.9"}},
		{raw: "cuebot-1.4.11", name: "cuebot", accepts: []string{"1.4.11"}, rejects: []string{"1.4.12"}},
		{raw: "cuebot>=1.4,<2", name: "cuebot", accepts: []string{"1.4.0", "1.9.9"}, rejects: []string{"2.0.0", "1.3.0"}},
		{raw: "cuebot-^1.2", name: "cuebot", accepts: []string{"1.2.0", "1.9.0"}, rejects: []string{"2.0.0"}},
		{raw: "rqd-core", name: "rqd-core", accepts: []string{"3.0.0"}, wantsAny: true},
		{raw: "rqd-core-2", name: "rqd-core", accepts: []string{"2.0.1"}, rejects: []string{"3.0.0"}},
		{raw: "PyYAML-6+<7", name: "PyYAML", accepts: []string{"6.0.1"}, rejects: []string{"7.0.0", "5.4.1"}},
		{raw: "  java-11  ", name: "java", accepts: []string{"11.0.2"}, rejects: []string{"17.0.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req, err := ParseRequest(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.name, req.Name)
			assert.Equal(t, tt.wantsAny, req.IsAny())

			for _, v := range tt.accepts {
				assert.True(t, semver.Satisfies(semver.MustParseVersion(v), req.Constraint), "should accept %s", v)
			}
			for _, v := range tt.rejects {
				assert.False(t, semver.Satisfies(semver.MustParseVersion(v), req.Constraint), "should reject %s", v)
			}
		})
	}
}

func TestParseRequest_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", ">=1.0", "cuebot->=abc"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseRequest(raw)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
		})
	}
}
