package shell_test

import (
	"testing"

	"github.com/arthur-debert/pkgenv/pkg/shell"
	"github.com/stretchr/testify/assert"
)

func TestGetShellIntegrationSnippet(t *testing.T) {
	tests := []struct {
		name           string
		format         shell.Format
		binary         string
		expectedResult string
	}{
		{
			name:   "bash_default_binary",
			format: shell.FormatBash,
			expectedResult: `pkgenv-use() {
    eval "$(command pkgenv activate --shell bash "$@")"
}`,
		},
		{
			name:   "zsh_custom_binary",
			format: shell.FormatZsh,
			binary: "/usr/local/bin/pkgenv",
			expectedResult: `pkgenv-use() {
    eval "$(command /usr/local/bin/pkgenv activate --shell zsh "$@")"
}`,
		},
		{
			name:   "fish",
			format: shell.FormatFish,
			expectedResult: `function pkgenv-use
    command pkgenv activate --shell fish $argv | source
end`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedResult, shell.GetShellIntegrationSnippet(tt.format, tt.binary))
		})
	}
}
