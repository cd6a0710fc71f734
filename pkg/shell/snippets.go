package shell

import (
	"fmt"
)

// DefaultFunctionName is the shell function installed by the snippet
const DefaultFunctionName = "pkgenv-use"

// GetShellIntegrationSnippet returns a shell function that activates
// packages into the current shell by evaluating `activate` output.
// binary is the pkgenv executable to call.
func GetShellIntegrationSnippet(format Format, binary string) string {
	if binary == "" {
		binary = "pkgenv"
	}

	switch format {
	case FormatFish:
		return fmt.Sprintf(`function %s
    command %s activate --shell fish $argv | source
end`, DefaultFunctionName, binary)
	case FormatZsh:
		return fmt.Sprintf(`%s() {
    eval "$(command %s activate --shell zsh "$@")"
}`, DefaultFunctionName, binary)
	default:
		return fmt.Sprintf(`%s() {
    eval "$(command %s activate --shell bash "$@")"
}`, DefaultFunctionName, binary)
	}
}
