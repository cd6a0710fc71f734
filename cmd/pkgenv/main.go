package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/arthur-debert/pkgenv/internal/cli"
	"github.com/arthur-debert/pkgenv/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// exec already let the child report its own failure
		var exitErr *cli.ExitError
		if !stderrors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(cli.ExitCode(err))
	}
}
