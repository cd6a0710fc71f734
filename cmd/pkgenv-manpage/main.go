package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pkgenv/internal/cli"
	"github.com/arthur-debert/pkgenv/internal/version"
)

func main() {
	var dir string
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := generate(os.Stdout, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

// generate writes the pkgenv(1) page to w, or one page per command into
// dir when dir is set.
func generate(w io.Writer, dir string) error {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PKGENV",
		Section: "1",
		Source:  "pkgenv " + version.Version,
		Manual:  "pkgenv manual",
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		return doc.GenManTree(rootCmd, header, dir)
	}
	return doc.GenMan(rootCmd, header, w)
}
