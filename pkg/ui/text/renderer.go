// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/pkgenv/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

func (r *Renderer) RenderPackages(rows []display.PackageRow) error {
	if len(rows) == 0 {
		return r.RenderMessage("No packages found")
	}

	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "NAME\tVERSION\tVARIANTS\tDESCRIPTION"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", row.Name, row.Version, len(row.Variants), row.Description); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (r *Renderer) RenderPackageInfo(info display.PackageInfo) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", info.Name, info.Version)
	field(&b, "uuid", info.UUID)
	field(&b, "root", info.Root)
	field(&b, "source", info.Source)
	field(&b, "variant", info.Variant)
	field(&b, "authors", strings.Join(info.Authors, ", "))
	field(&b, "requires", strings.Join(info.Requires, ", "))
	field(&b, "build requires", strings.Join(info.BuildRequires, ", "))
	field(&b, "tools", strings.Join(info.Tools, ", "))
	field(&b, "variants", strings.Join(info.Variants, ", "))
	field(&b, "build command", info.BuildCommand)
	field(&b, "commands", strings.Join(info.Commands, "\n                "))
	if info.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", strings.TrimSpace(info.Description))
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) RenderValidation(results []display.ValidationResult) error {
	for _, res := range results {
		var err error
		if res.Valid() {
			_, err = fmt.Fprintf(r.output, "ok    %s (%s)\n", res.Path, res.Package)
		} else {
			_, err = fmt.Fprintf(r.output, "FAIL  %s: %s\n", res.Path, res.Error)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderSteps(steps []display.ActivationStep) error {
	for _, s := range steps {
		line := fmt.Sprintf("%s: %s %s", s.Package, s.Op, s.Var)
		if s.Value != "" {
			line += " " + s.Value
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "  %-14s%s\n", label, value)
}
