// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/style"
	"github.com/arthur-debert/pkgenv/pkg/ui/display"
)

// Renderer renders with lipgloss styles, pterm tables and glamour markdown
type Renderer struct {
	output   io.Writer
	markdown *style.MarkdownRenderer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{
		output:   output,
		markdown: style.NewMarkdownRenderer(),
	}
}

func (r *Renderer) RenderPackages(rows []display.PackageRow) error {
	if len(rows) == 0 {
		return r.RenderMessage(style.MutedStyle.Render("No packages found"))
	}

	data := make([][]string, len(rows))
	for i, row := range rows {
		data[i] = []string{
			style.TitleStyle.Render(row.Name),
			style.VersionStyle.Render(row.Version),
			fmt.Sprintf("%d", len(row.Variants)),
			style.MutedStyle.Render(row.Description),
		}
	}

	table, err := style.RenderTable([]string{"NAME", "VERSION", "VARIANTS", "DESCRIPTION"}, data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

func (r *Renderer) RenderPackageInfo(info display.PackageInfo) error {
	var b strings.Builder

	b.WriteString(style.TitleStyle.Render(info.Name) + " " + style.VersionStyle.Render(info.Version) + "\n")
	field(&b, "uuid", info.UUID)
	field(&b, "root", style.PathStyle.Render(info.Root))
	if info.Source != "" {
		field(&b, "source", style.PathStyle.Render(info.Source))
	}
	field(&b, "variant", info.Variant)
	field(&b, "authors", strings.Join(info.Authors, ", "))
	field(&b, "requires", strings.Join(info.Requires, ", "))
	field(&b, "build requires", strings.Join(info.BuildRequires, ", "))
	field(&b, "tools", strings.Join(info.Tools, ", "))
	field(&b, "build command", info.BuildCommand)

	if len(info.Variants) > 0 {
		b.WriteString(style.LabelStyle.Render("variants") + "\n")
		for _, v := range info.Variants {
			b.WriteString("  - " + v + "\n")
		}
	}

	b.WriteString(style.LabelStyle.Render("commands") + "\n")
	b.WriteString(style.BoxStyle.Render(strings.Join(info.Commands, "\n")) + "\n")

	if info.Description != "" {
		b.WriteString(r.markdown.Render(info.Description))
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) RenderValidation(results []display.ValidationResult) error {
	for _, res := range results {
		var line string
		if res.Valid() {
			line = style.SuccessStyle.Render("✓") + " " + style.PathStyle.Render(res.Path) + " " + style.MutedStyle.Render(res.Package)
		} else {
			line = style.ErrorStyle.Render("✗") + " " + style.PathStyle.Render(res.Path) + "\n    " + res.Error
		}
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderSteps(steps []display.ActivationStep) error {
	for _, s := range steps {
		line := fmt.Sprintf("%s %s %s %s",
			style.MutedStyle.Render(s.Package),
			style.OpStyle(s.Op).Render(string(s.Op)),
			s.Var,
			style.PathStyle.Render(s.Value))
		if _, err := fmt.Fprintln(r.output, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) RenderError(err error) error {
	code := errors.GetErrorCode(err)
	_, werr := fmt.Fprintf(r.output, "%s %s %v\n",
		style.ErrorPrefix(),
		style.ErrorStyle.Render(string(code)),
		err)
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
	b.WriteString(style.LabelStyle.Render(label) + value + "\n")
}
