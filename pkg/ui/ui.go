// Package ui renders command results as rich terminal output, plain text
// or JSON.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/ui/display"
	"github.com/arthur-debert/pkgenv/pkg/ui/json"
	"github.com/arthur-debert/pkgenv/pkg/ui/terminal"
	"github.com/arthur-debert/pkgenv/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	RenderPackages(rows []display.PackageRow) error
	RenderPackageInfo(info display.PackageInfo) error
	RenderValidation(results []display.ValidationResult) error
	RenderSteps(steps []display.ActivationStep) error
	RenderMessage(msg string) error
	RenderError(err error) error
}

// NewRenderer creates a renderer for format. FormatAuto detects terminal
// capabilities when output is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidArgument, "unknown format: %v", format)
	}
}
