// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/ui/display"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

func (r *Renderer) RenderPackages(rows []display.PackageRow) error {
	if rows == nil {
		rows = []display.PackageRow{}
	}
	return r.encoder.Encode(rows)
}

func (r *Renderer) RenderPackageInfo(info display.PackageInfo) error {
	return r.encoder.Encode(info)
}

func (r *Renderer) RenderValidation(results []display.ValidationResult) error {
	return r.encoder.Encode(results)
}

func (r *Renderer) RenderSteps(steps []display.ActivationStep) error {
	if steps == nil {
		steps = []display.ActivationStep{}
	}
	return r.encoder.Encode(steps)
}

// RenderError renders an error with its code and details
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetErrorCode(err),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
