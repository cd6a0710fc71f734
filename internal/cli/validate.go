package cli

import (
	"os"

	"github.com/arthur-debert/pkgenv/pkg/descriptor"
	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *globalOptions) *cobra.Command {
	out := &outputOptions{}

	cmd := &cobra.Command{
		Use:     "validate FILE...",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		GroupID: "packages",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			r, err := out.renderer(cmd)
			if err != nil {
				return err
			}

			results := make([]display.ValidationResult, 0, len(args))
			failed := 0
			for _, path := range args {
				res := validateFile(path, a.cfg.Packages.DescriptorNames)
				if !res.Valid() {
					failed++
				}
				results = append(results, res)
			}

			if err := r.RenderValidation(results); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Newf(errors.ErrDescriptorParse, MsgValidationFailed, failed, len(args))
			}
			return nil
		},
	}
	out.register(cmd)

	return cmd
}

// validateFile loads one descriptor. A directory is searched for a
// descriptor file.
func validateFile(path string, names []string) display.ValidationResult {
	res := display.ValidationResult{Path: path}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		found, ok := descriptor.Find(path, names)
		if !ok {
			res.Error = "no descriptor found"
			res.Code = string(errors.ErrNotFound)
			return res
		}
		res.Path = found
	}

	desc, err := descriptor.Load(res.Path)
	if err != nil {
		res.Error = err.Error()
		res.Code = string(errors.GetErrorCode(err))
		return res
	}
	res.Package = desc.QualifiedName()
	return res
}
