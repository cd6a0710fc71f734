package cli

import (
	"github.com/arthur-debert/pkgenv/pkg/repository"
	"github.com/arthur-debert/pkgenv/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *globalOptions) *cobra.Command {
	out := &outputOptions{}

	cmd := &cobra.Command{
		Use:               "info PACKAGE",
		Short:             MsgInfoShort,
		Long:              MsgInfoLong,
		GroupID:           "packages",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: packageNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			r, err := out.renderer(cmd)
			if err != nil {
				return err
			}

			pkg, err := a.repo.FindString(args[0])
			if err != nil {
				return err
			}

			// The variant is informational here: a package without a
			// variant for this host still shows its descriptor.
			if variant, err := repository.SelectVariant(pkg.Descriptor, a.host()); err == nil {
				pkg.Variant = variant
			}

			return r.RenderPackageInfo(display.NewPackageInfo(pkg, a.defaultCommand()))
		},
	}
	out.register(cmd)

	return cmd
}
