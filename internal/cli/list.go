package cli

import (
	"github.com/arthur-debert/pkgenv/pkg/ui"
	"github.com/arthur-debert/pkgenv/pkg/ui/display"
	"github.com/spf13/cobra"
)

// outputOptions are the flags of commands that render results
type outputOptions struct {
	format string
	json   bool
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "auto", MsgFlagFormat)
	cmd.Flags().BoolVar(&o.json, "json", false, MsgFlagJSON)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// renderer creates the renderer for the command output
func (o *outputOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format := ui.FormatJSON
	if !o.json {
		var err error
		if format, err = ui.ParseFormat(o.format); err != nil {
			return nil, err
		}
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func newListCmd(opts *globalOptions) *cobra.Command {
	out := &outputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "packages",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			r, err := out.renderer(cmd)
			if err != nil {
				return err
			}

			pkgs, err := a.repo.All()
			if err != nil {
				return err
			}

			rows := make([]display.PackageRow, 0, len(pkgs))
			for _, pkg := range pkgs {
				rows = append(rows, display.NewPackageRow(pkg))
			}
			return r.RenderPackages(rows)
		},
	}
	out.register(cmd)

	return cmd
}
