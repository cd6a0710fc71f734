package cli

import (
	"github.com/arthur-debert/pkgenv/pkg/shell"
	"github.com/arthur-debert/pkgenv/pkg/ui"
	"github.com/arthur-debert/pkgenv/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newActivateCmd(opts *globalOptions) *cobra.Command {
	var (
		shellName string
		explain   bool
	)

	cmd := &cobra.Command{
		Use:               "activate PACKAGE...",
		Short:             MsgActivateShort,
		Long:              MsgActivateLong,
		Example:           MsgActivateExample,
		GroupID:           "core",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: packageNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			format, err := shellFormat(shellName, a.cfg.Shell.Default)
			if err != nil {
				return err
			}

			res, err := a.activate(cmd.Context(), args, processEnviron())
			if err != nil {
				return err
			}

			log.Info().
				Int("packages", len(res.Packages)).
				Str("shell", string(format)).
				Msg("Activation complete")

			if explain {
				r, err := ui.NewRenderer(ui.FormatAuto, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				if err := r.RenderSteps(display.NewActivationSteps(res.Context.Journal())); err != nil {
					return err
				}
			}

			return res.Plan.Render(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&shellName, "shell", "s", "", MsgFlagShell)
	cmd.Flags().BoolVar(&explain, "explain", false, MsgFlagExplain)
	_ = cmd.RegisterFlagCompletionFunc("shell", shellCompletion)

	return cmd
}

// shellFormat picks the output syntax: the flag, then the configured
// default, then $SHELL.
func shellFormat(flag, configured string) (shell.Format, error) {
	switch {
	case flag != "":
		return shell.ParseFormat(flag)
	case configured != "":
		return shell.ParseFormat(configured)
	default:
		return shell.DetectShell(), nil
	}
}

func shellCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(shell.Formats))
	for i, f := range shell.Formats {
		names[i] = string(f)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
