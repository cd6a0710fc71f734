package cli

import (
	"fmt"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/shell"
	"github.com/spf13/cobra"
)

func newSnippetCmd(opts *globalOptions) *cobra.Command {
	var (
		shellName string
		binary    string
	)

	cmd := &cobra.Command{
		Use:     "snippet",
		Short:   MsgSnippetShort,
		Long:    MsgSnippetLong,
		Example: MsgSnippetExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			format, err := shellFormat(shellName, a.cfg.Shell.Default)
			if err != nil {
				return err
			}
			if format == shell.FormatJSON {
				return errors.New(errors.ErrInvalidArgument, "json has no shell integration")
			}

			fmt.Fprintln(cmd.OutOrStdout(), shell.GetShellIntegrationSnippet(format, binary))
			return nil
		},
	}

	cmd.Flags().StringVarP(&shellName, "shell", "s", "", MsgFlagShell)
	cmd.Flags().StringVar(&binary, "binary", "pkgenv", "pkgenv executable the snippet calls")
	_ = cmd.RegisterFlagCompletionFunc("shell", shellCompletion)

	return cmd
}
