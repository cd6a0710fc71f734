package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/pkgenv/pkg/config"
	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			path := opts.configFile
			if path == "" {
				path = a.paths.ConfigFile()
			}
			if filepath.Ext(path) != ".toml" {
				return errors.Newf(errors.ErrInvalidArgument, "generated configuration is TOML, cannot write %s", path)
			}
			if _, err := os.Stat(path); err == nil {
				return errors.New(errors.ErrAlreadyExists, "config file already exists").
					WithDetail("path", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to create config directory")
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write config file").
					WithDetail("path", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}
