package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/pkgenv/pkg/activation"
	"github.com/arthur-debert/pkgenv/pkg/descriptor"
	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/semver"
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newOptions are the flags of the new command
type newOptions struct {
	version     string
	dir         string
	fileName    string
	description string
	requires    []string
}

func newNewCmd(opts *globalOptions) *cobra.Command {
	no := &newOptions{}

	cmd := &cobra.Command{
		Use:     "new NAME",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		GroupID: "packages",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			dir := no.dir
			if dir == "" {
				if len(a.cfg.Packages.Path) == 0 {
					return errors.New(errors.ErrInvalidArgument, "no package search root configured")
				}
				dir = a.cfg.Packages.Path[0]
			}

			path, err := scaffoldPackage(dir, args[0], no)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgCreatedDescriptor, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&no.version, "version", "0.1.0", MsgFlagVersion)
	cmd.Flags().StringVarP(&no.dir, "dir", "d", "", MsgFlagDir)
	cmd.Flags().StringVar(&no.fileName, "descriptor", descriptor.DefaultFileNames[0], MsgFlagDescriptor)
	cmd.Flags().StringVar(&no.description, "description", "", "Package description")
	cmd.Flags().StringArrayVarP(&no.requires, "requires", "r", nil, "Runtime requirement (repeatable)")

	return cmd
}

// scaffoldPackage writes a descriptor with a fresh uuid into
// <dir>/<name>/<version> and creates the default bin directory. It returns
// the descriptor path.
func scaffoldPackage(dir, name string, no *newOptions) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", errors.Newf(errors.ErrInvalidArgument, "invalid package name %q", name)
	}
	if _, err := semver.ParseVersion(no.version); err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidArgument, "invalid version %q", no.version)
	}
	if _, err := descriptor.FormatFromPath(no.fileName); err != nil {
		return "", err
	}

	versionDir := filepath.Join(dir, name, no.version)
	if err := os.MkdirAll(filepath.Join(versionDir, activation.DefaultBinDir), 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrFileWrite, "failed to create package directory").
			WithDetail("path", versionDir)
	}

	desc := types.NewPackageDescriptor(name, no.version, uuid.NewString())
	desc.Description = no.description
	desc.RuntimeRequirements = no.requires

	path := filepath.Join(versionDir, no.fileName)
	if err := descriptor.Write(path, desc); err != nil {
		return "", err
	}
	return path, nil
}
