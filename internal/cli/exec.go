package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ExitError carries the exit status of a command run by exec
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

// ExitCode returns the process exit status for an error returned by Execute
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func newExecCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "exec PACKAGE... -- COMMAND [ARG...]",
		Short:   MsgExecShort,
		Long:    MsgExecLong,
		Example: MsgExecExample,
		GroupID: "core",
		Args: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			if dash < 0 || dash == len(args) {
				return errors.New(errors.ErrInvalidArgument, MsgErrNoCommand)
			}
			if dash == 0 {
				return errors.New(errors.ErrInvalidArgument, MsgErrNoPackages)
			}
			return nil
		},
		ValidArgsFunction: packageNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := cmd.ArgsLenAtDash()
			requests, command := args[:dash], args[dash:]

			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			res, err := a.activate(cmd.Context(), requests, processEnviron())
			if err != nil {
				return err
			}

			path, err := lookPath(command[0], res.Plan.Environ())
			if err != nil {
				return err
			}

			child := exec.CommandContext(cmd.Context(), path, command[1:]...)
			child.Stdin = cmd.InOrStdin()
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()
			if err := res.Plan.ApplyToCmd(child); err != nil {
				return err
			}

			log.Info().
				Str("command", path).
				Strs("args", command[1:]).
				Int("packages", len(res.Packages)).
				Msg("Running command")

			if err := child.Run(); err != nil {
				var exitErr *exec.ExitError
				if stderrors.As(err, &exitErr) {
					return &ExitError{Code: childExitCode(exitErr)}
				}
				return errors.Wrapf(err, errors.ErrInternal, "failed to run %s", command[0])
			}
			return nil
		},
	}
}

// childExitCode maps a child's status onto ours. A child killed by a signal
// reports 128+signal, as shells do.
func childExitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	return 1
}

// lookPath finds name in the PATH of environ, the environment the command
// will run with, rather than in the PATH of this process.
func lookPath(name string, environ []string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}

	var pathValue string
	for _, kv := range environ {
		if strings.HasPrefix(kv, "PATH=") {
			pathValue = strings.TrimPrefix(kv, "PATH=")
		}
	}

	for _, dir := range filepath.SplitList(pathValue) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrNotFound, "executable %q not found in PATH", name).
		WithDetail("command", name)
}
