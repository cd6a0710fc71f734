package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/arthur-debert/pkgenv/pkg/activation"
	"github.com/arthur-debert/pkgenv/pkg/config"
	"github.com/arthur-debert/pkgenv/pkg/paths"
	"github.com/arthur-debert/pkgenv/pkg/repository"
	"github.com/arthur-debert/pkgenv/pkg/resolver"
	"github.com/arthur-debert/pkgenv/pkg/shell"
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app bundles what a command needs once flags and config are loaded
type app struct {
	paths paths.Paths
	cfg   *config.Config
	repo  *repository.Repository
}

// activationResult is the uncommitted result of activating a set of requests
type activationResult struct {
	Packages []*types.InstalledPackage
	Context  *types.ActivationContext
	Plan     *shell.Plan
}

// loadApp resolves paths and the layered configuration. Flags given on the
// command line take precedence over the config file and environment.
func loadApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	p, err := paths.New(opts.packagesPath)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	configFile := opts.configFile
	if configFile == "" {
		configFile = p.ConfigFile()
	}

	overrides := make(map[string]interface{})
	if cmd.Flags().Changed("strict") {
		overrides["activation.strict"] = opts.strict
	}
	if cmd.Flags().Changed("dedupe") {
		overrides["activation.dedupe"] = opts.dedupe
	}
	if len(opts.packagesPath) > 0 {
		overrides["packages.path"] = p.PackagesPath()
	}

	cfg, err := config.LoadConfiguration(configFile, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	log.Debug().
		Strs("packages_path", cfg.Packages.Path).
		Str("config_file", configFile).
		Bool("strict", cfg.Activation.Strict).
		Bool("dedupe", cfg.Activation.Dedupe).
		Msg("configuration loaded")

	return &app{
		paths: p,
		cfg:   cfg,
		repo:  repository.New(cfg.Packages.Path, cfg.Packages.DescriptorNames),
	}, nil
}

// host returns the machine description variants are matched against
func (a *app) host() repository.Host {
	return repository.Host{
		Platform: a.cfg.Host.Platform,
		Arch:     a.cfg.Host.Arch,
		OS:       a.cfg.Host.OS,
	}
}

func (a *app) activator() *activation.Activator {
	return activation.New(a.cfg.ActivatorOptions())
}

// defaultCommand is the routine run for packages without commands
func (a *app) defaultCommand() types.EnvOp {
	opts := a.activator().Options()
	return types.EnvOp{Kind: types.OpAppend, Var: opts.Variable, Value: types.RootPath(opts.BinDir)}
}

// resolve expands requests into packages ordered dependencies first
func (a *app) resolve(ctx context.Context, requests []string) ([]*types.InstalledPackage, error) {
	return resolver.New(a.repo, a.host()).Resolve(ctx, requests)
}

// activate resolves requests and activates them into a context seeded from
// environ. Nothing is committed: the caller commits the returned plan once.
func (a *app) activate(ctx context.Context, requests []string, environ []string) (*activationResult, error) {
	pkgs, err := a.resolve(ctx, requests)
	if err != nil {
		return nil, err
	}

	actx := types.NewActivationContext()
	actx.SeedFromEnviron(environ, shell.Names(environ)...)

	if err := a.activator().ActivateConcurrently(actx, pkgs); err != nil {
		return nil, err
	}

	return &activationResult{
		Packages: pkgs,
		Context:  actx,
		Plan:     shell.NewPlan(actx, environ, a.cfg.Activation.TrackingVar),
	}, nil
}

// packageNamesCompletion completes installed package names
func packageNamesCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		a, err := loadApp(cmd, opts)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names, err := a.repo.Names()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		given := make(map[string]bool, len(args))
		for _, arg := range args {
			given[arg] = true
		}
		var available []string
		for _, name := range names {
			if !given[name] {
				available = append(available, name)
			}
		}
		return available, cobra.ShellCompDirectiveNoFileComp
	}
}

// processEnviron is the environment activations start from
var processEnviron = os.Environ
