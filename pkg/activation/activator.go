package activation

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/logging"
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBinDir is used when no relative bin directory is given
	DefaultBinDir = "bin"

	// DefaultVariable is the variable the default routine extends
	DefaultVariable = "PATH"
)

var varNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options controls activation policy
type Options struct {
	// Variable is the path-like variable extended by Activate
	Variable string
	// BinDir is the bin directory used by the default routine
	BinDir string
	// Strict rejects empty, relative or missing package roots
	Strict bool
	// Dedupe skips segments already present in the variable
	Dedupe bool
	// Parallel bounds ActivateConcurrently; values below 1 mean 1
	Parallel int
}

// DefaultOptions returns the source compatible permissive policy
func DefaultOptions() Options {
	return Options{
		Variable: DefaultVariable,
		BinDir:   DefaultBinDir,
		Parallel: 1,
	}
}

// Activator mutates activation contexts according to its options
type Activator struct {
	opts   Options
	logger zerolog.Logger
}

// New creates an Activator. Empty Variable and BinDir fall back to the
// defaults.
func New(opts Options) *Activator {
	if opts.Variable == "" {
		opts.Variable = DefaultVariable
	}
	if opts.BinDir == "" {
		opts.BinDir = DefaultBinDir
	}
	if opts.Parallel < 1 {
		opts.Parallel = 1
	}
	return &Activator{
		opts:   opts,
		logger: logging.GetLogger("activation"),
	}
}

// Options returns the effective options
func (a *Activator) Options() Options {
	return a.opts
}

// Activate appends join(packageRoot, relativeBinDir) to the configured
// variable of ctx using the default permissive policy.
func Activate(ctx *types.ActivationContext, packageRoot, relativeBinDir string) error {
	return New(DefaultOptions()).Activate(ctx, packageRoot, relativeBinDir)
}

// Activate appends join(packageRoot, relativeBinDir) to the configured
// variable of ctx. An empty relativeBinDir means DefaultBinDir.
func (a *Activator) Activate(ctx *types.ActivationContext, packageRoot, relativeBinDir string) error {
	if ctx == nil {
		return errors.New(errors.ErrInvalidArgument, "activation context is nil")
	}
	if err := a.checkRoot(packageRoot); err != nil {
		return err
	}
	if relativeBinDir == "" {
		relativeBinDir = DefaultBinDir
	}

	binPath := filepath.Join(packageRoot, relativeBinDir)
	a.appendEntry(ctx, "", a.opts.Variable, binPath)
	return nil
}

// ActivatePackage runs the activation routine of an installed package: its
// declared commands, or the default bin directory append when it declares
// none. The package is recorded as activated on success.
func (a *Activator) ActivatePackage(ctx *types.ActivationContext, pkg *types.InstalledPackage) error {
	if ctx == nil {
		return errors.New(errors.ErrInvalidArgument, "activation context is nil")
	}
	if pkg == nil || pkg.Descriptor == nil {
		return errors.New(errors.ErrInvalidArgument, "package is nil")
	}

	desc := pkg.Descriptor
	root := pkg.Root()
	if err := a.checkRoot(root); err != nil {
		return errors.Wrapf(err, errors.ErrInvalidArgument,
			"cannot activate %s", desc.QualifiedName()).
			WithDetail("package", desc.Name())
	}

	logger := a.logger.With().
		Str("package", desc.QualifiedName()).
		Str("root", root).
		Logger()

	ops := desc.Commands
	if len(ops) == 0 {
		ops = []types.EnvOp{{
			Kind:  types.OpAppend,
			Var:   a.opts.Variable,
			Value: types.RootPath(a.opts.BinDir),
		}}
		logger.Debug().Msg("no commands declared, using default routine")
	}

	if err := a.Run(ctx, desc.QualifiedName(), root, ops); err != nil {
		return err
	}

	ctx.MarkActivated(types.ActivatedPackage{
		Name:    desc.Name(),
		Version: desc.Version(),
		Root:    root,
	})
	logger.Info().Int("ops", len(ops)).Msg("package activated")
	return nil
}

// Run applies ops in order, resolving root relative values against root.
// The whole list is validated first; an invalid op leaves ctx unchanged.
func (a *Activator) Run(ctx *types.ActivationContext, pkgName, root string, ops []types.EnvOp) error {
	if ctx == nil {
		return errors.New(errors.ErrInvalidArgument, "activation context is nil")
	}
	if err := validateOps(ops); err != nil {
		return err
	}

	for _, op := range ops {
		value := op.Value.Resolve(root)
		switch op.Kind {
		case types.OpAppend:
			a.appendEntry(ctx, pkgName, op.Var, value)
		case types.OpPrepend:
			if a.opts.Dedupe && ctx.Contains(op.Var, value) {
				a.logger.Debug().Str("var", op.Var).Str("value", value).Msg("skipping duplicate entry")
				continue
			}
			ctx.Prepend(pkgName, op.Var, value)
		case types.OpSet:
			ctx.Set(pkgName, op.Var, value)
		case types.OpUnset:
			ctx.Unset(pkgName, op.Var)
		}
	}
	return nil
}

func validateOps(ops []types.EnvOp) error {
	for i, op := range ops {
		if !op.Kind.Valid() {
			return errors.Newf(errors.ErrInvalidArgument, "unknown operation %q", op.Kind).
				WithDetail("index", i)
		}
		if !varNamePattern.MatchString(op.Var) {
			return errors.Newf(errors.ErrInvalidArgument, "invalid variable name %q", op.Var).
				WithDetail("index", i)
		}
	}
	return nil
}

// ActivateAll activates packages sequentially in the given order, which
// makes the resulting segment order equal to the package order.
func (a *Activator) ActivateAll(ctx *types.ActivationContext, pkgs []*types.InstalledPackage) error {
	for _, pkg := range pkgs {
		if err := a.ActivatePackage(ctx, pkg); err != nil {
			return err
		}
	}
	return nil
}

// ActivateConcurrently activates packages using up to Options.Parallel
// goroutines. Each package is staged into a private context and the staged
// results are merged into ctx in package order once all of them succeed, so
// the segment order matches ActivateAll. On error ctx is left untouched and
// no further packages are started.
func (a *Activator) ActivateConcurrently(ctx *types.ActivationContext, pkgs []*types.InstalledPackage) error {
	if ctx == nil {
		return errors.New(errors.ErrInvalidArgument, "activation context is nil")
	}
	if a.opts.Parallel <= 1 || len(pkgs) <= 1 {
		return a.ActivateAll(ctx, pkgs)
	}

	staged := make([]*types.ActivationContext, len(pkgs))
	g, gctx := errgroup.WithContext(context.Background())
	g.SetLimit(a.opts.Parallel)

	for i, pkg := range pkgs {
		if gctx.Err() != nil {
			break
		}
		i, pkg := i, pkg
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pkgCtx := types.NewActivationContext()
			if err := a.ActivatePackage(pkgCtx, pkg); err != nil {
				return err
			}
			staged[i] = pkgCtx
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, pkgCtx := range staged {
		a.merge(ctx, pkgCtx)
	}
	a.logger.Debug().Int("packages", len(pkgs)).Int("parallel", a.opts.Parallel).
		Msg("merged staged activations")
	return nil
}

// merge replays a staged context's journal onto ctx under the activator's
// policy.
func (a *Activator) merge(ctx, staged *types.ActivationContext) {
	for _, op := range staged.Journal() {
		switch op.Kind {
		case types.OpAppend:
			a.appendEntry(ctx, op.Package, op.Var, op.Value)
		case types.OpPrepend:
			if a.opts.Dedupe && ctx.Contains(op.Var, op.Value) {
				continue
			}
			ctx.Prepend(op.Package, op.Var, op.Value)
		case types.OpSet:
			ctx.Set(op.Package, op.Var, op.Value)
		case types.OpUnset:
			ctx.Unset(op.Package, op.Var)
		}
	}
	for _, p := range staged.Activated() {
		ctx.MarkActivated(p)
	}
}

func (a *Activator) appendEntry(ctx *types.ActivationContext, pkgName, name, value string) {
	if a.opts.Dedupe && ctx.Contains(name, value) {
		a.logger.Debug().Str("var", name).Str("value", value).Msg("skipping duplicate entry")
		return
	}
	ctx.Append(pkgName, name, value)
	a.logger.Trace().Str("var", name).Str("value", value).Msg("appended entry")
}

// checkRoot enforces the strict policy. The permissive policy accepts any
// root, matching the descriptor routines it replaces.
func (a *Activator) checkRoot(root string) error {
	if !a.opts.Strict {
		return nil
	}
	if root == "" {
		return errors.New(errors.ErrInvalidArgument, "package root is empty")
	}
	if !filepath.IsAbs(root) {
		return errors.New(errors.ErrInvalidArgument, "package root must be absolute").
			WithDetail("root", root)
	}
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidArgument, "package root is not accessible").
			WithDetail("root", root)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrInvalidArgument, "package root is not a directory").
			WithDetail("root", root)
	}
	return nil
}
