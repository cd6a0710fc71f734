package resolver

import (
	"context"
	"strings"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/logging"
	"github.com/arthur-debert/pkgenv/pkg/repository"
	"github.com/arthur-debert/pkgenv/pkg/semver"
	"github.com/arthur-debert/pkgenv/pkg/types"
	"github.com/rs/zerolog"
)

// Finder looks up the best installed package for a request
type Finder interface {
	Find(req repository.Request) (*types.InstalledPackage, error)
}

// Resolver turns requests into an activation order
type Resolver struct {
	finder Finder
	host   repository.Host
	logger zerolog.Logger
}

// New creates a Resolver selecting variants for host
func New(finder Finder, host repository.Host) *Resolver {
	return &Resolver{
		finder: finder,
		host:   host,
		logger: logging.GetLogger("resolver"),
	}
}

type state int

const (
	unvisited state = iota
	visiting
	done
)

type node struct {
	pkg   *types.InstalledPackage
	state state
	// requested records who first asked for this package
	requested string
}

type walk struct {
	ctx   context.Context
	nodes map[string]*node
	order []*types.InstalledPackage
	stack []string
}

// Resolve returns the packages to activate for requests, dependencies
// first
func (r *Resolver) Resolve(ctx context.Context, requests []string) ([]*types.InstalledPackage, error) {
	w := &walk{
		ctx:   ctx,
		nodes: make(map[string]*node),
	}

	for _, raw := range requests {
		req, err := repository.ParseRequest(raw)
		if err != nil {
			return nil, err
		}
		if err := r.visit(w, req, ""); err != nil {
			return nil, err
		}
	}

	names := make([]string, len(w.order))
	for i, p := range w.order {
		names[i] = p.Descriptor.QualifiedName()
	}
	r.logger.Debug().Strs("requests", requests).Strs("order", names).Msg("Resolved packages")
	return w.order, nil
}

func (r *Resolver) visit(w *walk, req repository.Request, parent string) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	if n, ok := w.nodes[req.Name]; ok {
		switch n.state {
		case visiting:
			cycle := append(append([]string(nil), w.stack[indexOf(w.stack, req.Name):]...), req.Name)
			return errors.Newf(errors.ErrDependencyCycle, "dependency cycle: %s", strings.Join(cycle, " -> ")).
				WithDetail("cycle", cycle)
		default:
			v := semver.MustParseVersion(n.pkg.Descriptor.Version())
			if !semver.Satisfies(v, req.Constraint) {
				return errors.Newf(errors.ErrVersionConflict,
					"%s requires %s but %s was selected for %s",
					requester(parent), req.String(), n.pkg.Descriptor.QualifiedName(), requester(n.requested)).
					WithDetail("package", req.Name).
					WithDetail("selected", n.pkg.Descriptor.Version()).
					WithDetail("request", req.String())
			}
			return nil
		}
	}

	found, err := r.finder.Find(req)
	if err != nil {
		if details := errors.GetErrorDetails(err); details != nil && parent != "" {
			details["required_by"] = parent
		}
		return err
	}

	variant, err := repository.SelectVariant(found.Descriptor, r.host)
	if err != nil {
		return err
	}
	pkg := &types.InstalledPackage{
		Descriptor: found.Descriptor,
		Dir:        found.Dir,
		Variant:    variant,
	}

	n := &node{pkg: pkg, state: visiting, requested: parent}
	w.nodes[req.Name] = n
	w.stack = append(w.stack, req.Name)

	qualified := pkg.Descriptor.QualifiedName()
	deps := append(append([]string(nil), pkg.Descriptor.RuntimeRequirements...), repository.PackageRequirements(variant)...)
	for _, raw := range deps {
		dep, err := repository.ParseRequest(raw)
		if err != nil {
			return errors.Wrapf(err, errors.ErrDescriptorParse, "invalid requirement %q in %s", raw, qualified).
				WithDetail("package", qualified)
		}
		if err := r.visit(w, dep, qualified); err != nil {
			return err
		}
	}

	w.stack = w.stack[:len(w.stack)-1]
	n.state = done
	w.order = append(w.order, pkg)

	r.logger.Trace().
		Str("package", qualified).
		Str("variant", variant.String()).
		Str("required_by", requester(parent)).
		Msg("Resolved package")
	return nil
}

func requester(name string) string {
	if name == "" {
		return "the request"
	}
	return name
}

func indexOf(stack []string, name string) int {
	for i, s := range stack {
		if s == name {
			return i
		}
	}
	return 0
}
