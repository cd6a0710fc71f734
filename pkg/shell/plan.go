package shell

import (
	"os"
	"os/exec"
	"strings"
	"sync/atomic"

	"github.com/arthur-debert/pkgenv/pkg/errors"
	"github.com/arthur-debert/pkgenv/pkg/logging"
	"github.com/arthur-debert/pkgenv/pkg/types"
)

// DefaultTrackingVar lists the activated name-version pairs after commit
const DefaultTrackingVar = "PKGENV_ACTIVE"

// Change is the committed value of one variable
type Change struct {
	Name string
	// Entries are the list segments; a set variable has one entry
	Entries []string
	Unset   bool
}

// Value returns the entries joined with the OS list separator
func (c Change) Value() string {
	return types.JoinList(c.Entries)
}

// Plan holds the changes of one activation and commits them once
type Plan struct {
	Changes   []Change
	base      []string
	committed atomic.Bool
}

// NewPlan computes the committed values of every variable ctx touched.
// base is the environment the activation starts from, in os.Environ form.
// The journal is replayed over base, so list variables end up as the
// existing process entries followed by the activated ones. When
// trackingVar is not empty it receives the activated packages.
func NewPlan(ctx *types.ActivationContext, base []string, trackingVar string) *Plan {
	values := environMap(base)
	current := make(map[string][]string)
	removed := make(map[string]bool)
	var order []string

	lookup := func(name string) []string {
		if entries, ok := current[name]; ok {
			return entries
		}
		if removed[name] {
			return nil
		}
		if v, ok := values[name]; ok {
			return types.SplitList(v)
		}
		return nil
	}

	seen := make(map[string]bool)
	for _, op := range ctx.Journal() {
		if !seen[op.Var] {
			seen[op.Var] = true
			order = append(order, op.Var)
		}
		entries := lookup(op.Var)
		switch op.Kind {
		case types.OpAppend:
			current[op.Var] = append(append([]string(nil), entries...), op.Value)
		case types.OpPrepend:
			current[op.Var] = append([]string{op.Value}, entries...)
		case types.OpSet:
			current[op.Var] = []string{op.Value}
		case types.OpUnset:
			delete(current, op.Var)
			removed[op.Var] = true
			continue
		}
		delete(removed, op.Var)
	}

	if activated := ctx.Activated(); trackingVar != "" && len(activated) > 0 {
		if !seen[trackingVar] {
			order = append(order, trackingVar)
		}
		entries := lookup(trackingVar)
		for _, p := range activated {
			entries = append(entries, p.Name+"-"+p.Version)
		}
		current[trackingVar] = entries
		delete(removed, trackingVar)
	}

	plan := &Plan{base: append([]string(nil), base...)}
	for _, name := range order {
		if removed[name] {
			plan.Changes = append(plan.Changes, Change{Name: name, Unset: true})
			continue
		}
		plan.Changes = append(plan.Changes, Change{Name: name, Entries: current[name]})
	}

	logger := logging.GetLogger("shell")
	logger.Debug().
		Int("changes", len(plan.Changes)).
		Int("ops", len(ctx.Journal())).
		Msg("Built commit plan")
	return plan
}

// Environ returns base with the plan applied, in os.Environ form. Existing
// variables keep their position.
func (p *Plan) Environ() []string {
	byName := make(map[string]Change, len(p.Changes))
	for _, c := range p.Changes {
		byName[c.Name] = c
	}

	out := make([]string, 0, len(p.base)+len(p.Changes))
	done := make(map[string]bool)
	for _, kv := range p.base {
		name := kv
		if i := strings.IndexByte(kv, '='); i >= 0 {
			name = kv[:i]
		}
		c, ok := byName[name]
		if !ok {
			out = append(out, kv)
			continue
		}
		if done[name] {
			continue
		}
		done[name] = true
		if !c.Unset {
			out = append(out, name+"="+c.Value())
		}
	}
	for _, c := range p.Changes {
		if done[c.Name] || c.Unset {
			continue
		}
		out = append(out, c.Name+"="+c.Value())
	}
	return out
}

// ApplyToCmd commits the plan into the environment of cmd
func (p *Plan) ApplyToCmd(cmd *exec.Cmd) error {
	if err := p.markCommitted(); err != nil {
		return err
	}
	cmd.Env = p.Environ()
	return nil
}

// Commit applies the plan to the current process environment
func (p *Plan) Commit() error {
	if err := p.markCommitted(); err != nil {
		return err
	}
	for _, c := range p.Changes {
		if c.Unset {
			if err := os.Unsetenv(c.Name); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to unset %s", c.Name)
			}
			continue
		}
		if err := os.Setenv(c.Name, c.Value()); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to set %s", c.Name)
		}
	}
	return nil
}

// Committed reports whether the plan has been committed
func (p *Plan) Committed() bool {
	return p.committed.Load()
}

func (p *Plan) markCommitted() error {
	if !p.committed.CompareAndSwap(false, true) {
		return errors.New(errors.ErrAlreadyExists, "activation already committed")
	}
	return nil
}

func environMap(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			values[kv[:i]] = kv[i+1:]
		}
	}
	return values
}

// Names returns the variable names of an os.Environ style slice
func Names(environ []string) []string {
	names := make([]string, 0, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			names = append(names, kv[:i])
		}
	}
	return names
}
