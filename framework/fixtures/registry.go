package fixtures

import (
	"errors"
	"fmt"
	"strings"
)

// Registry holds fixture definitions. All registration happens during startup,
// before any test runs, and Validate must pass before a Provider is created from
// the registry.
type Registry struct {
	defs  map[string]Definition
	order []string
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a definition. Names must be unique across the registry.
func (r *Registry) Register(def Definition) error {
	if def.Name == "" {
		return errors.New("fixture name must not be empty")
	}
	if def.Build == nil {
		return fmt.Errorf("fixture %q has no build function", def.Name)
	}
	if !def.Scope.valid() {
		return fmt.Errorf("fixture %q has invalid scope %q", def.Name, def.Scope)
	}
	if _, found := r.defs[def.Name]; found {
		return fmt.Errorf("fixture %q is already registered", def.Name)
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// MustRegister is Register for static setup code, where a registration failure is a
// programming error.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Names returns the registered fixture names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) lookup(name string) (Definition, bool) {
	def, found := r.defs[name]
	return def, found
}

// Validate checks the dependency graph as a whole: every required name must be
// registered, a session-scoped fixture may not require a test-scoped one (the
// dependency would be torn down while its dependent still holds it), and the graph
// must be acyclic. Any violation is a configuration error, reported before a
// single test has run.
func (r *Registry) Validate() error {
	for _, name := range r.order {
		def := r.defs[name]
		for _, req := range def.Requires {
			dep, found := r.defs[req]
			if !found {
				return fmt.Errorf("fixture %q requires unknown fixture %q", name, req)
			}
			if def.Scope == ScopeSession && dep.Scope == ScopeTest {
				return fmt.Errorf("session fixture %q may not require test fixture %q", name, req)
			}
		}
	}
	return r.checkAcyclic()
}

const (
	visitPending = iota
	visitInProgress
	visitDone
)

func (r *Registry) checkAcyclic() error {
	state := make(map[string]int, len(r.defs))
	var visit func(name string, trail []string) error
	visit = func(name string, trail []string) error {
		switch state[name] {
		case visitDone:
			return nil
		case visitInProgress:
			cycle := append(append([]string(nil), trail...), name)
			return fmt.Errorf("fixture dependency cycle: %s", strings.Join(cycle, " -> "))
		}
		state[name] = visitInProgress
		for _, req := range r.defs[name].Requires {
			if err := visit(req, append(trail, name)); err != nil {
				return err
			}
		}
		state[name] = visitDone
		return nil
	}
	for _, name := range r.order {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}
