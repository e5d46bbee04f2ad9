package fixtures

import (
	"fmt"

	"github.com/launchdarkly/webqa-harness/framework"
	"github.com/launchdarkly/webqa-harness/framework/harness"
	"github.com/launchdarkly/webqa-harness/framework/qatest"
)

// Provider resolves fixtures for tests. Each instance is memoized within its scope:
// session instances live until CloseSession, per-test instances until the acquiring
// test exits. Teardown within a scope always runs in the exact reverse of
// construction order, so no fixture is torn down before something that depends on
// it.
type Provider struct {
	registry *Registry
	harness  *harness.Harness
	session  *scopeState
	perTest  map[*qatest.T]*scopeState
}

// NewProvider validates the registry and returns a Provider bound to the session.
func NewProvider(registry *Registry, h *harness.Harness) (*Provider, error) {
	if err := registry.Validate(); err != nil {
		return nil, err
	}
	return &Provider{
		registry: registry,
		harness:  h,
		session:  newScopeState(),
		perTest:  make(map[*qatest.T]*scopeState),
	}, nil
}

// Acquire returns the instance of the named fixture for the given test, building
// it and any of its dependencies that have not been built yet in their applicable
// scopes. A build error makes the acquisition fail; nothing is memoized for the
// failed fixture and its teardown is not recorded.
func (p *Provider) Acquire(t *qatest.T, name string) (interface{}, error) {
	def, found := p.registry.lookup(name)
	if !found {
		return nil, fmt.Errorf("fixture %q is not registered", name)
	}
	return p.resolve(t, def)
}

// CloseSession tears down all session-scoped instances in reverse construction
// order. It runs once, after the last test and before the harness closes.
func (p *Provider) CloseSession() {
	p.session.close()
}

func (p *Provider) resolve(t *qatest.T, def Definition) (interface{}, error) {
	state := p.session
	if def.Scope == ScopeTest {
		state = p.testState(t)
	}
	if inst, found := state.instances[def.Name]; found {
		return inst.value, nil
	}

	env := &Env{
		harness:  p.harness,
		logger:   framework.LoggerWithPrefix(t.DebugLogger(), fmt.Sprintf("[fixture %s] ", def.Name)),
		declared: def.Requires,
		resolve: func(depName string) (interface{}, error) {
			depDef, found := p.registry.lookup(depName)
			if !found {
				return nil, fmt.Errorf("fixture %q is not registered", depName)
			}
			return p.resolve(t, depDef)
		},
	}

	value, teardown, err := def.Build(env)
	if err != nil {
		return nil, fmt.Errorf("could not provision fixture %q: %w", def.Name, err)
	}
	state.add(def.Name, value, teardown)
	return value, nil
}

// testState returns the per-test state for t, creating it on the first per-test
// acquisition in that test. Creation registers a single cleanup with the test
// scope, so the whole per-test state is closed exactly once when the test exits,
// whether it passed, failed, or panicked.
func (p *Provider) testState(t *qatest.T) *scopeState {
	if state, found := p.perTest[t]; found {
		return state
	}
	state := newScopeState()
	p.perTest[t] = state
	t.Defer(func() {
		state.close()
		delete(p.perTest, t)
	})
	return state
}

type instance struct {
	value    interface{}
	teardown func()
}

type scopeState struct {
	instances map[string]*instance
	order     []string
}

func newScopeState() *scopeState {
	return &scopeState{instances: make(map[string]*instance)}
}

func (s *scopeState) add(name string, value interface{}, teardown func()) {
	s.instances[name] = &instance{value: value, teardown: teardown}
	s.order = append(s.order, name)
}

func (s *scopeState) close() {
	for i := len(s.order) - 1; i >= 0; i-- {
		if inst := s.instances[s.order[i]]; inst.teardown != nil {
			inst.teardown()
		}
	}
	s.instances = make(map[string]*instance)
	s.order = nil
}

// Acquire resolves a fixture through the provider and returns it as type V. Any
// failure, including a type mismatch, fails the acquiring test immediately;
// sibling tests are unaffected and will attempt their own acquisitions.
func Acquire[V any](t *qatest.T, p *Provider, name string) V {
	value, err := p.Acquire(t, name)
	if err != nil {
		t.Errorf("%s", err)
		t.FailNow()
	}
	typed, ok := value.(V)
	if !ok {
		t.Errorf("fixture %q has type %T, not the requested %T", name, value, typed)
		t.FailNow()
	}
	return typed
}
