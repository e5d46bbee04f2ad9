package fixtures

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/launchdarkly/webqa-harness/config"
	"github.com/launchdarkly/webqa-harness/framework"
	"github.com/launchdarkly/webqa-harness/framework/harness"
)

// Scope identifies the lifetime of a fixture instance.
type Scope string

const (
	// ScopeSession means the fixture is built at most once per run and shared by
	// every test that acquires it.
	ScopeSession Scope = "session"

	// ScopeTest means each test gets its own instance, torn down when the test
	// exits.
	ScopeTest Scope = "test"
)

func (s Scope) valid() bool {
	return s == ScopeSession || s == ScopeTest
}

// BuildFunc constructs a fixture value. The returned teardown function releases
// whatever the build acquired; it may be nil if there is nothing to release. If the
// build fails, no teardown is recorded and no value is memoized.
type BuildFunc func(env *Env) (value interface{}, teardown func(), err error)

// Definition declares a fixture: a unique name, a lifetime, the names of the
// fixtures it depends on, and how to build it.
type Definition struct {
	Name     string
	Scope    Scope
	Requires []string
	Build    BuildFunc
}

// Env is what a fixture build function gets to work with: the session-level harness
// state, a logger scoped to the acquiring test, and access to the dependencies the
// definition declared. Dependencies are explicit or nothing; asking for a fixture
// that was not listed in Requires is an error even if it happens to be registered.
type Env struct {
	harness  *harness.Harness
	logger   framework.Logger
	declared []string
	resolve  func(name string) (interface{}, error)
}

// Harness returns the session harness.
func (e *Env) Harness() *harness.Harness { return e.harness }

// Config returns the run configuration.
func (e *Env) Config() config.Config { return e.harness.Config() }

// Workspace returns the workspace directory layout.
func (e *Env) Workspace() harness.Workspace { return e.harness.Workspace() }

// Logger returns a logger whose output is captured with the acquiring test.
// Lines are prefixed with the fixture's name.
func (e *Env) Logger() framework.Logger { return e.logger }

// Dependency returns the built instance of another fixture. The name must appear in
// the definition's Requires list; the provider resolves it in the correct scope,
// building it first if necessary.
func (e *Env) Dependency(name string) (interface{}, error) {
	if !slices.Contains(e.declared, name) {
		return nil, fmt.Errorf("fixture requested dependency %q without declaring it", name)
	}
	return e.resolve(name)
}
