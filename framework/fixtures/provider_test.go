package fixtures

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchdarkly/webqa-harness/framework/harness"
	"github.com/launchdarkly/webqa-harness/framework/qatest"
)

func newTestHarness(t *testing.T) *harness.Harness {
	t.Helper()
	h, err := harness.NewHarness(t.TempDir(), "", nil, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func newTestProvider(t *testing.T, r *Registry) *Provider {
	t.Helper()
	p, err := NewProvider(r, newTestHarness(t))
	require.NoError(t, err)
	return p
}

func TestProviderSessionScopeIsSharedAcrossTests(t *testing.T) {
	builds := 0
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{
		Name:  "counter",
		Scope: ScopeSession,
		Build: func(env *Env) (interface{}, func(), error) {
			builds++
			return &builds, nil, nil
		},
	}))
	p := newTestProvider(t, r)

	var first, second interface{}
	results := qatest.Run(qatest.TestConfiguration{}, func(qt *qatest.T) {
		qt.Run("test1", func(qt1 *qatest.T) {
			v, err := p.Acquire(qt1, "counter")
			require.NoError(t, err)
			first = v
		})
		qt.Run("test2", func(qt2 *qatest.T) {
			v, err := p.Acquire(qt2, "counter")
			require.NoError(t, err)
			second = v
		})
	})

	require.True(t, results.OK())
	assert.Equal(t, 1, builds)
	assert.Same(t, first, second)
}

func TestProviderTestScopeIsFreshPerTest(t *testing.T) {
	builds := 0
	teardowns := 0
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{
		Name:  "thing",
		Scope: ScopeTest,
		Build: func(env *Env) (interface{}, func(), error) {
			builds++
			n := builds
			return &n, func() { teardowns++ }, nil
		},
	}))
	p := newTestProvider(t, r)

	var first, second interface{}
	results := qatest.Run(qatest.TestConfiguration{}, func(qt *qatest.T) {
		qt.Run("test1", func(qt1 *qatest.T) {
			v, err := p.Acquire(qt1, "thing")
			require.NoError(t, err)
			first = v

			// acquiring again within the same test returns the same instance
			again, err := p.Acquire(qt1, "thing")
			require.NoError(t, err)
			assert.Same(t, v, again)
		})
		qt.Run("test2", func(qt2 *qatest.T) {
			v, err := p.Acquire(qt2, "thing")
			require.NoError(t, err)
			second = v
		})
	})

	require.True(t, results.OK())
	assert.Equal(t, 2, builds)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, teardowns)
}

func TestProviderTeardownRunsWhenTestFails(t *testing.T) {
	tornDown := false
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{
		Name:  "thing",
		Scope: ScopeTest,
		Build: func(env *Env) (interface{}, func(), error) {
			return "x", func() { tornDown = true }, nil
		},
	}))
	p := newTestProvider(t, r)

	results := qatest.Run(qatest.TestConfiguration{}, func(qt *qatest.T) {
		qt.Run("fails after acquiring", func(qt1 *qatest.T) {
			_, err := p.Acquire(qt1, "thing")
			require.NoError(t, err)
			qt1.Errorf("deliberate failure")
			qt1.FailNow()
		})
	})

	assert.False(t, results.OK())
	assert.True(t, tornDown)
}

func TestProviderTeardownOrderIsReverseOfConstruction(t *testing.T) {
	var order []string
	build := func(name string) BuildFunc {
		return func(env *Env) (interface{}, func(), error) {
			order = append(order, "build "+name)
			return name, func() { order = append(order, "close "+name) }, nil
		}
	}
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{Name: "browser", Scope: ScopeTest, Build: build("browser")}))
	require.NoError(t, r.Register(Definition{
		Name:     "page",
		Scope:    ScopeTest,
		Requires: []string{"browser"},
		Build: func(env *Env) (interface{}, func(), error) {
			if _, err := env.Dependency("browser"); err != nil {
				return nil, nil, err
			}
			order = append(order, "build page")
			return "page", func() { order = append(order, "close page") }, nil
		},
	}))
	p := newTestProvider(t, r)

	results := qatest.Run(qatest.TestConfiguration{}, func(qt *qatest.T) {
		qt.Run("uses page", func(qt1 *qatest.T) {
			_, err := p.Acquire(qt1, "page")
			require.NoError(t, err)
		})
	})

	require.True(t, results.OK())
	assert.Equal(t, []string{"build browser", "build page", "close page", "close browser"}, order)
}

func TestProviderDependencyMustBeDeclared(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{Name: "dep", Scope: ScopeSession, Build: noopBuild}))
	require.NoError(t, r.Register(Definition{
		Name:  "sneaky",
		Scope: ScopeTest,
		Build: func(env *Env) (interface{}, func(), error) {
			v, err := env.Dependency("dep") // not declared in Requires
			return v, nil, err
		},
	}))
	p := newTestProvider(t, r)

	results := qatest.Run(qatest.TestConfiguration{}, func(qt *qatest.T) {
		qt.Run("acquires sneaky", func(qt1 *qatest.T) {
			_, err := p.Acquire(qt1, "sneaky")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "without declaring it")
		})
	})
	require.True(t, results.OK())
}

func TestProviderBuildErrorFailsOnlyTheAcquiringTest(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{
		Name:  "broken",
		Scope: ScopeTest,
		Build: func(env *Env) (interface{}, func(), error) {
			return nil, nil, errors.New("launch failed")
		},
	}))
	p := newTestProvider(t, r)

	siblingRan := false
	results := qatest.Run(qatest.TestConfiguration{}, func(qt *qatest.T) {
		qt.Run("needs broken fixture", func(qt1 *qatest.T) {
			_ = Acquire[string](qt1, p, "broken")
			t.Error("should not reach here")
		})
		qt.Run("sibling", func(qt2 *qatest.T) {
			siblingRan = true
		})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, qatest.TestID{"needs broken fixture"}, results.Failures[0].TestID)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), `could not provision fixture "broken"`)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "launch failed")
	assert.True(t, siblingRan)
}

func TestProviderTypedAcquire(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{
		Name:  "greeting",
		Scope: ScopeSession,
		Build: func(env *Env) (interface{}, func(), error) {
			return "hello", nil, nil
		},
	}))
	p := newTestProvider(t, r)

	results := qatest.Run(qatest.TestConfiguration{}, func(qt *qatest.T) {
		qt.Run("right type", func(qt1 *qatest.T) {
			assert.Equal(t, "hello", Acquire[string](qt1, p, "greeting"))
		})
		qt.Run("wrong type", func(qt2 *qatest.T) {
			_ = Acquire[int](qt2, p, "greeting")
			t.Error("should not reach here")
		})
	})

	assert.Len(t, results.Failures, 1)
	assert.Equal(t, qatest.TestID{"wrong type"}, results.Failures[0].TestID)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), `fixture "greeting" has type string`)
}

func TestProviderCloseSession(t *testing.T) {
	var order []string
	build := func(name string) BuildFunc {
		return func(env *Env) (interface{}, func(), error) {
			return name, func() { order = append(order, name) }, nil
		}
	}
	r := NewRegistry()
	require.NoError(t, r.Register(Definition{Name: "first", Scope: ScopeSession, Build: build("first")}))
	require.NoError(t, r.Register(Definition{Name: "second", Scope: ScopeSession, Build: build("second")}))
	p := newTestProvider(t, r)

	results := qatest.Run(qatest.TestConfiguration{}, func(qt *qatest.T) {
		qt.Run("uses both", func(qt1 *qatest.T) {
			_, err := p.Acquire(qt1, "first")
			require.NoError(t, err)
			_, err = p.Acquire(qt1, "second")
			require.NoError(t, err)
		})
	})
	require.True(t, results.OK())

	assert.Empty(t, order) // session fixtures survive the test
	p.CloseSession()
	assert.Equal(t, []string{"second", "first"}, order)

	// closing again does nothing
	p.CloseSession()
	assert.Equal(t, []string{"second", "first"}, order)
}

func TestProviderUnknownFixture(t *testing.T) {
	p := newTestProvider(t, NewRegistry())
	results := qatest.Run(qatest.TestConfiguration{}, func(qt *qatest.T) {
		qt.Run("asks for nothing in particular", func(qt1 *qatest.T) {
			_, err := p.Acquire(qt1, "nope")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not registered")
		})
	})
	require.True(t, results.OK())
}
