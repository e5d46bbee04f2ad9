package webtests

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/launchdarkly/webqa-harness/browser"
	"github.com/launchdarkly/webqa-harness/config"
	"github.com/launchdarkly/webqa-harness/data"
	"github.com/launchdarkly/webqa-harness/framework/fixtures"
	"github.com/launchdarkly/webqa-harness/framework/qatest"
	"github.com/launchdarkly/webqa-harness/services"
)

// Fixture names as they appear in Requires lists and Acquire calls.
const (
	fixtureFaker          = "faker"
	fixtureRESTClient     = "restclient"
	fixturePlaceholderAPI = "placeholder_api"
	fixtureIPEcho         = "ipecho"
	fixtureBrowser        = "browser"
	fixturePage           = "page"
)

// newFixtureRegistry declares every fixture the suites can acquire. Session-scoped
// fixtures are shared by all tests in the run; browser and page are per-test so
// that no page state leaks from one UI test into the next.
func newFixtureRegistry() *fixtures.Registry {
	r := fixtures.NewRegistry()

	r.MustRegister(fixtures.Definition{
		Name:  fixtureFaker,
		Scope: fixtures.ScopeSession,
		Build: func(env *fixtures.Env) (interface{}, func(), error) {
			seed := uint64(0) // zero lets the generator seed itself
			if v := env.Config().Extra["faker_seed"]; v.IsNumber() {
				seed = uint64(v.IntValue())
			}
			return data.NewFaker(seed), nil, nil
		},
	})

	r.MustRegister(fixtures.Definition{
		Name:  fixtureRESTClient,
		Scope: fixtures.ScopeSession,
		Build: func(env *fixtures.Env) (interface{}, func(), error) {
			client, err := services.NewRESTClient(env.Config(), env.Logger())
			if err != nil {
				return nil, nil, err
			}
			return client, client.Close, nil
		},
	})

	r.MustRegister(fixtures.Definition{
		Name:     fixturePlaceholderAPI,
		Scope:    fixtures.ScopeSession,
		Requires: []string{fixtureRESTClient},
		Build: func(env *fixtures.Env) (interface{}, func(), error) {
			dep, err := env.Dependency(fixtureRESTClient)
			if err != nil {
				return nil, nil, err
			}
			return services.NewPlaceholderAPI(dep.(*services.RESTClient)), nil, nil
		},
	})

	r.MustRegister(fixtures.Definition{
		Name:  fixtureIPEcho,
		Scope: fixtures.ScopeSession,
		Build: func(env *fixtures.Env) (interface{}, func(), error) {
			// The echo service lives at its own address, so this fixture owns a
			// separate client rather than requiring the shared one.
			client, err := services.NewRESTClient(env.Config(), env.Logger(),
				services.WithBaseURL(ipEchoBaseURL(env.Config())))
			if err != nil {
				return nil, nil, err
			}
			return services.NewIPEcho(client), client.Close, nil
		},
	})

	r.MustRegister(fixtures.Definition{
		Name:  fixtureBrowser,
		Scope: fixtures.ScopeTest,
		Build: func(env *fixtures.Env) (interface{}, func(), error) {
			b, err := browser.Launch(env.Config(), env.Logger())
			if err != nil {
				return nil, nil, err
			}
			return b, b.Close, nil
		},
	})

	r.MustRegister(fixtures.Definition{
		Name:     fixturePage,
		Scope:    fixtures.ScopeTest,
		Requires: []string{fixtureBrowser},
		Build: func(env *fixtures.Env) (interface{}, func(), error) {
			dep, err := env.Dependency(fixtureBrowser)
			if err != nil {
				return nil, nil, err
			}
			return browser.NewPage(dep.(*browser.Browser), env.Workspace().ReportsDir), nil, nil
		},
	})

	return r
}

// ipEchoBaseURL resolves the echo service location: an "ipecho_url" extra property
// if the configuration has one, otherwise the public service.
func ipEchoBaseURL(cfg config.Config) string {
	if v := cfg.Extra["ipecho_url"]; v.Type() == ldvalue.StringType {
		return v.StringValue()
	}
	return services.DefaultIPEchoURL
}

// The typed helpers below acquire fixtures for the current test. A fixture that
// cannot be built fails the test immediately.

func sharedFaker(t *qatest.T) *data.Faker {
	c := requireContext(t)
	return fixtures.Acquire[*data.Faker](t, c.fixtures, fixtureFaker)
}

func placeholderAPI(t *qatest.T) *services.PlaceholderAPI {
	c := requireContext(t)
	return fixtures.Acquire[*services.PlaceholderAPI](t, c.fixtures, fixturePlaceholderAPI)
}

func ipEchoClient(t *qatest.T) *services.IPEcho {
	c := requireContext(t)
	return fixtures.Acquire[*services.IPEcho](t, c.fixtures, fixtureIPEcho)
}

func testPage(t *qatest.T) *browser.Page {
	c := requireContext(t)
	return fixtures.Acquire[*browser.Page](t, c.fixtures, fixturePage)
}

// dataStore returns a Store rooted in the workspace data directory. It is not a
// registered fixture because it holds nothing that needs teardown.
func dataStore(t *qatest.T) *data.Store {
	return data.NewStore(requireContext(t).harness.Workspace().DataDir)
}
