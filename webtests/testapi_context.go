package webtests

import (
	"github.com/launchdarkly/webqa-harness/framework/fixtures"
	"github.com/launchdarkly/webqa-harness/framework/harness"
	"github.com/launchdarkly/webqa-harness/framework/qatest"
)

// TestContext is the application-defined state that RunTestSuite makes available
// to every test scope: the session harness and the fixture provider.
type TestContext struct {
	harness  *harness.Harness
	fixtures *fixtures.Provider
}

func requireContext(t *qatest.T) TestContext {
	if c, ok := t.Context().(TestContext); ok {
		return c
	}
	panic("TestContext was not included in the global test configuration!" +
		" This is a basic mistake in the initialization logic.")
}
