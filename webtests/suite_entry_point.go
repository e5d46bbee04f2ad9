package webtests

import (
	"errors"
	"fmt"

	"github.com/launchdarkly/webqa-harness/framework"
	"github.com/launchdarkly/webqa-harness/framework/fixtures"
	"github.com/launchdarkly/webqa-harness/framework/harness"
	"github.com/launchdarkly/webqa-harness/framework/qatest"
)

// SuiteDef declares one runnable suite: a unique name, the category it reports
// under, and its body.
type SuiteDef struct {
	Name     string
	Category framework.Category
	Run      func(*qatest.T)
}

// AllSuites returns every suite this harness knows how to run.
func AllSuites() []SuiteDef {
	return []SuiteDef{
		{Name: "unit/calculator", Category: framework.CategoryUnit, Run: doCalculatorTests},
		{Name: "integration/datastore", Category: framework.CategoryIntegration, Run: doDataStoreTests},
		{Name: "api/placeholder", Category: framework.CategoryAPI, Run: doPlaceholderAPITests},
		{Name: "api/ipecho", Category: framework.CategoryAPI, Run: doIPEchoTests},
		{Name: "ui/webforms", Category: framework.CategoryUI, Run: doWebFormTests},
	}
}

// ValidateSuites checks the suite declarations once, before anything executes.
// Every suite must have a nonempty unique name, a body, and a valid category.
func ValidateSuites(suites []SuiteDef) error {
	seen := make(map[string]bool)
	for _, s := range suites {
		if s.Name == "" {
			return errors.New("a test suite was declared with an empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("test suite %q is declared twice", s.Name)
		}
		seen[s.Name] = true
		if s.Run == nil {
			return fmt.Errorf("test suite %q has no test function", s.Name)
		}
		if _, err := framework.ParseCategory(s.Category.String()); err != nil {
			return fmt.Errorf("test suite %q: %w", s.Name, err)
		}
	}
	return nil
}

// CategoryIndexForSuites builds the name-to-category index that the loggers and
// the category filter consume.
func CategoryIndexForSuites(suites []SuiteDef) qatest.CategoryIndex {
	index := make(qatest.CategoryIndex, len(suites))
	for _, s := range suites {
		index[s.Name] = s.Category
	}
	return index
}

// RunTestSuite runs every registered suite, subject to the filter, and returns
// the aggregate results. All session-scoped fixtures are torn down before it
// returns.
func RunTestSuite(
	testHarness *harness.Harness,
	filter qatest.Filter,
	testLogger qatest.TestLogger,
) qatest.Results {
	suites := AllSuites()
	if err := ValidateSuites(suites); err != nil {
		return resultsFromSetupError(err)
	}

	provider, err := fixtures.NewProvider(newFixtureRegistry(), testHarness)
	if err != nil {
		return resultsFromSetupError(err)
	}
	defer provider.CloseSession()

	config := qatest.TestConfiguration{
		Filter:     filter,
		TestLogger: testLogger,
		Context: TestContext{
			harness:  testHarness,
			fixtures: provider,
		},
	}

	return qatest.Run(config, func(t *qatest.T) {
		for _, suite := range suites {
			t.Run(suite.Name, suite.Run)
		}
	})
}

func resultsFromSetupError(err error) qatest.Results {
	return qatest.Results{
		Failures: []qatest.TestResult{
			{
				Errors: []error{err},
			},
		},
	}
}
