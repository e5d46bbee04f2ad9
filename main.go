package main

import (
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/launchdarkly/webqa-harness/config"
	"github.com/launchdarkly/webqa-harness/framework"
	"github.com/launchdarkly/webqa-harness/framework/harness"
	"github.com/launchdarkly/webqa-harness/framework/helpers"
	"github.com/launchdarkly/webqa-harness/framework/qatest"
	"github.com/launchdarkly/webqa-harness/mockapi"
	"github.com/launchdarkly/webqa-harness/webtests"
)

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("webqa-harness v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (*qatest.Results, error) {
	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	var overrides []helpers.ConfigOption[config.Config]
	if params.headlessSet {
		overrides = append(overrides, config.WithHeadless(params.headless))
	}

	if params.mockServices {
		local, err := mockapi.StartLocalServices(mainDebugLogger)
		if err != nil {
			return nil, err
		}
		defer local.Close()
		fmt.Printf("Mock services listening at %s and %s\n", local.PlaceholderURL(), local.IPEchoURL())
		overrides = append(overrides,
			config.WithBaseURL(local.PlaceholderURL()),
			config.WithExtra("ipecho_url", ldvalue.String(local.IPEchoURL())),
		)
	}

	testHarness, err := harness.NewHarness(
		params.rootDir,
		params.configPath,
		mainDebugLogger,
		os.Stdout,
		overrides...,
	)
	if err != nil {
		return nil, err
	}

	categoryIndex := webtests.CategoryIndexForSuites(webtests.AllSuites())
	qatest.PrintFilterDescription(params.filters, params.categories)

	filter := qatest.AllFilters(
		params.filters.Match,
		qatest.CategoryFilter{Categories: params.categories, Index: categoryIndex}.Match,
	)

	loggers := []qatest.TestLogger{
		qatest.ConsoleTestLogger{
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
		qatest.NewRunLogTestLogger(testHarness.RunLog().Logger(), categoryIndex),
	}
	if params.jUnitFile != "" {
		loggers = append(loggers, qatest.NewJUnitTestLogger(params.jUnitFile, categoryIndex, params.filters))
	}
	testLogger := &qatest.MultiTestLogger{Loggers: loggers}

	results := webtests.RunTestSuite(testHarness, filter, testLogger)

	fmt.Println()
	logErr := testLogger.EndLog(results)
	qatest.PrintResults(results)

	if err := testHarness.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing the workspace: %s\n", err)
	}

	if logErr != nil {
		return nil, fmt.Errorf("error writing log: %v", logErr)
	}

	return &results, nil
}
