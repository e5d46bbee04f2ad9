package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/launchdarkly/webqa-harness/framework"
	"github.com/launchdarkly/webqa-harness/framework/qatest"
)

type commandParams struct {
	rootDir      string
	configPath   string
	filters      qatest.RegexFilters
	categories   framework.Categories
	jUnitFile    string
	debug        bool
	debugAll     bool
	mockServices bool
	headless     bool
	headlessSet  bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.rootDir, "root", ".", "workspace root directory")
	fs.StringVar(&c.configPath, "config", "", "config file path (default is config/config.yaml under the workspace root)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.Var(&c.categories, "category", "run only suites in the specified category (repeatable)")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.mockServices, "mock-services", false, "run against in-process mock services instead of the real ones")
	fs.BoolVar(&c.headless, "headless", false, "run the browser headless, overriding the config file")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	// The config file keeps its headless setting unless the flag appeared.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "headless" {
			c.headlessSet = true
		}
	})
	return true
}
