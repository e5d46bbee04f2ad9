// Package framework contains the harness infrastructure that is not specific to
// what is being tested. The base package holds shared types such as Logger and
// Category; the subpackages harness, qatest, and fixtures build on it.
//
// The general model is:
//
// 1. The test harness owns a workspace on disk (configuration, data files, and a
// reports directory for logs and screenshots) which it prepares before any tests run.
//
// 2. Shared resources that tests depend on, such as HTTP sessions, browsers, and data
// stores, are modeled as fixtures with an explicit lifetime and are provisioned on
// demand and torn down in reverse order.
//
// 3. A test context, similar to Go's testing.T, ties each piece of test logic to
// a test identifier and accumulates success and failure results for the run.
//
// The domain-specific code that knows what is being tested is responsible for declaring
// the fixtures, registering test suites under a category, and providing domain-specific
// test APIs on top of the test context.
package framework
