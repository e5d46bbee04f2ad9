// Package fixtures provides the resource-provisioning layer of the harness. A
// fixture is a named resource that tests depend on, such as an HTTP session, a
// browser, or a data generator. Each fixture declares a lifetime (one shared
// instance for the whole session, or a fresh instance per test) and the other
// fixtures it needs, and supplies a build function.
//
// All definitions are registered explicitly during startup and validated as a
// whole before any test runs. A Provider then resolves fixtures on demand during
// the run, memoizing each instance within its scope and guaranteeing that every
// constructed instance is torn down exactly once, in reverse construction order,
// even when a test fails or panics.
//
// The test run is sequential, so the provider does no locking. Running tests in
// parallel would require per-test state isolation plus synchronization of the
// session-scoped state.
package fixtures
