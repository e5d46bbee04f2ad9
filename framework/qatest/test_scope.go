package qatest

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/launchdarkly/webqa-harness/framework"
)

// runState is shared by every scope in one test run.
type runState struct {
	config  TestConfiguration
	results Results
}

// T is the scope of one running test. It mirrors the parts of Go's testing.T
// that suites need (Run, Errorf, FailNow, Skip, Helper, and so on), but it is
// driven by the harness's own sequential runner rather than by go test.
type T struct {
	state       *runState
	id          TestID
	debugLogger framework.CapturingLogger
	nonCritical string
	failed      bool
	skipped     bool
	skipReason  string
	cleanups    []func()
	errors      []error
	helperFns   []string
}

// TestConfiguration contains options for the entire test run.
type TestConfiguration struct {
	// Filter optionally decides which tests run, based on their full names.
	Filter Filter

	// TestLogger receives status information about each test. Nil means no
	// reporting.
	TestLogger TestLogger

	// Context is an arbitrary application-defined value that every test scope
	// can read back with T.Context().
	Context interface{}
}

// Run executes the action as the root test scope and returns the accumulated
// results of every scope that ran inside it.
func Run(
	config TestConfiguration,
	action func(*T),
) Results {
	if config.TestLogger == nil {
		config.TestLogger = nullTestLogger{}
	}
	state := &runState{
		config: config,
	}
	t := &T{state: state}
	t.run(action)
	return state.results
}

func (t *T) run(action func(*T)) (result TestResult) {
	result.TestID = t.id
	defer func() {
		if r := recover(); r != nil {
			if t.skipped {
				return
			}
			t.failed = true
			var failure error
			if _, ok := r.(*T); ok {
				// FailNow or Skip panics with the scope itself; any error was
				// already recorded by Errorf
				if len(t.errors) == 0 {
					failure = errors.New("test failed with no failure message")
				}
			} else {
				failure = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if failure != nil {
				t.errors = append(t.errors, failure)
				t.state.config.TestLogger.TestError(t.id, failure)
			}
		}
		result.Errors = t.errors
		if t.failed {
			if t.nonCritical == "" {
				t.state.results.Failures = append(t.state.results.Failures, result)
			} else {
				result.Explanation = t.nonCritical
				result.NonCritical = true
				t.state.results.NonCriticalFailures = append(t.state.results.NonCriticalFailures, result)
			}
		}
		t.state.results.Tests = append(t.state.results.Tests, result)
		for i := len(t.cleanups) - 1; i >= 0; i-- {
			t.cleanups[i]()
		}
	}()

	action(t)
	return result
}

// ID returns the full name of the current test.
func (t *T) ID() TestID {
	return t.id
}

// Run runs a subtest in its own scope, like Go's testing.T.Run. A subtest
// excluded by the run's filter is reported as skipped and its action never
// executes.
func (t *T) Run(name string, action func(*T)) {
	id := t.id.Plus(name)

	t.state.config.TestLogger.TestStarted(id)
	if t.state.config.Filter != nil && !t.state.config.Filter(id) {
		t.state.config.TestLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	child := &T{
		id:    id,
		state: t.state,
	}
	t.debugLogger.AddChildLogger(&child.debugLogger) // see comments on t.DebugLogger()
	result := child.run(action)
	t.debugLogger.RemoveChildLogger(&child.debugLogger)
	if child.skipped {
		t.state.config.TestLogger.TestSkipped(id, child.skipReason)
	} else {
		t.state.config.TestLogger.TestFinished(id, result, child.debugLogger.Output())
	}
}

// NonCritical marks this scope so that a failure is reported separately, with
// the given explanation, instead of counting against the run. Non-critical
// failures do not make the harness exit non-zero the way regular failures do.
func (t *T) NonCritical(explanation string) {
	t.nonCritical = explanation
}

// Errorf records a test failure without terminating the test, like Go's
// testing.T.Errorf. Suites normally reach it through assertion libraries
// rather than calling it directly; it is what makes T satisfy assert.TestingT.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	err := reformatError(fmt.Errorf(format, args...))

	stacktrace := getStacktrace(false, t.helperFns)
	err = transformError(err, stacktrace)

	t.errors = append(t.errors, err)
	t.state.config.TestLogger.TestError(t.id, err)
}

// FailNow marks the test as failed and terminates it immediately. Like
// Errorf, it exists mostly so that require-style assertions work against T.
func (t *T) FailNow() {
	panic(t)
}

// Failed reports whether the test has been marked as failed. It is equivalent
// to Go's testing.T.Failed. It can be used from a function registered with
// Defer, for instance to capture extra diagnostic output only when the test
// did not pass.
func (t *T) Failed() bool {
	return t.failed
}

// Skip terminates the test immediately and marks it as skipped.
func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

// SkipWithReason is Skip with a message that appears in the test output.
func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

// Debug writes a formatted message to the captured output of this scope.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger whose output is captured with this test scope
// and handed to TestLogger.TestFinished when the scope ends. Whether captured
// output is displayed is up to the logger configuration.
//
// A subtest's logger starts with a copy of whatever its parent had already
// captured, and while the subtest runs, output sent to the parent's logger is
// routed to the subtest instead. A parent scope that manages a resource
// shared by its subtests therefore has that resource's output appear in the
// transcript of each subtest that used it.
func (t *T) DebugLogger() framework.Logger {
	return &t.debugLogger
}

// Defer schedules a cleanup to run when this scope exits, whether it passed,
// failed, or panicked. Unlike a Go defer statement it can be called from
// helper functions.
func (t *T) Defer(cleanupFn func()) {
	t.cleanups = append(t.cleanups, cleanupFn)
}

// Context returns the application-defined value from the TestConfiguration,
// or nil if none was set.
func (t *T) Context() interface{} {
	return t.state.config.Context
}

// Helper marks the calling function as a test helper whose frames are
// filtered out of failure stacktraces, like Go's testing.T.Helper.
func (t *T) Helper() {
	pc, _, _, ok := runtime.Caller(1) // 0 is Helper() itself, 1 is who called it
	if !ok {
		return
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return
	}
	t.helperFns = append(t.helperFns, f.Name())
}
