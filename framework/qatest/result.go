package qatest

import (
	"strings"
)

// Results is the aggregate outcome of a test run.
type Results struct {
	Tests               []TestResult
	Failures            []TestResult
	NonCriticalFailures []TestResult
}

// TestResult is the outcome of a single test scope.
type TestResult struct {
	TestID      TestID
	Errors      []error
	Explanation string
	NonCritical bool
}

// Failed returns true if the test reported at least one error.
func (r TestResult) Failed() bool {
	return len(r.Errors) != 0
}

// OK returns true if there were no critical failures. Non-critical failures
// do not affect the exit status of the test run.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID is the fully qualified name of a test: one element per scope,
// outermost first.
type TestID []string

func (t TestID) String() string {
	return strings.Join(t, "/")
}

// Plus returns a new TestID with the given name appended. The original value
// is not modified.
func (t TestID) Plus(name string) TestID {
	return append(append(TestID(nil), t...), name)
}

// PathComponents splits the ID into slash-separated path elements. A suite name
// is a single ID element that contains slashes ("api/placeholder"), so one
// element can yield several components; filter patterns operate on the
// flattened path.
func (t TestID) PathComponents() []string {
	var out []string
	for _, elem := range t {
		out = append(out, strings.Split(elem, "/")...)
	}
	return out
}
