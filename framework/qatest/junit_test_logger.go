package qatest

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/launchdarkly/webqa-harness/framework"
	o "github.com/launchdarkly/webqa-harness/framework/opt"
)

// JUnitTestLogger accumulates per-test status during the run and writes a
// JUnit XML report when EndLog is called. Tests are grouped into XML suites
// by their top-level scope name, with the suite's category attached as a
// property.
type JUnitTestLogger struct {
	filePath   string
	categories CategoryIndex
	filters    RegexFilters
	testIDs    []TestID // in the order the tests started
	tests      map[string]junitTestStatus
	lock       sync.Mutex
}

type junitTestStatus struct {
	errs        []error
	skipReason  o.Maybe[string]
	nonCritical bool
	output      string
	started     time.Time
	elapsed     time.Duration
}

// XML layout as consumed by common JUnit report readers; see
// https://github.com/jstemmer/go-junit-report for the reference schema.

type junitReport struct {
	XMLName xml.Name     `xml:"testsuites"`
	Suites  []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Time       string          `xml:"time,attr"`
	Name       string          `xml:"name,attr"`
	Properties []junitProperty `xml:"properties>property,omitempty"`
	TestCases  []junitCase     `xml:"testcase"`
}

type junitCase struct {
	XMLName     xml.Name      `xml:"testcase"`
	Classname   string        `xml:"classname,attr"`
	Name        string        `xml:"name,attr"`
	Time        string        `xml:"time,attr"`
	SkipMessage *junitSkipped `xml:"skipped,omitempty"`
	Failure     *junitFailure `xml:"failure,omitempty"`
}

type junitSkipped struct {
	Message string `xml:"message,attr"`
}

type junitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type junitFailure struct {
	Message  string `xml:"message,attr"`
	Type     string `xml:"type,attr"`
	Contents string `xml:",chardata"`
}

func NewJUnitTestLogger(
	filePath string,
	categories CategoryIndex,
	filters RegexFilters,
) *JUnitTestLogger {
	return &JUnitTestLogger{
		filePath:   filePath,
		categories: categories,
		filters:    filters,
		tests:      make(map[string]junitTestStatus),
	}
}

func (j *JUnitTestLogger) update(id TestID, mutate func(*junitTestStatus)) {
	j.lock.Lock()
	defer j.lock.Unlock()
	status := j.tests[id.String()]
	mutate(&status)
	j.tests[id.String()] = status
}

func (j *JUnitTestLogger) TestStarted(id TestID) {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.testIDs = append(j.testIDs, id)
	j.tests[id.String()] = junitTestStatus{started: time.Now()}
}

func (j *JUnitTestLogger) TestError(id TestID, err error) {
	j.update(id, func(s *junitTestStatus) {
		s.errs = append(s.errs, err)
	})
}

func (j *JUnitTestLogger) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	j.update(id, func(s *junitTestStatus) {
		s.output = debugOutput.ToString("")
		s.elapsed = time.Since(s.started)
		s.nonCritical = result.NonCritical
	})
}

func (j *JUnitTestLogger) TestSkipped(id TestID, reason string) {
	j.update(id, func(s *junitTestStatus) {
		s.skipReason = o.Some(reason)
	})
}

// EndLog writes the report file. The run's filter parameters are recorded as
// suite properties so a report can be traced back to the invocation that
// produced it.
func (j *JUnitTestLogger) EndLog(results Results) error {
	fmt.Printf("Writing JUnit report to %s\n", j.filePath)

	runProperties := []junitProperty{
		{Name: "tests.filter.mustMatch", Value: j.filters.MustMatch.String()},
		{Name: "tests.filter.mustNotMatch", Value: j.filters.MustNotMatch.String()},
	}

	var report junitReport
	for _, suiteName := range suiteOrder(j.testIDs) {
		report.Suites = append(report.Suites, j.buildSuite(suiteName, runProperties))
	}

	data, err := xml.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	return os.WriteFile(j.filePath, data, 0644) //nolint:gosec
}

// buildSuite assembles the XML suite for one top-level scope, in run order.
func (j *JUnitTestLogger) buildSuite(suiteName string, runProperties []junitProperty) junitSuite {
	suite := junitSuite{
		Name:       fmt.Sprintf("webqa tests: %s", suiteName),
		Properties: runProperties,
	}
	if category, ok := j.categories.For(TestID{suiteName}); ok {
		suite.Properties = append(suite.Properties, junitProperty{
			Name:  "tests.suite.category",
			Value: category.String(),
		})
	}
	var suiteElapsed time.Duration
	for _, testID := range j.testIDs {
		if len(testID) == 0 || testID[0] != suiteName {
			continue
		}
		status := j.tests[testID.String()]

		suite.Tests++
		if len(status.errs) != 0 {
			suite.Failures++
		}
		suiteElapsed += status.elapsed

		testCase := junitCase{
			Name: testID.String(),
			Time: junitSeconds(status.elapsed),
		}
		if status.nonCritical {
			testCase.Name += " (non-critical)"
		}
		if status.skipReason.IsDefined() {
			testCase.SkipMessage = &junitSkipped{Message: status.skipReason.Value()}
		}
		if len(status.errs) != 0 {
			testCase.Failure = &junitFailure{
				Message:  failureText(status.errs),
				Contents: status.output,
			}
		}

		suite.TestCases = append(suite.TestCases, testCase)
	}
	suite.Time = junitSeconds(suiteElapsed)
	return suite
}

// failureText flattens the failure errors into one message, including the
// stacktrace for any error that carries one.
func failureText(errs []error) string {
	var text strings.Builder
	for i, e := range errs {
		if i > 0 {
			text.WriteString("\n")
		}
		text.WriteString(e.Error())
		if withStack, ok := e.(ErrorWithStacktrace); ok {
			text.WriteString("\n  Stacktrace:")
			for _, frame := range withStack.Stacktrace {
				text.WriteString("\n    " + frame.String())
			}
		}
	}
	return text.String()
}

// suiteOrder returns each distinct top-level scope name once, in the order it
// first appeared.
func suiteOrder(allIDs []TestID) []string {
	var names []string
	seen := make(map[string]bool)
	for _, testID := range allIDs {
		if len(testID) != 0 && !seen[testID[0]] {
			names = append(names, testID[0])
			seen[testID[0]] = true
		}
	}
	return names
}

func junitSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
