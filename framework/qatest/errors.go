package qatest

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrorWithStacktrace is a test failure message together with the
// application-level stack frames it was reported from. The framework's own
// frames are already filtered out when one of these is built.
type ErrorWithStacktrace struct {
	Message    string
	Stacktrace []StacktraceInfo
}

// StacktraceInfo identifies one stack frame.
type StacktraceInfo struct {
	File     string
	Package  string
	Function string
	Line     int
}

func (e ErrorWithStacktrace) Error() string { return e.Message }

func (s StacktraceInfo) String() string {
	pkg := strings.TrimPrefix(s.Package, modulePath()+"/")
	return fmt.Sprintf("%s.%s (%s:%d)", pkg, s.Function, s.File, s.Line)
}

var testifyTraceRegex = regexp.MustCompile(`^(?s:\s*Error Trace:.*\sError:\s*)`)

// transformError attaches our own stacktrace to an error, first stripping any
// trace text that testify's assert or require may have embedded in the
// message itself.
func transformError(err error, stacktrace []StacktraceInfo) error {
	message := err.Error()
	if strings.Contains(message, "Error Trace:") {
		message = strings.TrimSpace(testifyTraceRegex.ReplaceAllLiteralString(message, ""))
	}
	if len(stacktrace) == 0 {
		return errors.New(message)
	}
	return ErrorWithStacktrace{Message: message, Stacktrace: stacktrace}
}

func ownPackageName() string {
	pc, _, _, ok := runtime.Caller(0)
	if !ok {
		return "?"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?"
	}
	pkg, _ := splitQualifiedName(fn.Name())
	return pkg
}

// modulePath returns the module's import path prefix, derived from this
// package's own import path rather than hard-coded.
func modulePath() string {
	return strings.Join(strings.Split(ownPackageName(), "/")[0:3], "/")
}

// getStacktrace walks the calling goroutine's stack up to the test runner's
// root. Frames from this package are omitted unless includeFrameworkCode is
// set, as are any functions registered with T.Helper.
func getStacktrace(includeFrameworkCode bool, helperFns []string) []StacktraceInfo {
	frames := []StacktraceInfo{}
	ownPackage := ownPackageName()
	// skip 0, which would just be getStacktrace itself
	for depth := 1; ; depth++ {
		pc, file, line, ok := runtime.Caller(depth)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			break
		}
		if i := strings.LastIndex(file, "/"); i >= 0 {
			file = file[i+1:]
		}

		pkg, function := splitQualifiedName(fn.Name())
		if pkg == ownPackage && function == "Run" {
			break // qatest.Run is the root of every test run
		}
		if !includeFrameworkCode && pkg == ownPackage {
			continue
		}
		if slices.Contains(helperFns, fn.Name()) {
			continue
		}

		frames = append(frames, StacktraceInfo{File: file, Package: pkg, Function: function, Line: line})
	}
	return frames
}

// splitQualifiedName separates a runtime function name such as
// "host/module/pkg.(*T).Method" into its package path and function parts.
func splitQualifiedName(fullName string) (string, string) {
	dir, base := "", fullName
	if i := strings.LastIndex(fullName, "/"); i >= 0 {
		dir, base = fullName[:i+1], fullName[i+1:]
	}
	pkg, function, _ := strings.Cut(base, ".")
	return dir + pkg, function
}
