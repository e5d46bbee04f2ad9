package framework

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slices"
)

const debugTimestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used throughout the harness for
// debug output. It deliberately has no levels; anything written to it is
// either captured with a test or discarded.
type Logger interface {
	Println(args ...interface{})
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Println(args ...interface{})                {}
func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards all output.
func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one timestamped line of debug output.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the accumulated debug output of one test scope.
type CapturedOutput []CapturedMessage

// CapturingLogger records everything written to it. The test scope runtime
// attaches a child logger for each subtest; see qatest.(*T).DebugLogger() for
// how output is distributed between parent and child scopes.
type CapturingLogger struct {
	output   []CapturedMessage
	children []*CapturingLogger
	lock     sync.Mutex
}

func (l *CapturingLogger) Println(args ...interface{}) {
	// Sprintln appends a newline that CapturedMessage does not want
	text := strings.TrimRight(fmt.Sprintln(args...), "\r\n")
	l.record(CapturedMessage{Time: time.Now(), Message: text})
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.record(CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
}

// record stores the message locally while the scope has no children, and
// forwards it to every child while it does. A parent with running subtests
// therefore never interleaves its own buffer with theirs.
func (l *CapturingLogger) record(m CapturedMessage) {
	l.lock.Lock()
	if len(l.children) == 0 {
		l.output = append(l.output, m)
		l.lock.Unlock()
		return
	}
	children := slices.Clone(l.children)
	l.lock.Unlock()
	for _, child := range children {
		child.record(m)
	}
}

// Output returns a snapshot of everything captured so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return slices.Clone(l.output)
}

// AddChildLogger attaches a child scope. The child starts with a copy of
// everything the parent has captured so far, so its output reads as a full
// transcript of the test's lineage.
func (l *CapturingLogger) AddChildLogger(child *CapturingLogger) {
	l.lock.Lock()
	l.children = append(l.children, child)
	inherited := slices.Clone(l.output)
	l.lock.Unlock()
	child.lock.Lock()
	child.output = append(inherited, child.output...)
	child.lock.Unlock()
}

// RemoveChildLogger detaches a child scope when its subtest finishes.
func (l *CapturingLogger) RemoveChildLogger(child *CapturingLogger) {
	l.lock.Lock()
	defer l.lock.Unlock()
	for i, c := range l.children {
		if c == child {
			l.children = slices.Delete(l.children, i, i+1)
			return
		}
	}
}

// ToString formats the captured output one message per line, each with a
// timestamp and the given prefix.
func (output CapturedOutput) ToString(prefix string) string {
	var b strings.Builder
	for i, m := range output {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s[%s] %s", prefix, m.Time.Format(debugTimestampFormat), m.Message)
	}
	return b.String()
}

type prefixedLogger struct {
	base   Logger
	prefix string
}

// LoggerWithPrefix returns a Logger that prepends a fixed prefix to every
// line before passing it on.
func LoggerWithPrefix(baseLogger Logger, prefix string) Logger {
	return prefixedLogger{base: baseLogger, prefix: prefix}
}

func (p prefixedLogger) Println(args ...interface{}) {
	p.base.Println(append([]interface{}{p.prefix}, args...)...)
}

func (p prefixedLogger) Printf(message string, args ...interface{}) {
	p.base.Printf(p.prefix+message, args...)
}
