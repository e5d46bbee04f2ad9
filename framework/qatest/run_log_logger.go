package qatest

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/launchdarkly/webqa-harness/framework"
)

// RunLogTestLogger writes one structured line per test outcome to the session
// run log. It observes results only; it never changes them.
type RunLogTestLogger struct {
	log        *slog.Logger
	categories CategoryIndex
	started    map[string]time.Time
	lock       sync.Mutex
}

func NewRunLogTestLogger(log *slog.Logger, categories CategoryIndex) *RunLogTestLogger {
	return &RunLogTestLogger{
		log:        log,
		categories: categories,
		started:    make(map[string]time.Time),
	}
}

func (r *RunLogTestLogger) TestStarted(id TestID) {
	r.lock.Lock()
	r.started[id.String()] = time.Now()
	r.lock.Unlock()
}

func (r *RunLogTestLogger) TestError(TestID, error) {
	// errors are reported with the finished result
}

func (r *RunLogTestLogger) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	attrs := r.baseAttrs(id)
	if result.Failed() {
		messages := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			messages = append(messages, e.Error())
		}
		attrs = append(attrs,
			slog.String("result", "failed"),
			slog.Bool("non_critical", result.NonCritical),
			slog.String("error", strings.Join(messages, "; ")),
		)
		r.log.Error("test failed", attrs...)
		return
	}
	attrs = append(attrs, slog.String("result", "passed"))
	r.log.Info("test passed", attrs...)
}

func (r *RunLogTestLogger) TestSkipped(id TestID, reason string) {
	attrs := append(r.baseAttrs(id), slog.String("result", "skipped"))
	if reason != "" {
		attrs = append(attrs, slog.String("reason", reason))
	}
	r.log.Info("test skipped", attrs...)
}

func (r *RunLogTestLogger) EndLog(results Results) error {
	r.log.Info("test run finished",
		slog.Int("tests", len(results.Tests)),
		slog.Int("failures", len(results.Failures)),
		slog.Int("non_critical_failures", len(results.NonCriticalFailures)),
	)
	return nil
}

func (r *RunLogTestLogger) baseAttrs(id TestID) []any {
	attrs := []any{slog.String("test", id.String())}
	if category, ok := r.categories.For(id); ok {
		attrs = append(attrs, slog.String("category", category.String()))
	}
	r.lock.Lock()
	start, ok := r.started[id.String()]
	if ok {
		delete(r.started, id.String())
	}
	r.lock.Unlock()
	if ok {
		attrs = append(attrs, slog.Duration("elapsed", time.Since(start)))
	}
	return attrs
}
