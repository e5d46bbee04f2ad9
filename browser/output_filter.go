package browser

import (
	"io"
	"regexp"
	"strings"

	"github.com/launchdarkly/webqa-harness/framework"
)

// Chrome writes a fair amount of startup chatter to its combined output that
// is useless in test logs. Lines matching these patterns are dropped; anything
// else (crashes, real errors) still reaches the debug logger.
var browserNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`DevTools listening on`),
	regexp.MustCompile(`ERROR:gpu_init\.cc`),
	regexp.MustCompile(`ERROR:viz_main_impl\.cc`),
	regexp.MustCompile(`Fontconfig (error|warning)`),
	regexp.MustCompile(`dbus.*Failed to connect to socket`),
}

type filteredWriter struct {
	writer       io.Writer
	excludeRegex []*regexp.Regexp
}

func newFilteredWriter(writer io.Writer, excludeRegex []*regexp.Regexp) *filteredWriter {
	return &filteredWriter{writer, excludeRegex}
}

func (f *filteredWriter) Write(data []byte) (int, error) {
	for _, r := range f.excludeRegex {
		if r.Match(data) {
			return len(data), nil
		}
	}
	return f.writer.Write(data)
}

// loggerWriter adapts a framework.Logger to io.Writer so the browser process
// output can share the test's debug log.
type loggerWriter struct {
	logger framework.Logger
}

func (w loggerWriter) Write(data []byte) (int, error) {
	line := strings.TrimRight(string(data), "\r\n")
	if line != "" {
		w.logger.Printf("browser: %s", line)
	}
	return len(data), nil
}

func newBrowserOutputWriter(logger framework.Logger) io.Writer {
	return newFilteredWriter(loggerWriter{logger}, browserNoisePatterns)
}
