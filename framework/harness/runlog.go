package harness

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const runLogFilePrefix = "test_run_"
const runLogDateFormat = "2006-01-02"

// DefaultRunLogRetention is how long run log files are kept before they are pruned.
const DefaultRunLogRetention = 30 * 24 * time.Hour

// RunLog is the session log sink: a structured logger writing to a dated file in the
// reports directory. The file name includes the current date, so each day's sessions
// append to their own file; files older than the retention period are removed when a
// new log is opened.
type RunLog struct {
	file   *os.File
	logger *slog.Logger
	path   string
}

// OpenRunLog prunes outdated log files and then opens today's run log file under
// reportsDir, creating it if necessary and appending if it already exists.
func OpenRunLog(reportsDir string, retention time.Duration) (*RunLog, error) {
	if err := PruneOldLogs(reportsDir, retention, time.Now()); err != nil {
		return nil, fmt.Errorf("could not prune old run logs: %w", err)
	}
	path := filepath.Join(reportsDir, runLogFileName(time.Now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("could not open run log %s: %w", path, err)
	}
	return &RunLog{
		file:   f,
		logger: slog.New(slog.NewTextHandler(f, nil)),
		path:   path,
	}, nil
}

// Logger returns the structured logger that writes to the run log file.
func (r *RunLog) Logger() *slog.Logger { return r.logger }

// Path returns the file the run log is writing to.
func (r *RunLog) Path() string { return r.path }

func (r *RunLog) Close() error { return r.file.Close() }

func runLogFileName(now time.Time) string {
	return fmt.Sprintf("%s%s.log", runLogFilePrefix, now.Format(runLogDateFormat))
}

// PruneOldLogs removes run log files in dir whose date, parsed from the file name, is
// older than the retention period measured back from now. Files that do not look like
// run logs are left alone.
func PruneOldLogs(dir string, retention time.Duration, now time.Time) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	cutoff := now.Add(-retention)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasPrefix(name, runLogFilePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		dateStr := strings.TrimSuffix(strings.TrimPrefix(name, runLogFilePrefix), ".log")
		fileDate, err := time.Parse(runLogDateFormat, dateStr)
		if err != nil {
			continue
		}
		if fileDate.Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				return err
			}
		}
	}
	return nil
}
