package harness

import (
	"io"
	"log/slog"

	"github.com/launchdarkly/webqa-harness/config"
	"github.com/launchdarkly/webqa-harness/framework"
	"github.com/launchdarkly/webqa-harness/framework/helpers"
)

// Harness owns the session-level state of a test run: the workspace directories,
// the run configuration, and the run log sink.
//
// It contains no domain-specific test logic, but only provides a general mechanism
// for test suites to build on.
type Harness struct {
	workspace Workspace
	config    config.Config
	runLog    *RunLog
	logger    framework.Logger
}

// NewHarness prepares the session in a fixed order: workspace directories first,
// then the run configuration (failing fast if the file is malformed), then the run
// log sink. Any error here is fatal to the session; no tests run.
//
// If configPath is empty, the conventional path inside the workspace is used.
// Overrides are applied after the file is loaded, so command-line settings win.
func NewHarness(
	rootDir string,
	configPath string,
	debugLogger framework.Logger,
	startupOutput io.Writer,
	overrides ...helpers.ConfigOption[config.Config],
) (*Harness, error) {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}

	workspace := NewWorkspace(rootDir)
	if err := workspace.Ensure(); err != nil {
		return nil, err
	}

	if configPath == "" {
		configPath = workspace.DefaultConfigPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := helpers.ApplyOptions(&cfg, overrides...); err != nil {
		return nil, err
	}

	runLog, err := OpenRunLog(workspace.ReportsDir, DefaultRunLogRetention)
	if err != nil {
		return nil, err
	}

	helpers.MustFprintf(startupOutput, "Test workspace: %s\n", workspace.RootDir)
	helpers.MustFprintf(startupOutput, "Configuration: %s\n", cfg.Describe())
	helpers.MustFprintf(startupOutput, "Run log: %s\n", runLog.Path())

	runLog.Logger().Info("test session started",
		slog.String("workspace", workspace.RootDir),
		slog.String("config", cfg.Describe()),
	)

	return &Harness{
		workspace: workspace,
		config:    cfg,
		runLog:    runLog,
		logger:    debugLogger,
	}, nil
}

// Workspace returns the directory layout for this session.
func (h *Harness) Workspace() Workspace { return h.workspace }

// Config returns the run configuration. It does not change after startup.
func (h *Harness) Config() config.Config { return h.config }

// RunLog returns the session log sink.
func (h *Harness) RunLog() *RunLog { return h.runLog }

// Logger returns the harness-level debug logger.
func (h *Harness) Logger() framework.Logger { return h.logger }

// Close writes the session-end line and closes the run log. It is the last thing
// the application does before exiting.
func (h *Harness) Close() error {
	h.runLog.Logger().Info("test session finished")
	return h.runLog.Close()
}
