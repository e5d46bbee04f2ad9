package harness

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is the directory layout that the harness owns on disk. All paths are
// derived from a single root: configuration under config/, test data files under
// data/, and run artifacts (logs, screenshots, reports) under reports/.
type Workspace struct {
	RootDir    string
	ConfigDir  string
	DataDir    string
	ReportsDir string
}

// NewWorkspace computes the standard directory layout under the given root. It does
// not touch the filesystem; call Ensure for that.
func NewWorkspace(rootDir string) Workspace {
	return Workspace{
		RootDir:    rootDir,
		ConfigDir:  filepath.Join(rootDir, "config"),
		DataDir:    filepath.Join(rootDir, "data"),
		ReportsDir: filepath.Join(rootDir, "reports"),
	}
}

// Ensure creates the standard subdirectories if they do not already exist. It is safe
// to call on every startup; directories that are already present are left as they are.
func (w Workspace) Ensure() error {
	for _, dir := range []string{w.ConfigDir, w.DataDir, w.ReportsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec
			return fmt.Errorf("could not create workspace directory %s: %w", dir, err)
		}
	}
	return nil
}

// DefaultConfigPath returns the conventional location of the run configuration file.
func (w Workspace) DefaultConfigPath() string {
	return filepath.Join(w.ConfigDir, "config.yaml")
}
