package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkspaceComputesLayout(t *testing.T) {
	w := NewWorkspace(filepath.Join("some", "root"))
	assert.Equal(t, filepath.Join("some", "root"), w.RootDir)
	assert.Equal(t, filepath.Join("some", "root", "config"), w.ConfigDir)
	assert.Equal(t, filepath.Join("some", "root", "data"), w.DataDir)
	assert.Equal(t, filepath.Join("some", "root", "reports"), w.ReportsDir)
	assert.Equal(t, filepath.Join("some", "root", "config", "config.yaml"), w.DefaultConfigPath())
}

func TestWorkspaceEnsureCreatesDirectories(t *testing.T) {
	w := NewWorkspace(t.TempDir())
	require.NoError(t, w.Ensure())

	for _, dir := range []string{w.ConfigDir, w.DataDir, w.ReportsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestWorkspaceEnsureLeavesExistingContentAlone(t *testing.T) {
	w := NewWorkspace(t.TempDir())
	require.NoError(t, w.Ensure())

	path := filepath.Join(w.DataDir, "keep.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	require.NoError(t, w.Ensure())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
