package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesDebugToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "file_operations.log")

	logger, err := New(logFile)
	require.NoError(t, err)

	logger.Debug("debug only event")
	logger.Info("visible event")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	content := string(data)

	// The file sink receives both levels in the shared line format.
	assert.Contains(t, content, "DEBUG - debug only event")
	assert.Contains(t, content, "INFO - visible event")
}

func TestNewAppendsAcrossHandles(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "file_operations.log")

	first, err := New(logFile)
	require.NoError(t, err)
	first.Info("first run")

	second, err := New(logFile)
	require.NoError(t, err)
	second.Info("second run")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestNewFailsOnUnwritablePath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "no-such-dir", "ops.log"))
	assert.Error(t, err)
}

func TestSyncSwallowsStderrErrors(t *testing.T) {
	logger, err := New(filepath.Join(t.TempDir(), "ops.log"))
	require.NoError(t, err)

	logger.Info("an event")
	assert.NoError(t, Sync(logger))
}
