package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRunsCollection(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "app"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "app", "a.ts"), []byte("x"), 0644))

	RootCmd.SetArgs([]string{
		"--root", root,
		"--folder", "app",
		"--ext", ".ts",
		"--output", "out.txt",
		"--log-file", filepath.Join(root, "ops.log"),
	})
	require.NoError(t, RootCmd.Execute())

	data, err := os.ReadFile(filepath.Join(root, "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "File Path: app/a.ts\nx\n---", string(data))

	// The debug log sink was created alongside the run.
	_, err = os.Stat(filepath.Join(root, "ops.log"))
	assert.NoError(t, err)
}
