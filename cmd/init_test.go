package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "harness.dev/pkg/harness/internal/model"
)

// inTempDir runs the test from an empty working directory.
func inTempDir(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func runInit(args ...string) (string, error) {
	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"init"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := inTempDir(t)

	output, err := runInit()
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote")

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "launch_timeout")
	assert.Contains(t, string(contents), "crash_poll_interval")
}

func TestInitCmd_ExistingFile(t *testing.T) {
	tempDir := inTempDir(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, err := runInit()
		require.Error(t, err)
		assert.Equal(t, m.ExitGeneralFailure, exitCode(err))

		contents, err := os.ReadFile(targetPath)
		require.NoError(t, err)
		assert.Equal(t, "existing: true\n", string(contents))
	})

	t.Run("force overwrites", func(t *testing.T) {
		_, err := runInit("--force")
		require.NoError(t, err)

		contents, err := os.ReadFile(targetPath)
		require.NoError(t, err)
		assert.Contains(t, string(contents), "launch_timeout")
	})
}
