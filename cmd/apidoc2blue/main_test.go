package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "apidoc2blue version dev")
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote default configuration")
	assert.FileExists(t, path)

	// Refuses to overwrite
	_, err = execute(t, "init", path)
	assert.Error(t, err)
}

func TestRootCommandConverts(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "api_data.json"),
		[]byte(`[{"type":"post","url":"login","title":"Login"}]`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "api_project.json"),
		[]byte(`{"title":"Auth","url":"http://api"}`), 0644))

	_, err := execute(t,
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--input", inputDir,
		"--output", outputDir,
		"--format", "apib,md",
		"--quiet",
	)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outputDir, "api.apib"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# POST /login\n\nLogin")
	assert.FileExists(t, filepath.Join(outputDir, "apidoc2blue.log"))
}

func TestRootCommandMissingInput(t *testing.T) {
	_, err := execute(t,
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--input", t.TempDir(),
		"--output", t.TempDir(),
		"--quiet",
	)
	assert.Error(t, err)
}
