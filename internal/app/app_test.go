package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apidoc2blue/internal/config"
)

const apiData = `[
  {
    "type": "get",
    "url": "/user/:id",
    "title": "Read user",
    "group": "User",
    "parameter": {"fields": {"Parameter": [
      {"field": ":id", "type": "Number", "optional": true, "description": "user id"}
    ]}},
    "success": {
      "fields": {"200 OK": [
        {"field": "data.user.id", "type": "Integer", "description": "id"}
      ]},
      "examples": [{"title": "ok", "content": "{\n  \"id\": 1\n}", "type": "json"}]
    }
  }
]`

const apiProject = `{"title": "Demo", "description": "Desc", "url": "http://x"}`

func setup(t *testing.T, formats ...string) *config.Config {
	t.Helper()

	inputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "api_data.json"), []byte(apiData), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "api_project.json"), []byte(apiProject), 0644))

	cfg := config.Default()
	cfg.Input.Dir = inputDir
	cfg.Output.Dir = filepath.Join(t.TempDir(), "out")
	cfg.Output.Formats = formats
	return cfg
}

func TestEndToEndBlueprint(t *testing.T) {
	cfg := setup(t, "blueprint")

	require.NoError(t, Run(cfg, Options{Quiet: true}))

	content, err := os.ReadFile(cfg.GetOutputPath(".apib"))
	require.NoError(t, err)
	out := string(content)

	expected := "FORMAT: 1A\n\n" +
		"HOST: http://x\n\n# Demo\n\nDesc\n\n\n\n" +
		"\n\n" +
		"# GET /user/{id}\n\nRead user" +
		"\n\n" +
		"+ Parameters\n\n    + id (number, optional) ... user id" +
		"\n\n" +
		"+ Response OK\n\n    + Attributes (object)\n\n" + strings.Repeat(" ", 16) + "+ id (number) - id" +
		"\n\n    + Body\n\n        {\n          \"id\": 1\n        }" +
		"\n\n"

	assert.Equal(t, expected, out)
}

func TestEndToEndAllFormats(t *testing.T) {
	cfg := setup(t, "blueprint", "excel", "html", "word")

	require.NoError(t, Run(cfg, Options{Progress: io.Discard}))

	for _, ext := range []string{".apib", ".xlsx", ".html", ".docx"} {
		_, err := os.Stat(cfg.GetOutputPath(ext))
		assert.NoError(t, err, "missing %s output", ext)
	}
}

func TestRunUnknownFormat(t *testing.T) {
	cfg := setup(t, "pdf")

	err := Run(cfg, Options{Quiet: true})
	assert.ErrorContains(t, err, "no known output format")
}

func TestRunMissingInput(t *testing.T) {
	cfg := setup(t, "blueprint")
	cfg.Input.APIData = "missing.json"

	assert.Error(t, Run(cfg, Options{Quiet: true}))
}

func TestRunWithoutProject(t *testing.T) {
	cfg := setup(t, "blueprint")
	require.NoError(t, os.Remove(cfg.ProjectPath()))

	require.NoError(t, Run(cfg, Options{Quiet: true}))

	content, err := os.ReadFile(cfg.GetOutputPath(".apib"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "FORMAT: 1A\n\n\n\n# GET /user/{id}"))
}
