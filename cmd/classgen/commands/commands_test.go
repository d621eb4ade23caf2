package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/classbuilder/config"
	"github.com/teranos/classbuilder/errors"
)

const mainDefinition = `
name = "Main"
qualifier = "sealed"
imports = ["System"]

[[methods]]
name = "Go"
body = "noop"

[[properties]]
name = "Count"
returns = "Integer"
getter = true
setter = true
`

// isolate runs the test in a fresh working directory with no user config
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	chdir(t, dir)
	config.Reset()
	t.Cleanup(config.Reset)
	return dir
}

// execute runs the root command with flag state reset to defaults
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	configPath, jsonLog, logLevel = "", false, ""
	renderOutput, renderWatch, renderFormat = "", false, ""
	sampleOutput = "test.cs"
	configFormat = "toml"
	versionJSON = false

	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRender_Stdout(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "main.toml"), mainDefinition)

	out, _, err := execute(t, "render", "main.toml")
	require.NoError(t, err)

	assert.Contains(t, out, "using System;\n")
	assert.Contains(t, out, "public sealed class Main  {\n")
	assert.Contains(t, out, "public  void Go () {\n noop \n}")
	assert.Contains(t, out, "public   int Count { get; set; }\n")
}

func TestRender_ExplicitFormat(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "main.def"), mainDefinition)

	_, _, err := execute(t, "render", "main.def")
	assert.Error(t, err)

	out, _, err := execute(t, "render", "main.def", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "class Main")

	_, _, err = execute(t, "render", "main.def", "--format", "toml", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch cannot be combined with --format")
}

func TestRender_OutputFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "main.toml"), mainDefinition)

	out, errOut, err := execute(t, "render", "main.toml", "-o", "gen/Main.cs")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Wrote gen/Main.cs")

	data, err := os.ReadFile(filepath.Join(dir, "gen", "Main.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "public sealed class Main")
}

func TestRender_RespectsOverwrite(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "main.toml"), mainDefinition)
	writeFile(t, filepath.Join(dir, "Main.cs"), "keep me")
	writeFile(t, filepath.Join(dir, config.ProjectFileName), "[output]\npath = \"Main.cs\"\noverwrite = false\n")

	_, _, err := execute(t, "render", "main.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(filepath.Join(dir, "Main.cs"))
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestRender_InvalidDefinition(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "main.yaml"), "modifier: public\n")

	_, _, err := execute(t, "render", "main.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidDefinitionError(err), "got %v", err)
}

func TestRender_PropertyStateError(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "main.yaml"), "name: Main\nproperties:\n  - name: Count\n    setter: true\n")

	_, _, err := execute(t, "render", "main.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidPropertyStateError(err), "got %v", err)
}

func TestSample(t *testing.T) {
	dir := isolate(t)

	out, _, err := execute(t, "sample")
	require.NoError(t, err)
	assert.Contains(t, out, "public sealed class Main  {")

	data, err := os.ReadFile(filepath.Join(dir, "test.cs"))
	require.NoError(t, err)
	assert.Equal(t, out, string(data))

	require.NoError(t, os.Remove(filepath.Join(dir, "test.cs")))
	_, _, err = execute(t, "sample", "-o", "")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "test.cs"))
}

func TestTypes(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "types")
	require.NoError(t, err)
	for _, want := range []string{"Boolean", "bool", "Promise", "Task", "Guid", "DateTime"} {
		assert.Contains(t, out, want)
	}
}

func TestConfigShow(t *testing.T) {
	isolate(t)
	t.Setenv("CLASSGEN_LOG_LEVEL", "debug")

	out, _, err := execute(t, "config", "show", "--format", "json")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Builder.ResetOnCreate)

	out, _, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[builder]")
	assert.Contains(t, out, "async_style = ")
	assert.Contains(t, out, "corrected")

	out, _, err = execute(t, "config", "show", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "debounce_ms: 100")

	_, _, err = execute(t, "config", "show", "--format", "xml")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	dir := isolate(t)

	_, errOut, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, errOut, config.ProjectFileName)

	cfg, err := config.LoadFromFile(filepath.Join(dir, config.ProjectFileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestExplicitConfigFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "alt.toml"), "[builder]\nasync_style = \"legacy\"\n")
	writeFile(t, filepath.Join(dir, "main.toml"), "name = \"Main\"\n[[methods]]\nname = \"Run\"\nasync = true\n")

	out, _, err := execute(t, "--config", "alt.toml", "render", "main.toml")
	require.NoError(t, err)
	assert.Contains(t, out, "public  Task<void> Run ()")

	_, _, err = execute(t, "--config", "missing.toml", "version")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "classgen dev")

	out, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
}
