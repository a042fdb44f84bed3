package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/docu/internal/iotest"
)

// writeSampleSource drops an annotated source file
// into a fresh temporary directory.
func writeSampleSource(t testing.TB) string {
	t.Helper()

	src := strings.Join([]string{
		"/// Sample library.",
		"/// Exercises the whole pipeline.",
		"package sample",
		"",
		"",
		"",
		"",
		"/// Greet builds a greeting for name.",
		"func Greet(name string) string {",
		`	return "hello " + name`,
		"}",
		"",
	}, "\n")

	path := filepath.Join(t.TempDir(), "sample.go")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestMainCmd_help(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-h"})
	assert.Zero(t, exitCode, "-h should have zero status code")
}

func TestMainCmd_helpTopic(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-h", "templates"})
	assert.Zero(t, exitCode)

	assert.Contains(t, stderr.String(), "default")
	assert.Contains(t, stderr.String(), "modern")
}

func TestMainCmd_version(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &buff,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-version"})
	assert.Zero(t, exitCode, "-version should have zero status code")

	assert.Contains(t, buff.String(), "docu")
	assert.Contains(t, buff.String(), _version)
}

func TestMainCmd_unknownFlag(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"--this-flag-does-not-exist"})
	assert.NotZero(t, exitCode, "unknown flag should have non-zero status code")
}

func TestMainCmd_missingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent.go")

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{missing})
	assert.Equal(t, 1, exitCode)

	assert.Contains(t, stderr.String(), "Error: file not found: "+missing)
}

func TestMainCmd_wrongExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "script.py")
	require.NoError(t, os.WriteFile(path, []byte("print('hi')\n"), 0o644))

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{path})
	assert.Equal(t, 1, exitCode)

	assert.Contains(t, stderr.String(), "file must be a Go (.go) file")
}

func TestMainCmd_markdownToStdout(t *testing.T) {
	t.Parallel()

	path := writeSampleSource(t)

	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-format", "markdown", path})
	require.Zero(t, exitCode)

	out := stdout.String()
	assert.Contains(t, out, "# Module sample")
	assert.Contains(t, out, "## Functions")
	assert.Contains(t, out, "### Greet")
	assert.True(t, strings.HasSuffix(out, "\n"), "stdout must end with a newline")
}

func TestMainCmd_htmlSaved(t *testing.T) {
	t.Parallel()

	path := writeSampleSource(t)
	outDir := t.TempDir()

	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-output-dir", outDir, path})
	require.Zero(t, exitCode)

	wantPath := filepath.Join(outDir, "sample_default.html")
	assert.Contains(t, stdout.String(), "Documentation saved to: "+wantPath)

	body, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "</html>")
	assert.Contains(t, string(body), "Greet")
}

func TestMainCmd_verbose(t *testing.T) {
	t.Parallel()

	path := writeSampleSource(t)

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-verbose", "-format", "markdown", path})
	require.Zero(t, exitCode)

	assert.Contains(t, stderr.String(), "Processing file: "+path)
	assert.Contains(t, stderr.String(), "Output format: markdown")
}

func TestMainCmd_verboseToFile(t *testing.T) {
	t.Parallel()

	path := writeSampleSource(t)
	logFile := filepath.Join(t.TempDir(), "progress.log")

	var stderr bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: &stderr,
	}).Run([]string{"-verbose=" + logFile, "-format", "markdown", path})
	require.Zero(t, exitCode)

	body, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Processing file: "+path)
	assert.NotContains(t, stderr.String(), "Processing file:")
}

func TestMainCmd_index(t *testing.T) {
	t.Parallel()

	path := writeSampleSource(t)
	outDir := t.TempDir()

	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-output-dir", outDir, "-index", path})
	require.Zero(t, exitCode)

	body, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(body), `href="sample_default.html"`)
}

func TestMainCmd_configFile(t *testing.T) {
	t.Parallel()

	path := writeSampleSource(t)
	cfg := filepath.Join(t.TempDir(), "docu.rc")
	require.NoError(t, os.WriteFile(cfg, []byte("format markdown\n"), 0o644))

	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-config", cfg, path})
	require.Zero(t, exitCode)

	assert.Contains(t, stdout.String(), "# Module sample")
}

func TestMainCmd_environment(t *testing.T) {
	// No t.Parallel: t.Setenv.
	t.Setenv("DOCU_FORMAT", "markdown")

	path := writeSampleSource(t)

	var stdout bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &stdout,
		Stderr: iotest.Writer(t),
	}).Run([]string{path})
	require.Zero(t, exitCode)

	assert.Contains(t, stdout.String(), "# Module sample")
}
