// Package cli contains tests for the command surface: document loading,
// command output, and error propagation.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipelineDoc is a three-stage chain: build -> test -> release.
const pipelineDoc = `{
	"nodes": [{"id":"build"},{"id":"test"},{"id":"release"}],
	"links": [
		{"source":"build","target":"test"},
		{"source":"test","target":"release"}
	]
}`

// runCLI executes the root command with stdin and args, returning stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestSortCommand_Stdin(t *testing.T) {
	out, err := runCLI(t, pipelineDoc, "sort")
	require.NoError(t, err)
	assert.Equal(t, "build\ntest\nrelease\n", out)
}

func TestSortCommand_FileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(pipelineDoc), 0o644))

	out, err := runCLI(t, "", "sort", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "build\ntest\nrelease\n", out)
}

func TestPathCommand(t *testing.T) {
	out, err := runCLI(t, pipelineDoc, "path", "build", "release")
	require.NoError(t, err)
	assert.Equal(t, "build -> test -> release (weight 2)\n", out)
}

func TestPathCommand_UnknownNode(t *testing.T) {
	_, err := runCLI(t, pipelineDoc, "path", "build", "deploy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "node not found")
}

func TestStatsCommand(t *testing.T) {
	out, err := runCLI(t, pipelineDoc, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes: 3")
	assert.Contains(t, out, "edges: 2")
	assert.Contains(t, out, "build\tin=0\tout=1")
	assert.Contains(t, out, "release\tin=1\tout=0")
}

func TestRenderCommand_DOT(t *testing.T) {
	out, err := runCLI(t, pipelineDoc, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, `"build" -> "test"`)
}

func TestRenderCommand_UnknownFormat(t *testing.T) {
	_, err := runCLI(t, pipelineDoc, "render", "-f", "png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestLoadGraph_MissingFile(t *testing.T) {
	_, err := runCLI(t, "", "sort", "-i", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
