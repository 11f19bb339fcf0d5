package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raven/agent"
	"github.com/katalvlaran/raven/config"
)

var problemsDir = filepath.Join("..", "..", "testdata", "problems")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, args...))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func TestSolve_Table(t *testing.T) {
	out, err := run(t, "solve", problemsDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Basic Problem B-01")
	assert.Contains(t, out, "6 problems: 3 answered (3 correct, 0 incorrect), 3 skipped")
}

func TestSolve_JSON(t *testing.T) {
	out, err := run(t, "solve", "--json", "--workers", "3",
		filepath.Join(problemsDir, "basic-b02-pacman-reflection.yaml"),
		filepath.Join(problemsDir, "challenge-c01-3x3.yaml"))
	require.NoError(t, err)

	var payload struct {
		Results []struct {
			Problem string `json:"problem"`
			Answer  int    `json:"answer"`
			Error   string `json:"error"`
		} `json:"results"`
		Summary agent.Summary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Results, 2)
	assert.Equal(t, 5, payload.Results[0].Answer)
	assert.Equal(t, agent.Skip, payload.Results[1].Answer)
	assert.Contains(t, payload.Results[1].Error, "unsupported")
	assert.Equal(t, 1, payload.Summary.Correct)
}

func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "solve")
	require.Error(t, err)

	_, err = run(t, "solve", filepath.Join(problemsDir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "solve", "--workers", "0", problemsDir)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "--log-level", "loud", "solve", problemsDir)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestExplain(t *testing.T) {
	out, err := run(t, "explain", filepath.Join(problemsDir, "basic-b01-fill-and-shape.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "row    → fill changed(fill=no)")
	assert.Contains(t, out, "column → shape changed(shape=circle)")
	assert.Contains(t, out, "synthesized D")
	assert.Contains(t, out, "answer: 3 (confidence 1.00)")

	out, err = run(t, "explain", filepath.Join(problemsDir, "basic-b04-no-confident-answer.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "answer: none confident")
}

func TestExplain_Fatal(t *testing.T) {
	_, err := run(t, "explain", filepath.Join(problemsDir, "basic-b05-unexplained-change.yaml"))
	require.Error(t, err)

	out, err := run(t, "explain", "--permissive", filepath.Join(problemsDir, "basic-b05-unexplained-change.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "shape changed(shape=circle)")
}

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ravens.toml")
	require.NoError(t, os.WriteFile(path, []byte("threshold = 0.5\n"), 0o600))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"--config", path, "config"})
	root.SetOut(&out)
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "threshold = 0.5")
	assert.Contains(t, out.String(), "relaxed_retry = true")
}
