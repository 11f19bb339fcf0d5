package agent_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/raven/agent"
	"github.com/katalvlaran/raven/config"
	"github.com/katalvlaran/raven/grid"
	"github.com/katalvlaran/raven/problem"
	"github.com/katalvlaran/raven/semnet"
)

func testdata(t *testing.T) []*problem.Problem {
	t.Helper()
	ps, err := problem.LoadDir(filepath.Join("..", "testdata", "problems"))
	require.NoError(t, err)
	require.Len(t, ps, 6)
	return ps
}

func byName(t *testing.T, name string) *problem.Problem {
	t.Helper()
	for _, p := range testdata(t) {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no problem %q", name)
	return nil
}

func newAgent(t *testing.T, mutate func(*config.Config)) *agent.Agent {
	t.Helper()
	cfg := config.Default()
	cfg.Workers = 2
	if mutate != nil {
		mutate(&cfg)
	}
	a, err := agent.New(cfg, nil)
	require.NoError(t, err)
	return a
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Workers = 0
	_, err := agent.New(cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSolve_Answers(t *testing.T) {
	a := newAgent(t, nil)

	res := a.Solve(byName(t, "Basic Problem B-01"))
	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.Answer)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
	assert.True(t, res.Correct())
	assert.False(t, res.Relaxed)

	res = a.Solve(byName(t, "Basic Problem B-02"))
	require.NoError(t, res.Err)
	assert.Equal(t, 5, res.Answer)
}

func TestSolve_Abstains(t *testing.T) {
	a := newAgent(t, nil)
	res := a.Solve(byName(t, "Basic Problem B-04"))
	assert.Equal(t, agent.Skip, res.Answer)
	assert.True(t, res.Skipped())
	assert.True(t, res.Relaxed, "permissive retry was attempted")
	require.ErrorIs(t, res.Err, semnet.ErrNoConfidentSolution)

	strict := newAgent(t, func(c *config.Config) { c.RelaxedRetry = false })
	res = strict.Solve(byName(t, "Basic Problem B-04"))
	assert.False(t, res.Relaxed)
	require.ErrorIs(t, res.Err, semnet.ErrNoConfidentSolution)
}

func TestSolve_FatalIsNotRetried(t *testing.T) {
	a := newAgent(t, nil)

	res := a.Solve(byName(t, "Basic Problem B-05"))
	assert.Equal(t, agent.Skip, res.Answer)
	assert.False(t, res.Relaxed)
	require.ErrorIs(t, res.Err, semnet.ErrIdentityConsistency)

	res = a.Solve(byName(t, "Challenge Problem C-01"))
	assert.Equal(t, agent.Skip, res.Answer)
	require.ErrorIs(t, res.Err, grid.ErrUnsupportedShape)

	res = a.Solve(nil)
	require.ErrorIs(t, res.Err, problem.ErrInvalid)
}

func TestSolve_Logs(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "debug"
	a, err := agent.New(cfg, cfg.Logger(&buf))
	require.NoError(t, err)

	a.Solve(byName(t, "Basic Problem B-01"))
	out := buf.String()
	assert.Contains(t, out, "msg=answered")
	assert.Contains(t, out, "run=")
	assert.Contains(t, out, "catalogue=strict")
}

func TestSolveAll(t *testing.T) {
	a := newAgent(t, nil)
	ps := testdata(t)

	results, err := a.SolveAll(context.Background(), ps)
	require.NoError(t, err)
	require.Len(t, results, len(ps))
	for i, r := range results {
		assert.Equal(t, ps[i].Name, r.Problem, "results keep input order")
	}

	assert.Equal(t, agent.Summary{
		Total:    6,
		Answered: 3,
		Skipped:  3,
		Correct:  3,
	}, agent.Summarize(results))
}

func TestSolveAll_Cancelled(t *testing.T) {
	a := newAgent(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := a.SolveAll(ctx, testdata(t))
	require.ErrorIs(t, err, context.Canceled)
	for _, r := range results {
		assert.True(t, r.Skipped())
		require.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestSummarize_Grading(t *testing.T) {
	s := agent.Summarize([]agent.Result{
		{Answer: 2, Expected: 2},
		{Answer: 1, Expected: 2},
		{Answer: 4},
		{Answer: agent.Skip, Expected: 3},
	})
	assert.Equal(t, agent.Summary{Total: 4, Answered: 3, Skipped: 1, Correct: 1, Incorrect: 1}, s)
}
