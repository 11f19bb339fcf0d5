// SPDX-License-Identifier: MIT

// Package agent answers Raven's problems with the semnet solver.
//
// Each problem is first solved with the strict catalogue. When no candidate
// is confident enough and relaxed retries are enabled, a fresh network is
// built with the permissive catalogue. Any failure is reported as Skip.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/raven/config"
	"github.com/katalvlaran/raven/problem"
	"github.com/katalvlaran/raven/semnet"
	"github.com/katalvlaran/raven/transform"
)

// Skip is the answer reported for a problem the agent declines.
const Skip = -1

// Result is the outcome of one problem.
type Result struct {
	Problem    string  `json:"problem"`
	Answer     int     `json:"answer"`
	Confidence float64 `json:"confidence"`
	// Expected is the known answer, 0 when the problem carries none.
	Expected int `json:"expected,omitempty"`
	// Relaxed is set when the permissive catalogue was tried.
	Relaxed bool  `json:"relaxed,omitempty"`
	Err     error `json:"-"`
}

// Skipped reports whether the agent declined to answer.
func (r Result) Skipped() bool { return r.Answer == Skip }

// Correct reports whether the answer matches a known expected answer.
func (r Result) Correct() bool { return r.Expected > 0 && r.Answer == r.Expected }

// Agent solves problems under one configuration. It is safe for concurrent
// use; every solve builds its own networks.
type Agent struct {
	cfg config.Config
	log *slog.Logger
}

// New validates cfg and returns an Agent. A nil logger discards output.
func New(cfg config.Config, logger *slog.Logger) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Agent{cfg: cfg, log: logger}, nil
}

// Solve answers p. It never panics; failures come back as Skip with Err set.
func (a *Agent) Solve(p *problem.Problem) Result {
	if p == nil {
		return Result{Answer: Skip, Err: fmt.Errorf("%w: nil problem", problem.ErrInvalid)}
	}
	res := Result{Problem: p.Name, Answer: Skip, Expected: p.Answer}

	ans, err := a.attempt(p, "strict", transform.Default())
	if errors.Is(err, semnet.ErrNoConfidentSolution) && a.cfg.RelaxedRetry {
		res.Relaxed = true
		ans, err = a.attempt(p, "permissive", transform.Permissive())
	}
	if err != nil {
		res.Err = err
		a.log.Info("skipped", "problem", p.Name, "relaxed", res.Relaxed, "err", err)
		return res
	}

	res.Answer, res.Confidence = ans.Candidate, ans.Confidence
	a.log.Info("answered", "problem", p.Name, "answer", res.Answer,
		"confidence", res.Confidence, "relaxed", res.Relaxed)

	return res
}

func (a *Agent) attempt(p *problem.Problem, mode string, cat *transform.Catalogue) (semnet.Answer, error) {
	log := a.log.With("run", uuid.NewString(), "problem", p.Name, "catalogue", mode)
	n, err := semnet.NewNetwork(p,
		semnet.WithCatalogue(cat),
		semnet.WithThreshold(a.cfg.Threshold),
		semnet.WithLogger(log),
	)
	if err != nil {
		return semnet.Answer{}, err
	}
	ans, err := n.Solve()
	if err != nil {
		log.Debug("attempt failed", "stage", n.Stage().String(), "err", err)
		return semnet.Answer{}, err
	}
	return ans, nil
}

// SolveAll answers problems concurrently, at most cfg.Workers at a time.
// Results are in input order. When ctx is cancelled the remaining problems
// are skipped with the context error and SolveAll returns that error.
func (a *Agent) SolveAll(ctx context.Context, problems []*problem.Problem) ([]Result, error) {
	out := make([]Result, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)

	for i, p := range problems {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i] = Result{Answer: Skip, Err: err}
				if p != nil {
					out[i].Problem, out[i].Expected = p.Name, p.Answer
				}
				return err
			}
			out[i] = a.Solve(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, nil
}

// Summary tallies a batch of results.
type Summary struct {
	Total     int `json:"total"`
	Answered  int `json:"answered"`
	Skipped   int `json:"skipped"`
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// Summarize counts answered, skipped and graded results. Only results with
// a known expected answer are graded.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Skipped() {
			s.Skipped++
			continue
		}
		s.Answered++
		if r.Expected == 0 {
			continue
		}
		if r.Correct() {
			s.Correct++
		} else {
			s.Incorrect++
		}
	}
	return s
}
