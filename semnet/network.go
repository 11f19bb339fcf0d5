// SPDX-License-Identifier: MIT

package semnet

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/raven/grid"
	"github.com/katalvlaran/raven/problem"
	"github.com/katalvlaran/raven/transform"
)

// Stage is the position of a Network in its solving lifecycle.
type Stage int

const (
	Initialized Stage = iota
	IdentitiesSeeded
	TransformationsGenerated
	SolutionSynthesized
	Solved
	Unconfident
)

var stageNames = [...]string{
	Initialized:              "initialized",
	IdentitiesSeeded:         "identities seeded",
	TransformationsGenerated: "transformations generated",
	SolutionSynthesized:      "solution synthesized",
	Solved:                   "solved",
	Unconfident:              "unconfident",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Stage(" + strconv.Itoa(int(s)) + ")"
	}
	return stageNames[s]
}

// Score is the CompareWith result of one candidate.
type Score struct {
	Candidate int
	Value     float64
}

// Answer is a confident solution.
type Answer struct {
	Candidate  int
	Confidence float64
}

// Network owns every cell of one problem and runs the solving stages.
type Network struct {
	problem    *problem.Problem
	topology   *grid.Topology
	cfg        networkConfig
	cells      map[string]*Cell
	candidates map[int]*Cell
	order      []int // candidate numbers, ascending
	solution   *Cell
	stage      Stage
}

// NewNetwork builds the cells of p. The grid topology is resolved first, so
// an unsupported shape fails before any cell is built.
func NewNetwork(p *problem.Problem, opts ...Option) (*Network, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", problem.ErrInvalid)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	top, err := grid.For(p.Type)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}

	n := &Network{
		problem:    p,
		topology:   top,
		cfg:        cfg,
		cells:      make(map[string]*Cell),
		candidates: make(map[int]*Cell),
		stage:      Initialized,
	}
	for _, name := range top.Cells() {
		fig, err := p.Figure(name)
		if err != nil {
			return nil, err
		}
		n.cells[name] = NewCell(name, fig, cfg.catalogue)
	}
	for _, num := range p.Candidates() {
		fig, err := p.Figure(strconv.Itoa(num))
		if err != nil {
			return nil, err
		}
		n.candidates[num] = NewCell(fig.Name, fig, cfg.catalogue)
		n.order = append(n.order, num)
	}
	if len(n.order) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCandidates, p.Name)
	}

	return n, nil
}

// Stage returns the current lifecycle stage.
func (n *Network) Stage() Stage { return n.stage }

// Topology returns the grid tables in use.
func (n *Network) Topology() *grid.Topology { return n.topology }

// Cell returns the problem cell called name, or nil.
func (n *Network) Cell(name string) *Cell { return n.cells[name] }

// Candidate returns the cell of candidate num, or nil.
func (n *Network) Candidate(num int) *Cell { return n.candidates[num] }

// Solution returns the synthesized cell, or nil before GenerateSolutionCell.
func (n *Network) Solution() *Cell { return n.solution }

func (n *Network) expect(s Stage) error {
	if n.stage != s {
		return fmt.Errorf("%w: at %q, need %q", ErrStage, n.stage, s)
	}
	return nil
}

func (n *Network) advance(s Stage) {
	n.cfg.logger.Debug("stage", "problem", n.problem.Name, "from", n.stage.String(), "to", s.String())
	n.stage = s
}

// SeedIdentities numbers the objects of the anchor cell.
func (n *Network) SeedIdentities() error {
	if err := n.expect(Initialized); err != nil {
		return err
	}
	if err := n.cells[n.topology.Anchor].SeedIdentities(); err != nil {
		return err
	}
	n.advance(IdentitiesSeeded)
	return nil
}

// GenerateTransformations walks every group that does not contain the target
// cell and links consecutive cells pairwise.
func (n *Network) GenerateTransformations() error {
	if err := n.expect(IdentitiesSeeded); err != nil {
		return err
	}
	for _, g := range n.topology.ActiveGroups() {
		for i := 1; i < len(g.Cells); i++ {
			prev, cur := n.cells[g.Cells[i-1]], n.cells[g.Cells[i]]
			if err := n.identify(prev, cur, g.Direction); err != nil {
				return fmt.Errorf("%s %s→%s: %w", g.Direction, prev.Name, cur.Name, err)
			}
		}
	}
	n.advance(TransformationsGenerated)
	return nil
}

// identify links every identified node of prev to the unidentified node of
// cur whose change is explained by the earliest catalogue rule. Ties go to
// the earlier node of cur.
func (n *Network) identify(prev, cur *Cell, dir transform.Direction) error {
	for _, src := range prev.Nodes() {
		if !src.Identified() {
			continue
		}
		var (
			best    *Node
			bestRec transform.Record
			bestIdx = -1
		)
		for _, dst := range cur.Nodes() {
			if dst.Identified() {
				continue
			}
			rec, idx, ok, err := src.Explain(dst, dir)
			if err != nil {
				return err
			}
			if ok && (bestIdx < 0 || idx < bestIdx) {
				best, bestRec, bestIdx = dst, rec, idx
			}
		}
		if best == nil {
			n.cfg.logger.Debug("unexplained object",
				"problem", n.problem.Name, "cell", prev.Name, "node", src.Label, "direction", string(dir))
			continue
		}
		src.link(best, bestRec, dir)
		n.cfg.logger.Debug("linked",
			"problem", n.problem.Name, "direction", string(dir),
			"from", prev.Name+"."+src.Label, "to", cur.Name+"."+best.Label,
			"id", src.ID, "transformation", bestRec.String())
	}
	return nil
}

// GenerateSolutionCell replays each propagation onto its application cell
// and returns the synthesized target cell.
func (n *Network) GenerateSolutionCell() (*Cell, error) {
	if err := n.expect(TransformationsGenerated); err != nil {
		return nil, err
	}
	sol := NewCell(n.topology.Target, nil, n.cfg.catalogue)
	for _, p := range n.topology.Propagations {
		src, app := n.cells[p.Source], n.cells[p.Apply]
		appByID := app.NodesByID()
		for _, sn := range src.Nodes() {
			if !sn.Identified() {
				continue
			}
			rec, ok := sn.Transformation(p.Direction)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s (id %d) has no %s transformation",
					ErrIdentityConsistency, src.Name, sn.Label, sn.ID, p.Direction)
			}
			an, ok := appByID[sn.ID]
			if !ok {
				n.cfg.logger.Debug("object absent from application cell",
					"problem", n.problem.Name, "cell", app.Name, "id", sn.ID)
				continue
			}
			existing := sol.NodesByID()[sn.ID]
			out, err := an.ApplyRecord(rec, p.Direction, existing)
			if err != nil {
				return nil, fmt.Errorf("%s from %s: %w", p.Direction, app.Name, err)
			}
			if existing == nil {
				sol.AddNode(out)
			}
		}
	}
	n.solution = sol
	n.advance(SolutionSynthesized)
	return sol, nil
}

// Scores compares the synthesized cell with every candidate, in ascending
// candidate order.
func (n *Network) Scores() ([]Score, error) {
	if n.solution == nil {
		return nil, fmt.Errorf("%w: at %q, need %q", ErrStage, n.stage, SolutionSynthesized)
	}
	out := make([]Score, 0, len(n.order))
	for _, num := range n.order {
		out = append(out, Score{Candidate: num, Value: n.solution.CompareWith(n.candidates[num])})
	}
	return out, nil
}

// Solve runs any remaining stages and picks the best candidate. Ties go to
// the lowest candidate number. A best score below the threshold yields
// ErrNoConfidentSolution and no answer.
func (n *Network) Solve() (Answer, error) {
	if n.stage == Initialized {
		if err := n.SeedIdentities(); err != nil {
			return Answer{}, err
		}
	}
	if n.stage == IdentitiesSeeded {
		if err := n.GenerateTransformations(); err != nil {
			return Answer{}, err
		}
	}
	if n.stage == TransformationsGenerated {
		if _, err := n.GenerateSolutionCell(); err != nil {
			return Answer{}, err
		}
	}
	if err := n.expect(SolutionSynthesized); err != nil {
		return Answer{}, err
	}

	scores, err := n.Scores()
	if err != nil {
		return Answer{}, err
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Value > best.Value {
			best = s
		}
	}
	if best.Value < n.cfg.threshold {
		n.advance(Unconfident)
		return Answer{}, fmt.Errorf("%w: %s best candidate %d scored %.2f < %.2f",
			ErrNoConfidentSolution, n.problem.Name, best.Candidate, best.Value, n.cfg.threshold)
	}
	n.advance(Solved)
	n.cfg.logger.Debug("solved", slog.String("problem", n.problem.Name),
		slog.Int("answer", best.Candidate), slog.Float64("confidence", best.Value))

	return Answer{Candidate: best.Candidate, Confidence: best.Value}, nil
}
