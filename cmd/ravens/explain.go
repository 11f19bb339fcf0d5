// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/raven/problem"
	"github.com/katalvlaran/raven/semnet"
	"github.com/katalvlaran/raven/transform"
)

func newExplainCmd(opts *options) *cobra.Command {
	var permissive bool
	cmd := &cobra.Command{
		Use:   "explain <file>",
		Short: "Show the inferred transformations and the synthesized cell of one problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := problem.Load(args[0])
			if err != nil {
				return err
			}
			cat := transform.Default()
			if permissive {
				cat = transform.Permissive()
			}
			n, err := semnet.NewNetwork(p,
				semnet.WithCatalogue(cat),
				semnet.WithThreshold(opts.cfg.Threshold),
				semnet.WithLogger(opts.log),
			)
			if err != nil {
				return err
			}
			return explain(cmd.OutOrStdout(), p, n)
		},
	}
	cmd.Flags().BoolVar(&permissive, "permissive", false, "use the permissive shape-changed rule")

	return cmd
}

func explain(w io.Writer, p *problem.Problem, n *semnet.Network) error {
	fmt.Fprintf(w, "%s (%s)\n", p.Name, p.Type)
	if err := n.SeedIdentities(); err != nil {
		return err
	}
	if err := n.GenerateTransformations(); err != nil {
		return err
	}

	top := n.Topology()
	for _, name := range top.Cells() {
		fmt.Fprintf(w, "\ncell %s\n", name)
		for _, node := range n.Cell(name).Nodes() {
			fmt.Fprintf(w, "  %v\n", node)
			for _, dir := range []transform.Direction{transform.Row, transform.Column} {
				if rec, ok := node.Transformation(dir); ok {
					fmt.Fprintf(w, "    %-6s → %s\n", dir, rec)
				}
			}
		}
	}

	sol, err := n.GenerateSolutionCell()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nsynthesized %s\n", sol.Name)
	for _, node := range sol.Nodes() {
		fmt.Fprintf(w, "  %v\n", node)
	}

	scores, err := n.Scores()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "\nscores")
	for _, s := range scores {
		fmt.Fprintf(w, "  %d: %.2f\n", s.Candidate, s.Value)
	}

	ans, err := n.Solve()
	switch {
	case errors.Is(err, semnet.ErrNoConfidentSolution):
		fmt.Fprintln(w, "\nanswer: none confident")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(w, "\nanswer: %d (confidence %.2f)\n", ans.Candidate, ans.Confidence)

	return nil
}
