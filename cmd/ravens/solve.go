// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/raven/agent"
	"github.com/katalvlaran/raven/problem"
)

func newSolveCmd(opts *options) *cobra.Command {
	var (
		threshold  float64
		relaxed    bool
		workers    int
		jsonOutput bool
	)
	cmd := &cobra.Command{
		Use:   "solve <file|dir>...",
		Short: "Answer every problem found in the given files and directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("threshold") {
				cfg.Threshold = threshold
			}
			if cmd.Flags().Changed("relaxed") {
				cfg.RelaxedRetry = relaxed
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			a, err := agent.New(cfg, opts.log)
			if err != nil {
				return err
			}

			problems, err := loadProblems(args)
			if err != nil {
				return err
			}
			results, err := a.SolveAll(cmd.Context(), problems)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			return writeTable(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 1.0, "minimum score accepted as an answer")
	cmd.Flags().BoolVar(&relaxed, "relaxed", true, "retry unconfident problems with the permissive catalogue")
	cmd.Flags().IntVar(&workers, "workers", 1, "problems solved concurrently")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}

// loadProblems reads every path; directories contribute their YAML files.
func loadProblems(paths []string) ([]*problem.Problem, error) {
	var out []*problem.Problem
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			ps, err := problem.LoadDir(path)
			if err != nil {
				return nil, err
			}
			out = append(out, ps...)
			continue
		}
		p, err := problem.Load(path)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

type resultJSON struct {
	agent.Result
	Error string `json:"error,omitempty"`
}

func writeJSON(w io.Writer, results []agent.Result) error {
	payload := struct {
		Results []resultJSON  `json:"results"`
		Summary agent.Summary `json:"summary"`
	}{
		Results: make([]resultJSON, len(results)),
		Summary: agent.Summarize(results),
	}
	for i, r := range results {
		payload.Results[i].Result = r
		if r.Err != nil {
			payload.Results[i].Error = r.Err.Error()
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func writeTable(w io.Writer, results []agent.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROBLEM\tANSWER\tCONFIDENCE\tEXPECTED\tNOTE")
	for _, r := range results {
		answer := fmt.Sprint(r.Answer)
		if r.Skipped() {
			answer = "skip"
		}
		expected := "-"
		if r.Expected > 0 {
			expected = fmt.Sprint(r.Expected)
		}
		note := ""
		switch {
		case r.Err != nil:
			note = r.Err.Error()
		case r.Relaxed:
			note = "permissive"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n", r.Problem, answer, r.Confidence, expected, note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := agent.Summarize(results)
	_, err := fmt.Fprintf(w, "\n%d problems: %d answered (%d correct, %d incorrect), %d skipped\n",
		s.Total, s.Answered, s.Correct, s.Incorrect, s.Skipped)
	return err
}
