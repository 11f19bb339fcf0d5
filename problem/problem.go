// SPDX-License-Identifier: MIT

// Package problem is the input boundary of the solver: a verbal Raven's
// matrix made of named figures, each a list of named objects carrying string
// attributes.
//
// Problems are stored as YAML documents:
//
//	name: Basic Problem B-01
//	type: 2x2
//	figures:
//	  A:
//	    objects:
//	      - name: a
//	        attributes: {shape: square, fill: "yes", size: large}
//	  "1":
//	    objects: [...]
//
// Grid figures are named by letter (A, B, C, ...); candidate answers by
// number (1, 2, ...).
package problem

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"unicode"
)

var (
	// ErrInvalid indicates a structurally malformed problem.
	ErrInvalid = errors.New("problem: invalid problem")
	// ErrMissingFigure indicates a figure required by the grid is absent.
	ErrMissingFigure = errors.New("problem: missing figure")
)

// Object is one shape inside a figure.
type Object struct {
	Name       string            `yaml:"name" json:"name"`
	Attributes map[string]string `yaml:"attributes" json:"attributes"`
}

// Figure is one grid cell or candidate answer.
type Figure struct {
	Name    string    `yaml:"-" json:"name"`
	Objects []*Object `yaml:"objects" json:"objects"`
}

// Problem is a single matrix to solve.
type Problem struct {
	Name    string             `yaml:"name" json:"name"`
	Type    string             `yaml:"type" json:"type"`
	Figures map[string]*Figure `yaml:"figures" json:"figures"`
	// Answer is the expected candidate, when known; 0 otherwise.
	Answer int `yaml:"answer,omitempty" json:"answer,omitempty"`
}

// Figure returns the figure called name.
func (p *Problem) Figure(name string) (*Figure, error) {
	f, ok := p.Figures[name]
	if !ok || f == nil {
		return nil, fmt.Errorf("%w: %q in %q", ErrMissingFigure, name, p.Name)
	}
	return f, nil
}

// GridFigures returns the names of letter-named figures, sorted.
func (p *Problem) GridFigures() []string {
	var out []string
	for name := range p.Figures {
		if isLetterName(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Candidates returns the numbers of candidate figures in ascending order.
func (p *Problem) Candidates() []int {
	var out []int
	for name := range p.Figures {
		if n, err := strconv.Atoi(name); err == nil && n > 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// Validate checks names, types and per-figure object uniqueness.
func (p *Problem) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalid)
	}
	if p.Type == "" {
		return fmt.Errorf("%w: %q has no type", ErrInvalid, p.Name)
	}
	if len(p.Figures) == 0 {
		return fmt.Errorf("%w: %q has no figures", ErrInvalid, p.Name)
	}
	for name, f := range p.Figures {
		if f == nil {
			return fmt.Errorf("%w: %q figure %q is empty", ErrInvalid, p.Name, name)
		}
		if !isLetterName(name) {
			if n, err := strconv.Atoi(name); err != nil || n <= 0 {
				return fmt.Errorf("%w: %q figure name %q is neither a grid letter nor a candidate number",
					ErrInvalid, p.Name, name)
			}
		}
		seen := make(map[string]struct{}, len(f.Objects))
		for i, o := range f.Objects {
			if o == nil || o.Name == "" {
				return fmt.Errorf("%w: %q figure %q object %d has no name", ErrInvalid, p.Name, name, i)
			}
			if _, dup := seen[o.Name]; dup {
				return fmt.Errorf("%w: %q figure %q repeats object %q", ErrInvalid, p.Name, name, o.Name)
			}
			seen[o.Name] = struct{}{}
		}
	}
	if p.Answer != 0 {
		if _, ok := p.Figures[strconv.Itoa(p.Answer)]; !ok {
			return fmt.Errorf("%w: %q answer %d is not a candidate", ErrInvalid, p.Name, p.Answer)
		}
	}

	return nil
}

func isLetterName(name string) bool {
	if len(name) != 1 {
		return false
	}
	r := rune(name[0])
	return unicode.IsUpper(r)
}
