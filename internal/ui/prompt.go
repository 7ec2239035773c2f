// Package ui implements the terminal input boundary: it parses and
// validates raw operator input and renders engine output. The engine
// never receives raw text.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"velocimetry-platform/internal/models"
)

// Prompter reads operator input line by line, re-prompting until the
// input parses and satisfies its constraint.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Line prompts once and returns the trimmed input.
// Returns io.EOF when the input stream ends.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Float re-prompts until a parseable number is entered.
func (p *Prompter) Float(label string) (float64, error) {
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fmt.Fprintf(p.out, "invalid number %q, try again\n", s)
			continue
		}
		return v, nil
	}
}

// PositiveFloat re-prompts until the number is strictly positive.
func (p *Prompter) PositiveFloat(label string) (float64, error) {
	for {
		v, err := p.Float(label)
		if err != nil {
			return 0, err
		}
		if v <= 0 {
			fmt.Fprintf(p.out, "value must be positive, try again\n")
			continue
		}
		return v, nil
	}
}

// NonNegativeFloat re-prompts until the number is zero or greater.
func (p *Prompter) NonNegativeFloat(label string) (float64, error) {
	for {
		v, err := p.Float(label)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			fmt.Fprintf(p.out, "value cannot be negative, try again\n")
			continue
		}
		return v, nil
	}
}

// Unit shows the unit menu and re-prompts until a selection parses,
// accepting either the menu number or the unit label.
func (p *Prompter) Unit(label string) (models.FlowUnit, error) {
	units := models.FlowUnits()
	for i, u := range units {
		fmt.Fprintf(p.out, "  %d) %-6s %s\n", i+1, u.String(), u.Description())
	}
	for {
		s, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		if n, convErr := strconv.Atoi(s); convErr == nil && n >= 1 && n <= len(units) {
			return units[n-1], nil
		}
		if u, parseErr := models.ParseFlowUnit(s); parseErr == nil {
			return u, nil
		}
		fmt.Fprintf(p.out, "pick 1-%d or a unit label, try again\n", len(units))
	}
}

// PipeSpec prompts for the outer diameter and wall thickness until they
// describe a valid pipe.
func (p *Prompter) PipeSpec() (*models.PipeSpec, error) {
	for {
		outer, err := p.PositiveFloat("Outer diameter (mm)")
		if err != nil {
			return nil, err
		}
		wall, err := p.NonNegativeFloat("Wall thickness (mm)")
		if err != nil {
			return nil, err
		}
		pipe, err := models.NewPipeSpec(outer, wall)
		if err != nil {
			fmt.Fprintf(p.out, "%v, try again\n", err)
			continue
		}
		return pipe, nil
	}
}
