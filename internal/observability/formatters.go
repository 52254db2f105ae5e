// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/princejain-2004/RESUME-EXPERT/internal/completion"
	"github.com/princejain-2004/RESUME-EXPERT/internal/types"
	"github.com/princejain-2004/RESUME-EXPERT/internal/wizard"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the width of a contribution bar
	barWidth = 20
)

// Printer writes boxed, human-readable reports
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		r := []rune(s)
		return string(r[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-n)
}

// bar draws filled/total as a fixed-width bar.
func bar(points, weight float64) string {
	filled := 0
	if weight > 0 {
		filled = int(points / weight * barWidth)
	}
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// PrintScore outputs a resume's completion score. With a breakdown, each
// category's share is listed as well.
func (p *Printer) PrintScore(name string, score int, breakdown []completion.Contribution) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Completion: %d%%", score))
	if len(breakdown) > 0 {
		sb.WriteString("\n\n")
		for i, c := range breakdown {
			entries := "-"
			if c.Total > 0 {
				entries = fmt.Sprintf("%d/%d", c.Filled, c.Total)
			}
			sb.WriteString(fmt.Sprintf("%-10s %s %5.1f/%-3.0f %s", c.Category, bar(c.Points, c.Weight), c.Points, c.Weight, entries))
			if i < len(breakdown)-1 {
				sb.WriteString("\n")
			}
		}
	}
	p.printBox("COMPLETION: "+name, sb.String())
}

// PrintValidation outputs the result of validating one step.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(step wizard.Step, errs types.ValidationResult) {
	if errs.OK() {
		fmt.Fprintf(p.out, "✅ %s: ok\n", step)
		return
	}
	var sb strings.Builder
	for i, e := range errs {
		sb.WriteString("⚠ " + e)
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("STEP %d/%d: %s", step.Index()+1, wizard.StepCount, strings.ToUpper(step.String())), sb.String())
}

// PrintValidationReport outputs every step's validation result in step
// order. Steps missing from failures passed.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationReport(failures map[wizard.Step]types.ValidationResult) {
	if len(failures) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ ALL STEPS PASS", boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}
	for step := wizard.First; step <= wizard.Last; step++ {
		p.PrintValidation(step, failures[step])
	}
}

// PrintSteps outputs the wizard's step table.
func (p *Printer) PrintSteps(defs []wizard.Definition) {
	var sb strings.Builder
	for i, def := range defs {
		sb.WriteString(fmt.Sprintf("%d. %-15s %-24s %3d%%", def.Index+1, def.Name, def.Title, def.Progress))
		if i < len(defs)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("WIZARD STEPS", sb.String())
}
