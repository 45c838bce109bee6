// Package render prints plans, reports and listings for the CLI.
//
// Styling uses lipgloss with a renderer bound to the output writer, so
// colors are dropped automatically when the output is not a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/fileorg/internal/domain"
)

type styles struct {
	header  lipgloss.Style
	success lipgloss.Style
	skipped lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		success: r.NewStyle().Foreground(lipgloss.Color("78")),
		skipped: r.NewStyle().Foreground(lipgloss.Color("214")),
		faint:   r.NewStyle().Faint(true),
	}
}

// Plan prints each planned transfer in order.
func Plan(w io.Writer, plan domain.Plan) {
	s := newStyles(w)
	fmt.Fprintln(w, s.header.Render(fmt.Sprintf("Plan: %s -> %s", plan.Origin, plan.Destination)))

	width := sourceWidth(plan.Transfers)
	for i, t := range plan.Transfers {
		dst := t.Destination
		if dst == "" {
			dst = s.faint.Render("(empty name)")
		}
		fmt.Fprintf(w, "  %4d  %-*s  %s  %s\n", i, width, t.Source, s.faint.Render("->"), dst)
	}
}

// Report prints the outcome of every transfer followed by a summary.
func Report(w io.Writer, report domain.Report) {
	s := newStyles(w)

	width := 0
	for _, r := range report.Results {
		width = max(width, len(r.Source))
	}
	for _, r := range report.Results {
		outcome := fmt.Sprintf("%-20s", r.Outcome)
		if r.Outcome.Skipped() {
			outcome = s.skipped.Render(outcome)
		} else {
			outcome = s.success.Render(outcome)
		}
		line := fmt.Sprintf("  %s %-*s  %s  %s", outcome, width, r.Source, s.faint.Render("->"), r.Destination)
		if r.Replaced {
			line += s.faint.Render(" (replaced)")
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, s.header.Render(Summary(report)))
}

// Summary returns a one-line count of the report's outcomes.
func Summary(report domain.Report) string {
	parts := []string{fmt.Sprintf("%d moved", report.Count(domain.OutcomeMoved))}
	if report.Duplicate {
		parts = []string{fmt.Sprintf("%d duplicated", report.Count(domain.OutcomeDuplicated))}
	}
	parts = append(parts, fmt.Sprintf("%d skipped", report.Skipped()))
	return strings.Join(parts, ", ")
}

// Status returns the status line shown after a run.
func Status(report domain.Report) string {
	verb := "Moved"
	if report.Duplicate {
		verb = "Duplicated"
	}
	return fmt.Sprintf("%s files from %s to %s", verb, report.Origin, report.Destination)
}

// Listing prints the files of a directory.
func Listing(w io.Writer, dir string, names []string) {
	s := newStyles(w)
	fmt.Fprintln(w, s.header.Render(fmt.Sprintf("%s (%d files)", dir, len(names))))
	for _, n := range names {
		fmt.Fprintf(w, "  %s\n", n)
	}
}

func sourceWidth(ts []domain.Transfer) int {
	width := 0
	for _, t := range ts {
		width = max(width, len(t.Source))
	}
	return width
}
