// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-mentor/internal/career"
	"github.com/jonathan/career-mentor/internal/linkcheck"
	"github.com/jonathan/career-mentor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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
	fmt.Fprintf(p.out, "│ %s │\n", pad(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad right-pads s to the inner box width, counting runes rather than bytes.
func pad(s string) string {
	n := boxWidth - 4 - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-3]) + "..."
}

// PrintRoadmapSummary outputs the domain, the phases with their counts, and the career paths.
func (p *Printer) PrintRoadmapSummary(roadmap *types.CareerRoadmap) {
	if roadmap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Domain:   %s\n", roadmap.Domain))
	sb.WriteString(fmt.Sprintf("Phases:   %d\n", len(roadmap.Roadmap)))
	sb.WriteString("\n")

	for _, phase := range roadmap.Roadmap {
		sb.WriteString(fmt.Sprintf("%s\n", phase.Phase))
		sb.WriteString(fmt.Sprintf("  %d skills, %d free, %d paid, %d projects, %d videos\n",
			len(phase.Skills), len(phase.FreeResources), len(phase.PaidResources),
			len(phase.Projects), len(phase.YouTubeVideos)))
		if len(phase.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("  Skills: %s\n", truncate(strings.Join(phase.Skills, ", "), 40)))
		}
	}

	if len(roadmap.CareerPaths) > 0 {
		sb.WriteString("\nCareer Paths:\n")
		count := min(len(roadmap.CareerPaths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", roadmap.CareerPaths[i]))
		}
		if len(roadmap.CareerPaths) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(roadmap.CareerPaths)-maxItemsToShow))
		}
	}

	p.printBox("CAREER ROADMAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDomainScores outputs the keyword score of every domain and marks the chosen one.
// Zero scores are summarized on one line.
func (p *Printer) PrintDomainScores(scores []career.DomainScore, chosen string) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	zero := 0
	for _, s := range scores {
		if s.Score == 0 && s.Domain != chosen {
			zero++
			continue
		}
		marker := " "
		if s.Domain == chosen {
			marker = "→"
		}
		sb.WriteString(fmt.Sprintf("%s %-40s %3d\n", marker, s.Domain, s.Score))
	}
	if zero > 0 {
		sb.WriteString(fmt.Sprintf("  (%d domains scored 0)\n", zero))
	}

	p.printBox("DOMAIN SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLinkReport outputs the link check totals and every broken link.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLinkReport(report *linkcheck.Report) {
	if report == nil {
		return
	}
	if report.Broken == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad(fmt.Sprintf("✅ ALL %d LINKS OK", report.Checked)))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Checked %d links, %d broken:\n\n", report.Checked, report.Broken))

	broken := report.BrokenResults()
	for i, r := range broken {
		sb.WriteString(fmt.Sprintf("⚠ %s / %s\n", r.Domain, r.Phase))
		sb.WriteString(fmt.Sprintf("  %s\n", r.URL))
		reason := r.Error
		if reason == "" {
			reason = fmt.Sprintf("HTTP %d", r.StatusCode)
		}
		sb.WriteString(fmt.Sprintf("  %s\n", reason))
		if i < len(broken)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("BROKEN LINKS", strings.TrimSuffix(sb.String(), "\n"))
}
