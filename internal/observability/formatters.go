// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-intake/internal/db"
	"github.com/jonathan/resume-intake/internal/pipeline"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxRowsToShow is the default number of rows to display in summaries
	maxRowsToShow = 10
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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBatchReport outputs a human-readable summary of a processed batch.
func (p *Printer) PrintBatchReport(result *pipeline.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Rows:       %d\n", len(result.Rows)))
	sb.WriteString(fmt.Sprintf("Candidates: %d\n", len(result.Totals)))
	sb.WriteString(fmt.Sprintf("Skipped:    %d\n", len(result.Errors)))
	sb.WriteString("\n")

	count := min(len(result.Rows), maxRowsToShow)
	for _, row := range result.Rows[:count] {
		sb.WriteString(fmt.Sprintf("• %s | %s | %s | %d mo (total %d)\n",
			valueOr(row.Name, "<no name>"), valueOr(row.Company, "-"),
			valueOr(row.Duration, "-"), row.Parsed.Months, row.TotalMonths))
	}
	if len(result.Rows) > maxRowsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more rows\n", len(result.Rows)-maxRowsToShow))
	}

	p.printBox("Batch Report", strings.TrimRight(sb.String(), "\n"))
}

// PrintTotals outputs the per-candidate aggregate totals in stable key order.
func (p *Printer) PrintTotals(totals map[string]int) {
	if len(totals) == 0 {
		return
	}

	mobiles := make([]string, 0, len(totals))
	for mobile := range totals {
		mobiles = append(mobiles, mobile)
	}
	sort.Strings(mobiles)

	var sb strings.Builder
	for _, mobile := range mobiles {
		sb.WriteString(fmt.Sprintf("%s: %d months\n", mobile, totals[mobile]))
	}
	p.printBox("Total Experience", strings.TrimRight(sb.String(), "\n"))
}

// PrintResumes outputs stored resume records, one line per record.
func (p *Printer) PrintResumes(title string, rows []db.Resume) {
	if len(rows) == 0 {
		p.printBox(title, "No records found.")
		return
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%s | %s | %s | %s | %d mo (total %d) | %s\n",
			valueOr(row.Mobile, "-"), valueOr(row.Name, "<no name>"),
			valueOr(row.Company, "-"), valueOr(row.Role, "-"),
			row.DurationMonths, row.TotalMonths,
			row.CreatedAt.Format("2006-01-02")))
	}
	sb.WriteString(fmt.Sprintf("\n%d record(s)", len(rows)))
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}

// PrintErrorLog outputs the per-document failures of a batch.
func (p *Printer) PrintErrorLog(result *pipeline.Result) {
	if result == nil || len(result.Errors) == 0 {
		return
	}

	var sb strings.Builder
	for _, entry := range result.Errors {
		sb.WriteString(fmt.Sprintf("%s [%s] %s\n", entry.Source, entry.Kind, entry.Message))
	}
	p.printBox("Error Log", strings.TrimRight(sb.String(), "\n"))
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
