package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driving"
)

// Ensure consoleReporter implements the interface.
var _ driving.ProgressReporter = (*consoleReporter)(nil)

// consoleStyles are the styles used for user-facing output.
type consoleStyles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
}

// newConsoleStyles renders for w, so colour is dropped when w is not a
// terminal.
func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)
	return consoleStyles{
		Success: r.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("#EAB308")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Bold:    r.NewStyle().Bold(true),
	}
}

// consoleReporter prints pipeline progress.
type consoleReporter struct {
	out    io.Writer
	styles consoleStyles
}

func newConsoleReporter(out io.Writer) *consoleReporter {
	return &consoleReporter{out: out, styles: newConsoleStyles(out)}
}

func (r *consoleReporter) printf(style lipgloss.Style, format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, style.Render(fmt.Sprintf(format, args...)))
}

func (r *consoleReporter) Listed(files []domain.RemoteFile) {
	r.printf(r.styles.Bold, "Found %d PDFs in folder.", len(files))
}

func (r *consoleReporter) Fetched(file domain.RemoteFile, _ string) {
	r.printf(r.styles.Muted, "Downloaded: %s", file.Name)
}

func (r *consoleReporter) FetchFailed(file domain.RemoteFile, err error) {
	r.printf(r.styles.Warning, "Skipped download of %s: %v", file.Name, err)
}

func (r *consoleReporter) Extracted(result domain.ExtractionResult) {
	switch result.Status() {
	case domain.StatusExtracted:
		r.printf(r.styles.Muted, "Extracted %d rows from %s", len(result.Records), result.SourceFile)
	case domain.StatusEmpty:
		r.printf(r.styles.Muted, "No data rows in %d tables of %s", result.Tables, result.SourceFile)
	case domain.StatusNoTables:
		r.printf(r.styles.Muted, "No tables found in %s", result.SourceFile)
	case domain.StatusFailed:
		r.printf(r.styles.Error, "Failed: %s", result.SourceFile)
	}
}

// Summary prints the outcome of a merge.
func (r *consoleReporter) Summary(summary *domain.MergeSummary) {
	if failed := summary.Failed(); len(failed) > 0 {
		r.printf(r.styles.Warning, "%d of %d files could not be processed.", len(failed), len(summary.Results))
	}
	if !summary.Written {
		r.printf(r.styles.Warning, "No valid data found in PDFs.")
		return
	}
	r.printf(r.styles.Success, "Saved merged Excel to %s", summary.Output)
	r.printf(r.styles.Muted, "%d rows from %d files", summary.Rows, len(summary.Results)-len(summary.Failed()))
}
