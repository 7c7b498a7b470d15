package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driven"
	"github.com/custodia-labs/drivetables/internal/core/ports/driving"
	"github.com/custodia-labs/drivetables/internal/logger"
)

// Ensure Aggregator implements the interface.
var _ driving.Merger = (*Aggregator)(nil)

// Aggregator extracts a batch of local files and writes their records
// to a single spreadsheet.
type Aggregator struct {
	extractor driving.Extractor
	writer    driven.SpreadsheetWriter
	output    string
	reporter  driving.ProgressReporter
}

// NewAggregator creates an aggregator that writes to output.
// The reporter is optional.
func NewAggregator(
	extractor driving.Extractor,
	writer driven.SpreadsheetWriter,
	output string,
	reporter driving.ProgressReporter,
) *Aggregator {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Aggregator{
		extractor: extractor,
		writer:    writer,
		output:    output,
		reporter:  reporter,
	}
}

// Merge extracts every path in order. If any file yielded records, the
// concatenation (file order, then record order) replaces the output file.
// Otherwise nothing is written and the summary reports Written == false.
func (a *Aggregator) Merge(ctx context.Context, paths []string) (*domain.MergeSummary, error) {
	summary := &domain.MergeSummary{
		Output:  a.output,
		Results: make([]domain.ExtractionResult, 0, len(paths)),
	}

	logger.Section("Extract")

	var merged []domain.Record
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := a.extractor.Extract(ctx, path)
		summary.Results = append(summary.Results, result)
		a.reporter.Extracted(result)

		if result.HasRecords() {
			merged = append(merged, result.Records...)
		}
	}

	if len(merged) == 0 {
		logger.Info("No records extracted from %d files", len(paths))
		return summary, nil
	}

	if err := a.writer.Write(ctx, a.output, domain.OutputHeader(), merged); err != nil {
		return summary, fmt.Errorf("write output: %w", err)
	}
	summary.Written = true
	summary.Rows = len(merged)

	logger.Info("Wrote %d rows to %s", len(merged), a.output)
	return summary, nil
}
