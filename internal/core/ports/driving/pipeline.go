package driving

import (
	"context"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

// Pipeline runs the end-to-end batch: list, fetch, extract, merge.
type Pipeline interface {
	// Run processes every matching file in the configured folder.
	Run(ctx context.Context) (*domain.MergeSummary, error)
}

// Merger aggregates local files into the merged spreadsheet.
type Merger interface {
	// Merge extracts each path in order and writes the merged output when
	// at least one file yielded records.
	Merge(ctx context.Context, paths []string) (*domain.MergeSummary, error)
}

// Extractor turns one local file into normalised records.
type Extractor interface {
	// Extract never returns an error; failures are carried in the result.
	Extract(ctx context.Context, path string) domain.ExtractionResult
}

// ProgressReporter receives pipeline events for display.
type ProgressReporter interface {
	// Listed is called once with the remote files that will be processed.
	Listed(files []domain.RemoteFile)
	// Fetched is called after each successful download.
	Fetched(file domain.RemoteFile, path string)
	// FetchFailed is called when a download fails and is being skipped.
	FetchFailed(file domain.RemoteFile, err error)
	// Extracted is called after each file has been extracted.
	Extracted(result domain.ExtractionResult)
}
