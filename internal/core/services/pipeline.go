package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driven"
	"github.com/custodia-labs/drivetables/internal/core/ports/driving"
	"github.com/custodia-labs/drivetables/internal/logger"
)

// Ensure BatchPipeline implements the interface.
var _ driving.Pipeline = (*BatchPipeline)(nil)

// BatchPipeline coordinates one sequential run: list the folder, fetch each
// file, then hand the local paths to the merger.
type BatchPipeline struct {
	drive    domain.DriveConfig
	skipFail bool
	lister   driven.FileLister
	fetcher  driven.FileFetcher
	merger   driving.Merger
	reporter driving.ProgressReporter
}

// NewBatchPipeline creates a pipeline for the given configuration.
// The reporter is optional.
func NewBatchPipeline(
	cfg domain.Config,
	lister driven.FileLister,
	fetcher driven.FileFetcher,
	merger driving.Merger,
	reporter driving.ProgressReporter,
) *BatchPipeline {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &BatchPipeline{
		drive:    cfg.Drive,
		skipFail: cfg.SkipFailedDownloads,
		lister:   lister,
		fetcher:  fetcher,
		merger:   merger,
		reporter: reporter,
	}
}

// Run executes the pipeline. Listing failures are fatal. Download failures
// are fatal unless the pipeline was configured to skip failed downloads.
func (p *BatchPipeline) Run(ctx context.Context) (*domain.MergeSummary, error) {
	logger.Section("List")

	files, err := p.lister.List(ctx, p.drive.FolderID, p.drive.MimeType)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	p.reporter.Listed(files)
	logger.Info("Found %d files in folder %s", len(files), p.drive.FolderID)

	logger.Section("Fetch")

	paths := make([]string, 0, len(files))
	for _, file := range files {
		path, err := p.fetcher.Fetch(ctx, file)
		if err != nil {
			if ctx.Err() != nil || !p.skipFail {
				return nil, fmt.Errorf("fetch %s: %w", file.Name, err)
			}
			logger.Warn("Skipping %s: %v", file.Name, err)
			p.reporter.FetchFailed(file, err)
			continue
		}
		p.reporter.Fetched(file, path)
		paths = append(paths, path)
	}

	return p.merger.Merge(ctx, paths)
}
