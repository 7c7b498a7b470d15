package cli

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/drivetables/internal/adapters/driven/auth"
	"github.com/custodia-labs/drivetables/internal/adapters/driven/config/file"
	"github.com/custodia-labs/drivetables/internal/adapters/driven/pdftables"
	"github.com/custodia-labs/drivetables/internal/adapters/driven/xlsx"
	"github.com/custodia-labs/drivetables/internal/connectors/google"
	"github.com/custodia-labs/drivetables/internal/connectors/google/drive"
	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driven"
	"github.com/custodia-labs/drivetables/internal/core/ports/driving"
	"github.com/custodia-labs/drivetables/internal/core/services"
)

// credentialProvider is what the commands need from the auth adapter.
type credentialProvider interface {
	driven.CredentialProvider
	Login(ctx context.Context) error
	TokenFile() string
}

// Factories for the collaborators of a run. Tests replace them.
var (
	loadConfig = func(path string) (domain.Config, error) {
		return file.Load(file.Options{Path: path})
	}
	newCredentials = func(cfg domain.Config, prompt io.Writer) credentialProvider {
		return auth.NewProvider(cfg.Auth, auth.WithOutput(prompt))
	}
	newPipeline = buildPipeline
	newMerger   = buildMerger
)

// buildPipeline wires the Drive connector into a batch pipeline.
func buildPipeline(
	ctx context.Context,
	cfg domain.Config,
	ts oauth2.TokenSource,
	reporter driving.ProgressReporter,
) (driving.Pipeline, error) {
	svc, err := google.NewDriveService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	dcfg := drive.ConfigFrom(cfg)
	limiter := google.NewRateLimiterWithConfig(dcfg.RateLimit)

	return services.NewBatchPipeline(
		cfg,
		drive.NewLister(svc, limiter, dcfg),
		drive.NewFetcher(svc, limiter, dcfg),
		newMerger(cfg, reporter),
		reporter,
	), nil
}

// buildMerger wires the PDF detector and xlsx writer into an aggregator.
func buildMerger(cfg domain.Config, reporter driving.ProgressReporter) driving.Merger {
	extractor := services.NewTableExtractor(pdftables.NewDetector(cfg.Detect))
	return services.NewAggregator(extractor, xlsx.NewWriter(cfg.Output.SheetName), cfg.Output.File, reporter)
}
