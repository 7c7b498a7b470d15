package services

import (
	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driving"
)

// Ensure NopReporter implements the interface.
var _ driving.ProgressReporter = NopReporter{}

// NopReporter discards all progress events.
type NopReporter struct{}

// Listed implements driving.ProgressReporter.
func (NopReporter) Listed([]domain.RemoteFile) {}

// Fetched implements driving.ProgressReporter.
func (NopReporter) Fetched(domain.RemoteFile, string) {}

// FetchFailed implements driving.ProgressReporter.
func (NopReporter) FetchFailed(domain.RemoteFile, error) {}

// Extracted implements driving.ProgressReporter.
func (NopReporter) Extracted(domain.ExtractionResult) {}
