package driven

import (
	"context"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

// SpreadsheetWriter persists the merged table.
type SpreadsheetWriter interface {
	// Write replaces the spreadsheet at path with one header row followed
	// by one row per record.
	Write(ctx context.Context, path string, header []string, records []domain.Record) error
}
