package driven

import (
	"context"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

// TableDetector locates tabular regions in a local document.
type TableDetector interface {
	// Detect returns every table found across all pages, in page order and
	// then in top-to-bottom order within a page. Line breaks are stripped
	// from cell text. Zero tables is not an error.
	Detect(ctx context.Context, path string) ([]domain.Table, error)
}
