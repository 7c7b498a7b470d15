package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driven"
	"github.com/custodia-labs/drivetables/internal/core/ports/driving"
	"github.com/custodia-labs/drivetables/internal/logger"
)

// Ensure TableExtractor implements the interface.
var _ driving.Extractor = (*TableExtractor)(nil)

// TableExtractor detects the tables in a local file and normalises them
// to the fixed record schema.
type TableExtractor struct {
	detector driven.TableDetector
}

// NewTableExtractor creates an extractor backed by the given detector.
func NewTableExtractor(detector driven.TableDetector) *TableExtractor {
	return &TableExtractor{detector: detector}
}

// Extract processes one file. Any failure is caught at file granularity:
// a diagnostic is printed and the result carries the error with no records.
func (e *TableExtractor) Extract(ctx context.Context, path string) domain.ExtractionResult {
	result := domain.ExtractionResult{
		SourceFile: filepath.Base(path),
		Path:       path,
	}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	tables, err := e.detect(ctx, path)
	if err != nil {
		result.Err = err
		logger.Error("Error processing %s: %v", path, err)
		return result
	}
	result.Tables = len(tables)
	if len(tables) == 0 {
		logger.Info("No tables detected in %s", path)
		return result
	}

	records, err := Normalise(result.SourceFile, tables)
	if err != nil {
		result.Err = err
		logger.Error("Error processing %s: %v", path, err)
		return result
	}
	result.Records = records

	logger.Debug("%s: %d tables, %d records", result.SourceFile, len(tables), len(records))
	return result
}

// detect runs the detector, converting a panic inside the PDF library
// into a detection error.
func (e *TableExtractor) detect(ctx context.Context, path string) (tables []domain.Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			tables = nil
			err = fmt.Errorf("%w: %v", domain.ErrDetectionFailed, r)
		}
	}()
	return e.detector.Detect(ctx, path)
}

// Normalise concatenates the rows of all tables in order and conforms them
// to the record schema. Fully blank rows and repeated header rows are
// dropped, and every record is tagged with sourceFile.
//
// Every non-blank row must have exactly domain.ColumnCount cells; otherwise
// the whole file is rejected with domain.ErrColumnCount.
func Normalise(sourceFile string, tables []domain.Table) ([]domain.Record, error) {
	var records []domain.Record

	for _, table := range tables {
		for i, row := range table.Rows {
			if domain.IsBlankRow(row) {
				continue
			}
			if len(row) != domain.ColumnCount {
				return nil, fmt.Errorf("page %d table %d row %d: %w: got %d, want %d",
					table.Page, table.Index+1, i+1, domain.ErrColumnCount, len(row), domain.ColumnCount)
			}
			if isHeaderRow(row) {
				continue
			}

			rec := domain.Record{SourceFile: sourceFile}
			copy(rec.Fields[:], row)
			records = append(records, rec)
		}
	}

	return records, nil
}

func isHeaderRow(row []string) bool {
	return strings.TrimSpace(row[0]) == domain.HeaderMarker
}
