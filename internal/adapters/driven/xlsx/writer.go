// Package xlsx writes the merged table as a single-sheet Excel workbook.
package xlsx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/drivetables/internal/core/domain"
	"github.com/custodia-labs/drivetables/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.SpreadsheetWriter = (*Writer)(nil)

// defaultSheet is the sheet a new excelize workbook starts with.
const defaultSheet = "Sheet1"

// Writer writes records to an .xlsx file.
type Writer struct {
	sheet string
}

// NewWriter creates a writer that names its sheet. An empty name keeps
// the default Sheet1.
func NewWriter(sheet string) *Writer {
	if sheet == "" {
		sheet = defaultSheet
	}
	return &Writer{sheet: sheet}
}

// Write replaces the workbook at path. The workbook is written to a
// temporary file in the same directory and renamed over path, so readers
// never observe a partial file.
func (w *Writer) Write(ctx context.Context, path string, header []string, records []domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := w.build(header, records)
	if err != nil {
		return err
	}
	defer f.Close()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".drivetables-*.xlsx")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write workbook: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close workbook: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func (w *Writer) build(header []string, records []domain.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if w.sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, w.sheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("name sheet: %w", err)
		}
	}

	if err := w.setRow(f, 1, header); err != nil {
		_ = f.Close()
		return nil, err
	}
	for i, rec := range records {
		if err := w.setRow(f, i+2, rec.Values()); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (w *Writer) setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(w.sheet, cell, &values); err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	return nil
}
