package domain

import "strings"

// Table is a region of tabular text detected on a PDF page.
// Rows hold raw cell text in left-to-right order; the schema is unknown
// until the table is normalised.
type Table struct {
	// Page is the 1-based page number the table was detected on.
	Page int
	// Index is the 0-based position of the table within its page.
	Index int
	// Rows are the detected rows, top to bottom.
	Rows [][]string
}

// IsBlankRow returns true if every cell of the row is empty or whitespace.
func IsBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
