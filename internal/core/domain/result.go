package domain

// ExtractionStatus classifies the outcome of extracting one file.
type ExtractionStatus string

const (
	// StatusExtracted means at least one record was produced.
	StatusExtracted ExtractionStatus = "extracted"
	// StatusEmpty means tables were found but every row was dropped.
	StatusEmpty ExtractionStatus = "empty"
	// StatusNoTables means detection found no tables in the document.
	StatusNoTables ExtractionStatus = "no_tables"
	// StatusFailed means validation, detection or normalisation failed.
	StatusFailed ExtractionStatus = "failed"
)

// ExtractionResult is the outcome of extracting and normalising one file.
// A failed result never carries records.
type ExtractionResult struct {
	// SourceFile is the base name of the input file.
	SourceFile string
	// Path is the local path that was processed.
	Path string
	// Tables is the number of tables the detector reported.
	Tables int
	// Records are the normalised rows, in detection order.
	Records []Record
	// Err is the reason the file was skipped, if any.
	Err error
}

// Status derives the outcome classification.
func (r ExtractionResult) Status() ExtractionStatus {
	switch {
	case r.Err != nil:
		return StatusFailed
	case r.Tables == 0:
		return StatusNoTables
	case len(r.Records) == 0:
		return StatusEmpty
	default:
		return StatusExtracted
	}
}

// HasRecords returns true if the file contributes rows to the merge.
func (r ExtractionResult) HasRecords() bool {
	return r.Err == nil && len(r.Records) > 0
}

// MergeSummary reports what the aggregator did with a batch of files.
type MergeSummary struct {
	// Output is the spreadsheet path, set even when nothing was written.
	Output string
	// Written is true if the spreadsheet was written.
	Written bool
	// Rows is the number of data rows in the merged table.
	Rows int
	// Results holds one entry per input file, in processing order.
	Results []ExtractionResult
}

// Failed returns the results for files that were skipped due to an error.
func (s MergeSummary) Failed() []ExtractionResult {
	var failed []ExtractionResult
	for _, r := range s.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
