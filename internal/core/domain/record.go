package domain

// ColumnCount is the number of data columns every detected table must carry.
const ColumnCount = 9

// SourceFileColumn names the provenance column prepended to every record.
const SourceFileColumn = "Source_File"

// HeaderMarker is the first-column value that identifies a repeated header
// row in multi-page tables. Rows carrying it are dropped during normalisation.
const HeaderMarker = "Full Amount"

// Columns are the fixed labels assigned to the nine data columns, in order.
var Columns = [ColumnCount]string{
	"City",
	"Full Amount",
	"Max Amount (w/utilities)",
	"Max Amount (only rent)",
	"No (manual)",
	"Fixed Amount",
	"Not Yet",
	"Total",
	"Percentage",
}

// Record is one normalised table row tagged with the file it came from.
type Record struct {
	// SourceFile is the base name of the PDF the row was extracted from.
	SourceFile string
	// Fields holds the cell values in Columns order.
	Fields [ColumnCount]string
}

// OutputHeader returns the header row of the merged output: Source_File
// followed by the nine column labels.
func OutputHeader() []string {
	header := make([]string, 0, ColumnCount+1)
	header = append(header, SourceFileColumn)
	header = append(header, Columns[:]...)
	return header
}

// Values returns the record as an output row, Source_File first.
func (r Record) Values() []string {
	row := make([]string, 0, ColumnCount+1)
	row = append(row, r.SourceFile)
	row = append(row, r.Fields[:]...)
	return row
}
