package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/drivetables/internal/core/domain"
)

// fakeDetector returns canned tables per path.
type fakeDetector struct {
	tables map[string][]domain.Table
	errs   map[string]error
	panics map[string]any
	calls  []string
}

func (f *fakeDetector) Detect(_ context.Context, path string) ([]domain.Table, error) {
	f.calls = append(f.calls, path)
	if v, ok := f.panics[path]; ok {
		panic(v)
	}
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	return f.tables[path], nil
}

// fakeWriter records what it was asked to write.
type fakeWriter struct {
	mu      sync.Mutex
	writes  int
	path    string
	header  []string
	records []domain.Record
	err     error
}

func (f *fakeWriter) Write(_ context.Context, path string, header []string, records []domain.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if f.err != nil {
		return f.err
	}
	f.path = path
	f.header = header
	f.records = append([]domain.Record(nil), records...)
	return nil
}

// fakeLister returns a fixed listing.
type fakeLister struct {
	files    []domain.RemoteFile
	err      error
	folderID string
	mimeType string
}

func (f *fakeLister) List(_ context.Context, folderID, mimeType string) ([]domain.RemoteFile, error) {
	f.folderID = folderID
	f.mimeType = mimeType
	return f.files, f.err
}

// fakeFetcher maps remote files to local paths.
type fakeFetcher struct {
	dir     string
	failIDs map[string]bool
	fetched []string
}

var errFetch = errors.New("connection reset")

func (f *fakeFetcher) Fetch(_ context.Context, file domain.RemoteFile) (string, error) {
	if f.failIDs[file.ID] {
		return "", errFetch
	}
	f.fetched = append(f.fetched, file.ID)
	return f.dir + "/" + file.Name, nil
}

// recordingReporter captures progress events.
type recordingReporter struct {
	listed    int
	fetched   []string
	failed    []string
	extracted []domain.ExtractionStatus
}

func (r *recordingReporter) Listed(files []domain.RemoteFile) { r.listed = len(files) }
func (r *recordingReporter) Fetched(file domain.RemoteFile, _ string) {
	r.fetched = append(r.fetched, file.Name)
}
func (r *recordingReporter) FetchFailed(file domain.RemoteFile, _ error) {
	r.failed = append(r.failed, file.Name)
}
func (r *recordingReporter) Extracted(result domain.ExtractionResult) {
	r.extracted = append(r.extracted, result.Status())
}

// row builds a nine-cell row whose first cell is city.
func row(city string, rest ...string) []string {
	cells := make([]string, domain.ColumnCount)
	cells[0] = city
	copy(cells[1:], rest)
	return cells
}

// headerRow is the repeated header emitted at the top of each page.
func headerRow() []string {
	return []string{"Full Amount", "Max Amount", "", "", "", "", "", "Total", "Percentage"}
}

// dataRows returns n distinct nine-cell data rows.
func dataRows(prefix string, n int) [][]string {
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row(prefix+string(rune('A'+i)), "100", "80", "60", "1", "20", "0", "200", "50%"))
	}
	return rows
}
